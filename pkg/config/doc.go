// Package config loads and validates the alertmigrate manifest.
//
//	            +-------------+
//	            |  Manifest   |
//	            |  (Config)   |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+----+ +-----+----+ +-----+----+
//	|   YAML   | |   JSON   | |   HCL    |
//	+----------+ +----------+ +----------+
//
// 🎯 Purpose:
// - Names the root directory and the files the migration is scoped to
// - Picks the notification module and binding calls are rewritten to
// - Optionally overrides the keyword sets of the literal rules
//
// 🔄 Flow:
// 1. Reads the manifest (or the embedded default)
// 2. Decodes it with the parser picked by file extension
// 3. Validates paths and fills in defaults
// 4. Expands alert_globs against the root
//
// 📝 Manifest paths are taken literally, so Next.js segments such as
// [siteId] need no escaping. Only alert_globs entries are patterns.
//
// 🔍 Example:
//
//	root: ../web
//	alert_files:
//	  - app/dashboard/packs/page.tsx
//	alert_globs:
//	  - components/**/*.tsx
//	confirm_files:
//	  - app/dashboard/review-queue/page.tsx
//	notifier:
//	  module: sonner
//	  binding: toast
//	keywords:
//	  success: [success, saved, done]
//	parallelism: 4
package config
