/*
Package text is the rewriting engine of alertmigrate.

	+------------+     +------------------+     +-----------+
	| Call-site  | --> | Import           | --> | Rewriter  |
	| scanner    |     | normalizer       |     | (rules)   |
	+------------+     +------------------+     +-----------+

🎯 Purpose:
- Find alert(...) call sites in a source text with a single left-to-right scan
- Make sure the notification facility is imported exactly once
- Rewrite each call site with the first rule that matches it

📐 Rules (priority order):
 1. success-literal: '...' or "..." literal with a success keyword -> toast.success
 2. error-literal:   '...' or "..." literal with an error keyword   -> toast.error
 3. template:        `...` template literal                          -> toast.error
 4. fallback:        anything else                                   -> toast.error

Everything here is a pure function of the input text. confirm(...) calls are
located by the same scanner for reporting but never rewritten.

🔍 Example:

	m, err := text.NewMigrator(text.DefaultNotifier, text.DefaultRules())
	if err != nil {
		return err
	}
	res, err := m.Transform("page.tsx", src)
	if err != nil {
		return err
	}
	if res.Changed {
		// write res.Output
	}
*/
package text
