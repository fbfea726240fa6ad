// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrNoImportStatement is returned when a file has no import statement after
// which the notification import could be inserted.
var ErrNoImportStatement = errors.Base("no import statement to anchor the notification import")

// importStatement matches one top-level import declaration through the end of
// its line. The binding list may span lines.
var importStatement = regexp.MustCompile(`(?m)^import\b\s*(?:[^;'"]*?\bfrom\s*)?['"][^'"\n]*['"][^\n]*(?:\n|$)`)

// 📣 Notifier names the notification facility calls are rewritten to
type Notifier struct {
	Module  string // module specifier, e.g. sonner
	Binding string // imported binding, e.g. toast
}

// DefaultNotifier is the sonner toast facility.
var DefaultNotifier = Notifier{Module: "sonner", Binding: "toast"}

// Declaration returns the import declaration inserted into files.
func (n Notifier) Declaration() string {
	return fmt.Sprintf("import { %s } from '%s';", n.Binding, n.Module)
}

// 📥 ImportNormalizer ensures a file imports the notifier exactly once
type ImportNormalizer struct {
	notifier Notifier
}

// NewImportNormalizer creates a new ImportNormalizer
func NewImportNormalizer(n Notifier) *ImportNormalizer {
	return &ImportNormalizer{notifier: n}
}

// HasImport reports whether src already imports from the notifier module.
func (n *ImportNormalizer) HasImport(src string) bool {
	return strings.Contains(src, "from '"+n.notifier.Module+"'") ||
		strings.Contains(src, `from "`+n.notifier.Module+`"`)
}

// Normalize inserts the notifier import right after the last import statement
// of src. It reports whether it inserted anything. When src has no import
// statement it returns src unchanged with ErrNoImportStatement.
func (n *ImportNormalizer) Normalize(src string) (string, bool, error) {
	if n.HasImport(src) {
		return src, false, nil
	}

	locs := importStatement.FindAllStringIndex(src, -1)
	if len(locs) == 0 {
		return src, false, errors.WithStack(ErrNoImportStatement)
	}

	last := locs[len(locs)-1]
	at := last[1]
	anchor := src[last[0]:at]

	var decl string
	switch {
	case strings.HasSuffix(anchor, "\r\n"):
		decl = n.notifier.Declaration() + "\r\n"
	case strings.HasSuffix(anchor, "\n"):
		decl = n.notifier.Declaration() + "\n"
	case strings.Contains(src, "\r\n"):
		// last line of the file, no trailing newline
		decl = "\r\n" + n.notifier.Declaration()
	default:
		decl = "\n" + n.notifier.Declaration()
	}

	return src[:at] + decl + src[at:], true, nil
}
