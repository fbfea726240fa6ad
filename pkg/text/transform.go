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
	"gitlab.com/tozd/go/errors"
)

// 📄 Result is the outcome of transforming one source unit
type Result struct {
	Path        string    // identifier of the unit, never mutated
	Original    string    // text as read
	Output      string    // text after transformation
	Changed     bool      // Output differs from Original
	ImportAdded bool      // the notifier import was inserted
	Rewrites    []Rewrite // call sites rewritten, in text order
	Unbalanced  []int     // lines of alert calls left as is, their arguments never balance
}

// Count returns the number of call sites rewritten to sev.
func (r *Result) Count(sev Severity) int {
	n := 0
	for _, rw := range r.Rewrites {
		if rw.Severity == sev {
			n++
		}
	}
	return n
}

// 🧩 Migrator runs the import normalizer and the call-site rewriter over a
// source unit
type Migrator struct {
	normalizer *ImportNormalizer
	rewriter   *Rewriter
}

// NewMigrator creates a new Migrator for notifier with rules in priority order
func NewMigrator(notifier Notifier, rules []Rule) (*Migrator, error) {
	if notifier.Module == "" {
		return nil, errors.New("notifier module is required")
	}
	if notifier.Binding == "" {
		return nil, errors.New("notifier binding is required")
	}
	if err := ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Migrator{
		normalizer: NewImportNormalizer(notifier),
		rewriter:   NewRewriter(AlertCallee, notifier.Binding, rules),
	}, nil
}

// Transform rewrites the alert calls of src. Text without alert calls is
// returned unchanged. A file that has alert calls but no import statement to
// anchor the notifier import is an error; it is never rewritten halfway.
func (m *Migrator) Transform(path, src string) (*Result, error) {
	result := &Result{
		Path:     path,
		Original: src,
		Output:   src,
	}

	sites, unbalanced := ScanCallSites(src, m.rewriter.Callee)
	result.Unbalanced = unbalanced
	if len(sites) == 0 {
		return result, nil
	}

	normalized, added, err := m.normalizer.Normalize(src)
	if err != nil {
		return nil, errors.Errorf("normalizing imports of %s: %w", path, err)
	}

	output, rewrites := m.rewriter.Rewrite(normalized)
	if len(rewrites) == 0 {
		return result, nil
	}

	result.Output = output
	result.ImportAdded = added
	result.Rewrites = rewrites
	result.Changed = output != src
	return result, nil
}
