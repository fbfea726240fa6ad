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
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚦 Severity selects the notification function a call is rewritten to
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

var (
	// DefaultSuccessKeywords mark a literal message as a success notification.
	DefaultSuccessKeywords = []string{"success", "created", "updated", "saved", "generated"}
	// DefaultErrorKeywords mark a literal message as an error notification.
	DefaultErrorKeywords = []string{"failed", "error", "invalid", "please"}
)

// 📐 Rule classifies a call site and names the severity it is rewritten to.
// Kinds is the matcher, Keywords the classifier and Severity the rewrite target.
type Rule struct {
	Name     string
	Kinds    []ArgKind // empty: any argument shape
	Keywords []string  // empty: any argument text; otherwise case-insensitive substrings
	Severity Severity
}

// Matches reports whether the rule applies to site.
func (r Rule) Matches(site CallSite) bool {
	if len(r.Kinds) > 0 && !slices.Contains(r.Kinds, site.Kind) {
		return false
	}
	if len(r.Keywords) == 0 {
		return true
	}
	arg := strings.ToLower(site.Arg)
	for _, kw := range r.Keywords {
		if strings.Contains(arg, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// catchAll reports whether the rule matches every call site.
func (r Rule) catchAll() bool {
	return len(r.Kinds) == 0 && len(r.Keywords) == 0
}

// 📋 NewRules returns the migration rules in priority order. Nil keyword sets
// fall back to the defaults.
func NewRules(successKeywords, errorKeywords []string) []Rule {
	if successKeywords == nil {
		successKeywords = DefaultSuccessKeywords
	}
	if errorKeywords == nil {
		errorKeywords = DefaultErrorKeywords
	}
	return []Rule{
		{
			Name:     "success-literal",
			Kinds:    []ArgKind{ArgStringLiteral},
			Keywords: successKeywords,
			Severity: SeveritySuccess,
		},
		{
			Name:     "error-literal",
			Kinds:    []ArgKind{ArgStringLiteral},
			Keywords: errorKeywords,
			Severity: SeverityError,
		},
		{
			Name:     "template",
			Kinds:    []ArgKind{ArgTemplateLiteral},
			Severity: SeverityError,
		},
		{
			Name:     "fallback",
			Severity: SeverityError,
		},
	}
}

// DefaultRules returns NewRules with the default keyword sets.
func DefaultRules() []Rule {
	return NewRules(nil, nil)
}

// ✅ ValidateRules checks that rules form a usable priority list
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return errors.New("at least one rule is required")
	}
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[rule.Name] {
			return errors.Errorf("rule %d: duplicate name %q", i, rule.Name)
		}
		seen[rule.Name] = true

		switch rule.Severity {
		case SeveritySuccess, SeverityError:
		default:
			return errors.Errorf("rule %d: unknown severity %q", i, rule.Severity)
		}

		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" {
				return errors.Errorf("rule %d: empty keyword", i)
			}
		}

		if rule.catchAll() && i != len(rules)-1 {
			return errors.Errorf("rule %d: catch-all rule %q must be last", i, rule.Name)
		}
	}
	return nil
}
