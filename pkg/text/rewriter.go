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
	"strings"
)

// ✏️ Rewrite records one call site rewritten by a rule
type Rewrite struct {
	Rule     string   // name of the rule that fired
	Severity Severity // severity the call was rewritten to
	Line     int      // 1-based line in the text handed to the rewriter
	Arg      string   // argument text as written
}

// 🔄 Rewriter replaces callee(...) with binding.<severity>(...) using the first
// matching rule for each call site.
type Rewriter struct {
	Callee  string
	Binding string
	Rules   []Rule
}

// NewRewriter creates a new Rewriter
func NewRewriter(callee, binding string, rules []Rule) *Rewriter {
	return &Rewriter{
		Callee:  callee,
		Binding: binding,
		Rules:   rules,
	}
}

// Rewrite scans src once, left to right, and returns the rewritten text with a
// record per rewritten call site, in text order. Only the callee is replaced;
// everything outside call sites is kept as is. Calls nested in an argument are
// rewritten too, while the rule for the outer call is picked on the argument as
// written. Call sites no rule matches are left untouched.
func (r *Rewriter) Rewrite(src string) (string, []Rewrite) {
	sites := FindCallSites(src, r.Callee)
	if len(sites) == 0 {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src) + len(sites)*len(r.Binding+".success"))

	var rewrites []Rewrite
	last := 0
	for _, site := range sites {
		rule, ok := r.match(site)
		if !ok {
			continue
		}

		arg, inner := r.Rewrite(site.Arg)

		b.WriteString(src[last:site.Start])
		b.WriteString(r.Binding)
		b.WriteByte('.')
		b.WriteString(string(rule.Severity))
		b.WriteByte('(')
		b.WriteString(arg)
		b.WriteByte(')')
		last = site.End

		rewrites = append(rewrites, Rewrite{
			Rule:     rule.Name,
			Severity: rule.Severity,
			Line:     site.Line,
			Arg:      site.Arg,
		})
		// argument lines count from the line of the call
		for _, rw := range inner {
			rw.Line += site.Line - 1
			rewrites = append(rewrites, rw)
		}
	}
	if len(rewrites) == 0 {
		return src, nil
	}
	b.WriteString(src[last:])

	return b.String(), rewrites
}

func (r *Rewriter) match(site CallSite) (Rule, bool) {
	for _, rule := range r.Rules {
		if rule.Matches(site) {
			return rule, true
		}
	}
	return Rule{}, false
}
