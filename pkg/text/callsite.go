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

const (
	// AlertCallee is the blocking primitive rewritten by the migration.
	AlertCallee = "alert"
	// ConfirmCallee is only ever inventoried, never rewritten.
	ConfirmCallee = "confirm"
)

// 🏷️ ArgKind is the lexical shape of a call's argument list
type ArgKind int

const (
	ArgExpression      ArgKind = iota // anything that is not a lone literal
	ArgStringLiteral                  // a single '...' or "..." literal
	ArgTemplateLiteral                // a single `...` template literal
)

// String returns a string representation of ArgKind
func (k ArgKind) String() string {
	switch k {
	case ArgStringLiteral:
		return "string"
	case ArgTemplateLiteral:
		return "template"
	default:
		return "expression"
	}
}

// 📍 CallSite is one occurrence of callee(...) in a source text.
// Offsets are byte offsets into the scanned text.
type CallSite struct {
	Start    int     // offset of the callee identifier
	End      int     // offset just past the closing paren
	ArgStart int     // offset just past the opening paren
	ArgEnd   int     // offset of the closing paren
	Arg      string  // raw text between the parens
	Kind     ArgKind // shape of Arg
	Line     int     // 1-based line of Start
}

// 🔍 FindCallSites returns every balanced callee(...) occurrence in src, left to
// right and non-overlapping. See ScanCallSites for what counts as a call site.
func FindCallSites(src, callee string) []CallSite {
	sites, _ := ScanCallSites(src, callee)
	return sites
}

// ScanCallSites returns the balanced call sites of callee in src together with
// the 1-based lines of occurrences whose argument list never balances (a regex
// literal with a paren, for one). Occurrences preceded by an identifier
// character or a dot (foo.alert, myalert) are not call sites of the bare
// primitive, and neither is anything inside a comment, a quoted string or a
// template literal.
//
// A quote directly after an identifier character (JSX text such as Don't) does
// not open a string.
func ScanCallSites(src, callee string) (sites []CallSite, unbalanced []int) {
	needle := callee + "("
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
			continue
		case (c == '\'' || c == '"') && opensString(src, i):
			if end, ok := skipQuoted(src, i); ok {
				line += strings.Count(src[i:end], "\n")
				i = end
				continue
			}
		case c == '`':
			if end, ok := skipTemplate(src, i); ok {
				line += strings.Count(src[i:end], "\n")
				i = end
				continue
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return sites, unbalanced
			}
			i += nl
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return sites, unbalanced
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += 2 + end + 2
			continue
		case strings.HasPrefix(src[i:], needle) && (i == 0 || !(isIdentByte(src[i-1]) || src[i-1] == '.')):
			argStart := i + len(needle)
			closeAt, ok := scanUntil(src, argStart, ')')
			if !ok {
				unbalanced = append(unbalanced, line)
				i = argStart
				continue
			}

			arg := src[argStart:closeAt]
			sites = append(sites, CallSite{
				Start:    i,
				End:      closeAt + 1,
				ArgStart: argStart,
				ArgEnd:   closeAt,
				Arg:      arg,
				Kind:     classifyArg(arg),
				Line:     line,
			})
			line += strings.Count(src[i:closeAt+1], "\n")
			i = closeAt + 1
			continue
		}
		i++
	}

	return sites, unbalanced
}

// opensString reports whether the quote at i can start a string literal
func opensString(src string, i int) bool {
	return i == 0 || !isIdentByte(src[i-1])
}

func classifyArg(arg string) ArgKind {
	t := strings.TrimSpace(arg)
	if len(t) < 2 {
		return ArgExpression
	}
	switch t[0] {
	case '\'', '"':
		if end, ok := skipQuoted(t, 0); ok && end == len(t) {
			return ArgStringLiteral
		}
	case '`':
		if end, ok := skipTemplate(t, 0); ok && end == len(t) {
			return ArgTemplateLiteral
		}
	}
	return ArgExpression
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') ||
		c >= 0x80
}

// scanUntil returns the offset of closer that balances an opener consumed just
// before from. Quotes, templates and comments are skipped over.
func scanUntil(src string, from int, closer byte) (int, bool) {
	depth := 0
	for i := from; i < len(src); {
		c := src[i]
		switch c {
		case '\'', '"':
			end, ok := skipQuoted(src, i)
			if !ok {
				return 0, false
			}
			i = end
			continue
		case '`':
			end, ok := skipTemplate(src, i)
			if !ok {
				return 0, false
			}
			i = end
			continue
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					return 0, false
				}
				i += nl
				continue
			}
			if i+1 < len(src) && src[i+1] == '*' {
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					return 0, false
				}
				i += 2 + end + 2
				continue
			}
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				if c == closer {
					return i, true
				}
				return 0, false
			}
			depth--
		}
		i++
	}
	return 0, false
}

// skipQuoted returns the offset just past the quote closing the literal at i.
// A raw newline ends the attempt: such a literal is not well formed.
func skipQuoted(src string, i int) (int, bool) {
	q := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '\n':
			return 0, false
		case q:
			return j + 1, true
		}
	}
	return 0, false
}

// skipTemplate returns the offset just past the backtick closing the template
// at i, descending into ${...} substitutions.
func skipTemplate(src string, i int) (int, bool) {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '`':
			return j + 1, true
		case '$':
			if j+1 < len(src) && src[j+1] == '{' {
				end, ok := scanUntil(src, j+2, '}')
				if !ok {
					return 0, false
				}
				j = end
			}
		}
	}
	return 0, false
}
