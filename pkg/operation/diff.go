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

package operation

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change
const diffContext = 2

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// 📝 unifiedDiff renders a line diff of before and after in unified format.
// It returns an empty string when the texts are equal.
func unifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []diffLine
	for _, d := range diffs {
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			lines = append(lines, diffLine{op: d.Type, text: strings.TrimRight(l, "\r\n")})
		}
	}

	include := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(lines)-1, i+diffContext); j++ {
			include[j] = true
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "--- a/%s\n+++ b/%s\n", path, path)

	oldLine, newLine := 1, 1
	for i := 0; i < len(lines); {
		if !include[i] {
			oldLine, newLine = advance(lines[i].op, oldLine, newLine)
			i++
			continue
		}

		oldStart, newStart := oldLine, newLine
		var body strings.Builder
		for ; i < len(lines) && include[i]; i++ {
			l := lines[i]
			switch l.op {
			case diffmatchpatch.DiffDelete:
				body.WriteString("-" + l.text + "\n")
			case diffmatchpatch.DiffInsert:
				body.WriteString("+" + l.text + "\n")
			default:
				body.WriteString(" " + l.text + "\n")
			}
			oldLine, newLine = advance(l.op, oldLine, newLine)
		}
		fmt.Fprintf(&out, "@@ -%d,%d +%d,%d @@\n", oldStart, oldLine-oldStart, newStart, newLine-newStart)
		out.WriteString(body.String())
	}

	return out.String()
}

func advance(op diffmatchpatch.Operation, oldLine, newLine int) (int, int) {
	switch op {
	case diffmatchpatch.DiffDelete:
		return oldLine + 1, newLine
	case diffmatchpatch.DiffInsert:
		return oldLine, newLine + 1
	default:
		return oldLine + 1, newLine + 1
	}
}
