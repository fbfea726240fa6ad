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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiff(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		assert.Empty(t, unifiedDiff("a.tsx", "same\n", "same\n"))
	})

	t.Run("single_change", func(t *testing.T) {
		got := unifiedDiff("a.tsx", "a\nb\nc\n", "a\nB\nc\n")
		want := "--- a/a.tsx\n+++ b/a.tsx\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n"
		assert.Equal(t, want, got)
	})

	t.Run("hunks_are_split", func(t *testing.T) {
		var before, after []string
		for i := 0; i < 20; i++ {
			before = append(before, "line")
			after = append(after, "line")
		}
		before[2], after[2] = "old top", "new top"
		before[17], after[17] = "old bottom", "new bottom"

		got := unifiedDiff("a.tsx", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")
		assert.Equal(t, 2, strings.Count(got, "@@ -"), got)
		assert.Contains(t, got, "@@ -1,5 +1,5 @@")
		assert.Contains(t, got, "@@ -16,5 +16,5 @@")
		assert.NotContains(t, got, "\n line\n line\n line\n line\n line\n line\n")
	})

	t.Run("crlf_is_trimmed", func(t *testing.T) {
		got := unifiedDiff("a.tsx", "x\r\ny\r\n", "x\r\nz\r\n")
		assert.Contains(t, got, "-y\n")
		assert.Contains(t, got, "+z\n")
		assert.NotContains(t, got, "\r")
	})
}
