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
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func newTestMigrator(t *testing.T) *Migrator {
	t.Helper()
	m, err := NewMigrator(DefaultNotifier, DefaultRules())
	require.NoError(t, err)
	return m
}

// TestMigrator_Golden runs every testdata/*.txtar archive. An archive holds
// input.tsx and either output.tsx, an error substring, or nothing when the input
// must come back unchanged. An optional unbalanced file lists the lines of alert
// calls left as is.
func TestMigrator_Golden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	m := newTestMigrator(t)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			parts := make(map[string]string, len(ar.Files))
			for _, f := range ar.Files {
				parts[f.Name] = string(f.Data)
			}
			input, ok := parts["input.tsx"]
			require.True(t, ok, "archive needs input.tsx")

			res, err := m.Transform(file, input)
			if wantErr, ok := parts["error"]; ok {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoImportStatement)
				assert.Contains(t, err.Error(), strings.TrimSpace(wantErr))
				return
			}
			require.NoError(t, err)

			want, ok := parts["output.tsx"]
			if !ok {
				want = input
			}
			assert.Equal(t, want, res.Output)
			assert.Equal(t, want != input, res.Changed)

			var lines []string
			for _, n := range res.Unbalanced {
				lines = append(lines, strconv.Itoa(n))
			}
			assert.Equal(t, strings.TrimSpace(parts["unbalanced"]), strings.Join(lines, " "), "unbalanced lines")

			again, err := m.Transform(file, res.Output)
			require.NoError(t, err)
			assert.Equal(t, res.Output, again.Output, "transform must be idempotent")
			assert.False(t, again.Changed)
		})
	}
}

func TestMigrator_Transform(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		want        string
		wantImport  bool
		wantSuccess int
		wantError   int
	}{
		{
			name:        "success_literal_adds_import",
			src:         "import React from 'react';\nalert('Permit created successfully');\n",
			want:        "import React from 'react';\nimport { toast } from 'sonner';\ntoast.success('Permit created successfully');\n",
			wantImport:  true,
			wantSuccess: 1,
		},
		{
			name:       "please_literal_is_error",
			src:        "import React from 'react';\nalert('Please select a valid date');\n",
			want:       "import React from 'react';\nimport { toast } from 'sonner';\ntoast.error('Please select a valid date');\n",
			wantImport: true,
			wantError:  1,
		},
		{
			name:       "template_is_error",
			src:        "import React from 'react';\nalert(`Failed to save ${name}`);\n",
			want:       "import React from 'react';\nimport { toast } from 'sonner';\ntoast.error(`Failed to save ${name}`);\n",
			wantImport: true,
			wantError:  1,
		},
		{
			name:      "existing_import_kept_once",
			src:       "import { toast } from 'sonner';\nalert(e);\n",
			want:      "import { toast } from 'sonner';\ntoast.error(e);\n",
			wantError: 1,
		},
		{
			name: "no_alerts_left_alone",
			src:  "import { toast } from 'sonner';\nexport const x = 1;\n",
			want: "import { toast } from 'sonner';\nexport const x = 1;\n",
		},
		{
			name: "no_alerts_no_import_statement",
			src:  "export const x = 1;\n",
			want: "export const x = 1;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMigrator(t)

			res, err := m.Transform("page.tsx", tt.src)

			require.NoError(t, err)
			assert.Equal(t, "page.tsx", res.Path)
			assert.Equal(t, tt.src, res.Original)
			assert.Equal(t, tt.want, res.Output)
			assert.Equal(t, tt.want != tt.src, res.Changed)
			assert.Equal(t, tt.wantImport, res.ImportAdded)
			assert.Equal(t, tt.wantSuccess, res.Count(SeveritySuccess))
			assert.Equal(t, tt.wantError, res.Count(SeverityError))
		})
	}
}

func TestMigrator_NestedAlerts(t *testing.T) {
	src := "import a from 'a';\nalert(alert('Saved'));\n"
	m := newTestMigrator(t)

	res, err := m.Transform("a.tsx", src)
	require.NoError(t, err)
	assert.Equal(t, "import a from 'a';\nimport { toast } from 'sonner';\ntoast.error(toast.success('Saved'));\n", res.Output)
	assert.Empty(t, FindCallSites(res.Output, AlertCallee), "no blocking alert call may survive one pass")
	require.Len(t, res.Rewrites, 2)
	assert.Equal(t, "fallback", res.Rewrites[0].Rule)
	assert.Equal(t, "success-literal", res.Rewrites[1].Rule)
	assert.Equal(t, 3, res.Rewrites[1].Line)

	again, err := m.Transform("a.tsx", res.Output)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Output, again.Output)
}

func TestMigrator_Deterministic(t *testing.T) {
	src := "import a from 'a';\nalert('Saved');\nalert(`x ${y}`);\nalert(z);\n"
	m := newTestMigrator(t)

	first, err := m.Transform("a.tsx", src)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		res, err := m.Transform("a.tsx", src)
		require.NoError(t, err)
		assert.Equal(t, first.Output, res.Output)
	}
}

func TestNewMigrator_Validation(t *testing.T) {
	_, err := NewMigrator(Notifier{Binding: "toast"}, DefaultRules())
	assert.ErrorContains(t, err, "notifier module is required")

	_, err = NewMigrator(Notifier{Module: "sonner"}, DefaultRules())
	assert.ErrorContains(t, err, "notifier binding is required")

	_, err = NewMigrator(DefaultNotifier, nil)
	assert.ErrorContains(t, err, "validating rules")
}
