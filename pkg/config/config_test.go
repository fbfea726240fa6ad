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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/alertmigrate/pkg/text"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing config file")
	return path
}

const yamlManifest = `
root: web
alert_files:
  - app/a/page.tsx
  - "app/b/[id]/page.tsx"
confirm_files:
  - app/c/page.tsx
notifier:
  module: sonner
  binding: toast
keywords:
  success: [done]
parallelism: 2
`

const jsonManifest = `{
  "root": "web",
  "alert_files": ["app/a/page.tsx", "app/b/[id]/page.tsx"],
  "confirm_files": ["app/c/page.tsx"],
  "notifier": {"module": "sonner", "binding": "toast"},
  "keywords": {"success": ["done"]},
  "parallelism": 2
}`

const hclManifest = `
root          = "web"
alert_files   = ["app/a/page.tsx", "app/b/[id]/page.tsx"]
confirm_files = ["app/c/page.tsx"]
parallelism   = 2

notifier {
  module  = "sonner"
  binding = "toast"
}

keywords {
  success = ["done"]
}
`

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "manifest.yaml", content: yamlManifest},
		{name: "yml", file: "manifest.yml", content: yamlManifest},
		{name: "json", file: "manifest.json", content: jsonManifest},
		{name: "hcl", file: "manifest.hcl", content: hclManifest},
		{name: "dotfile_yaml", file: ".alertmigrate", content: yamlManifest},
		{name: "dotfile_hcl", file: ".alertmigrate", content: hclManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := LoadConfig(testContext(t), path)
			require.NoError(t, err)

			assert.Equal(t, path, cfg.Location())
			assert.Equal(t, "web", cfg.Root)
			assert.Equal(t, filepath.Join(filepath.Dir(path), "web"), cfg.RootDir())
			assert.Equal(t, []string{"app/a/page.tsx", "app/b/[id]/page.tsx"}, cfg.AlertFiles)
			assert.Equal(t, []string{"app/c/page.tsx"}, cfg.ConfirmFiles)
			assert.Equal(t, text.DefaultNotifier, cfg.TextNotifier())
			assert.Equal(t, 2, cfg.Parallelism)

			rules := cfg.Rules()
			require.Len(t, rules, 4)
			assert.Equal(t, []string{"done"}, rules[0].Keywords)
			assert.Equal(t, text.DefaultErrorKeywords, rules[1].Keywords)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		errContains string
	}{
		{
			name:        "unknown_yaml_field",
			file:        "m.yaml",
			content:     "alert_files: [a.tsx]\nfiles: [b.tsx]\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "m.json",
			content:     `{"alert_files": ["a.tsx"], "files": ["b.tsx"]}`,
			errContains: "parsing JSON",
		},
		{
			name:        "bad_hcl",
			file:        "m.hcl",
			content:     "alert_files = [",
			errContains: "parsing HCL",
		},
		{
			name:        "unsupported_extension",
			file:        "m.toml",
			content:     "alert_files = []",
			errContains: `unsupported file extension ".toml"`,
		},
		{
			name:        "empty_manifest",
			file:        "m.yaml",
			content:     "root: .\n",
			errContains: "manifest is empty",
		},
		{
			name:        "absolute_path",
			file:        "m.yaml",
			content:     "alert_files: [/etc/passwd]\n",
			errContains: "must be relative and stay inside root",
		},
		{
			name:        "escaping_path",
			file:        "m.yaml",
			content:     "confirm_files: [../outside.tsx]\n",
			errContains: "confirm_files[0]",
		},
		{
			name:        "bad_glob",
			file:        "m.yaml",
			content:     "alert_globs: [\"app/[\"]\n",
			errContains: "invalid pattern",
		},
		{
			name:        "empty_keywords",
			file:        "m.yaml",
			content:     "alert_files: [a.tsx]\nkeywords:\n  error: []\n",
			errContains: "keywords.error must not be empty",
		},
		{
			name:        "blank_keyword",
			file:        "m.yaml",
			content:     "alert_files: [a.tsx]\nkeywords:\n  success: [\" \"]\n",
			errContains: "empty keyword",
		},
		{
			name:        "negative_parallelism",
			file:        "m.yaml",
			content:     "alert_files: [a.tsx]\nparallelism: -1\n",
			errContains: "parallelism must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			_, err := LoadConfig(testContext(t), path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{AlertFiles: []string{"a.tsx"}}

	require.NoError(t, Validate(testContext(t), cfg))

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, ".", cfg.RootDir())
	assert.Equal(t, 1, cfg.Parallelism)
	require.NotNil(t, cfg.Notifier)
	assert.Equal(t, "sonner", cfg.Notifier.Module)
	assert.Equal(t, "toast", cfg.Notifier.Binding)
	assert.Equal(t, text.DefaultRules(), cfg.Rules())
}

func TestDefault(t *testing.T) {
	cfg, err := Default(testContext(t))
	require.NoError(t, err)

	assert.Len(t, cfg.AlertFiles, 45)
	assert.Len(t, cfg.ConfirmFiles, 8)
	assert.Empty(t, cfg.AlertGlobs)
	assert.Empty(t, cfg.Location())
	assert.Equal(t, ".", cfg.RootDir())
	assert.Equal(t, "app/(dashboard)/consultant/clients/[clientId]/packs/generate/page.tsx", cfg.AlertFiles[0])
	assert.Equal(t, "components/recurrence-triggers/VisualTriggerBuilder.tsx", cfg.AlertFiles[len(cfg.AlertFiles)-1])
	assert.Equal(t, "components/enhanced-features/calendar-settings.tsx", cfg.ConfirmFiles[len(cfg.ConfirmFiles)-1])
	assert.Equal(t, "import { toast } from 'sonner';", cfg.TextNotifier().Declaration())
}

func TestAlertTargets(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"app/a/page.tsx",
		"app/b/page.tsx",
		"app/b/page.test.tsx",
		"components/z/Widget.tsx",
		"components/y/Card.tsx",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}

	cfg := &Config{
		Root:       root,
		AlertFiles: []string{"app/b/page.tsx", "missing/page.tsx"},
		AlertGlobs: []string{"app/*/page.tsx", "components/**/*.tsx"},
	}
	require.NoError(t, Validate(testContext(t), cfg))

	targets, err := cfg.AlertTargets(testContext(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"app/b/page.tsx",
		"missing/page.tsx",
		"app/a/page.tsx",
		"components/y/Card.tsx",
		"components/z/Widget.tsx",
	}, targets)
}
