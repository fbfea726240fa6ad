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
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 AlertTargets returns the files to rewrite in manifest order: alert_files
// as written, then the sorted matches of each alert_globs pattern. A file is
// listed once, at its first position.
func (cfg *Config) AlertTargets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	seen := make(map[string]bool, len(cfg.AlertFiles))
	targets := make([]string, 0, len(cfg.AlertFiles))
	add := func(p string) {
		key := path.Clean(filepath.ToSlash(p))
		if seen[key] {
			return
		}
		seen[key] = true
		targets = append(targets, p)
	}

	for _, p := range cfg.AlertFiles {
		add(p)
	}

	if len(cfg.AlertGlobs) == 0 {
		return targets, nil
	}

	fsys := os.DirFS(cfg.RootDir())
	for _, pattern := range cfg.AlertGlobs {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", pattern, err)
		}
		slices.Sort(matches)
		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded alert glob")
		for _, m := range matches {
			add(m)
		}
	}

	return targets, nil
}
