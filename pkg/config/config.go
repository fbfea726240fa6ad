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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📣 Notifier names the module and binding alert calls are rewritten to
type Notifier struct {
	Module  string `json:"module,omitempty" yaml:"module,omitempty" hcl:"module,optional"`
	Binding string `json:"binding,omitempty" yaml:"binding,omitempty" hcl:"binding,optional"`
}

// 🔑 Keywords overrides the keyword sets of the literal rules
type Keywords struct {
	Success []string `json:"success,omitempty" yaml:"success,omitempty" hcl:"success,optional"`
	Error   []string `json:"error,omitempty" yaml:"error,omitempty" hcl:"error,optional"`
}

// 📚 Config is the migration manifest
type Config struct {
	Root         string    `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`                            // Directory manifest paths are relative to
	AlertFiles   []string  `json:"alert_files,omitempty" yaml:"alert_files,omitempty" hcl:"alert_files,optional"`       // Files to rewrite, taken literally
	AlertGlobs   []string  `json:"alert_globs,omitempty" yaml:"alert_globs,omitempty" hcl:"alert_globs,optional"`       // doublestar patterns for more files to rewrite
	ConfirmFiles []string  `json:"confirm_files,omitempty" yaml:"confirm_files,omitempty" hcl:"confirm_files,optional"` // Files listed for manual confirm() review
	Notifier     *Notifier `json:"notifier,omitempty" yaml:"notifier,omitempty" hcl:"notifier,block"`
	Keywords     *Keywords `json:"keywords,omitempty" yaml:"keywords,omitempty" hcl:"keywords,block"`
	Parallelism  int       `json:"parallelism,omitempty" yaml:"parallelism,omitempty" hcl:"parallelism,optional"` // Files processed at once; 0 or 1 is sequential

	location string
}

// Location returns the file the config was loaded from, empty for the
// embedded default.
func (cfg *Config) Location() string {
	return cfg.location
}

// RootDir returns the root directory. A relative root is resolved against the
// directory of the config file.
func (cfg *Config) RootDir() string {
	if filepath.IsAbs(cfg.Root) || cfg.location == "" {
		return filepath.Clean(cfg.Root)
	}
	return filepath.Join(filepath.Dir(cfg.location), cfg.Root)
}

// TextNotifier returns the notifier in the form the rewriting engine takes.
func (cfg *Config) TextNotifier() text.Notifier {
	if cfg.Notifier == nil {
		return text.DefaultNotifier
	}
	return text.Notifier{Module: cfg.Notifier.Module, Binding: cfg.Notifier.Binding}
}

// Rules returns the rewrite rules in priority order.
func (cfg *Config) Rules() []text.Rule {
	if cfg.Keywords == nil {
		return text.DefaultRules()
	}
	return text.NewRules(cfg.Keywords.Success, cfg.Keywords.Error)
}

// 🔍 Validate checks the configuration and fills in defaults
func Validate(ctx context.Context, cfg *Config) error {
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if len(cfg.AlertFiles) == 0 && len(cfg.AlertGlobs) == 0 && len(cfg.ConfirmFiles) == 0 {
		return errors.New("manifest is empty: set alert_files, alert_globs or confirm_files")
	}

	for i, p := range cfg.AlertFiles {
		if err := validatePath(p); err != nil {
			return errors.Errorf("alert_files[%d]: %w", i, err)
		}
	}
	for i, p := range cfg.ConfirmFiles {
		if err := validatePath(p); err != nil {
			return errors.Errorf("confirm_files[%d]: %w", i, err)
		}
	}
	for i, pattern := range cfg.AlertGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("alert_globs[%d]: invalid pattern %q", i, pattern)
		}
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &Notifier{}
	}
	if cfg.Notifier.Module == "" {
		cfg.Notifier.Module = text.DefaultNotifier.Module
	}
	if cfg.Notifier.Binding == "" {
		cfg.Notifier.Binding = text.DefaultNotifier.Binding
	}

	if cfg.Keywords != nil {
		if cfg.Keywords.Success != nil && len(cfg.Keywords.Success) == 0 {
			return errors.New("keywords.success must not be empty")
		}
		if cfg.Keywords.Error != nil && len(cfg.Keywords.Error) == 0 {
			return errors.New("keywords.error must not be empty")
		}
	}
	if err := text.ValidateRules(cfg.Rules()); err != nil {
		return errors.Errorf("keywords: %w", err)
	}

	if cfg.Parallelism < 0 {
		return errors.Errorf("parallelism must not be negative, got %d", cfg.Parallelism)
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = 1
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", cfg.Root).
		Int("alert_files", len(cfg.AlertFiles)).
		Int("alert_globs", len(cfg.AlertGlobs)).
		Int("confirm_files", len(cfg.ConfirmFiles)).
		Msg("validated manifest")

	return nil
}

func validatePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("path is empty")
	}
	if !filepath.IsLocal(filepath.FromSlash(p)) {
		return errors.Errorf("path %q must be relative and stay inside root", p)
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %d alert files, %d alert globs, %d confirm files -> %s",
		cfg.RootDir(), len(cfg.AlertFiles), len(cfg.AlertGlobs), len(cfg.ConfirmFiles), cfg.TextNotifier().Declaration())
}
