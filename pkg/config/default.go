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
	_ "embed"

	"gitlab.com/tozd/go/errors"
)

//go:embed default.yaml
var defaultManifest []byte

// 📦 Default returns the embedded manifest, rooted at the working directory
func Default(ctx context.Context) (*Config, error) {
	cfg, err := loadYAML(defaultManifest)
	if err != nil {
		return nil, errors.Errorf("loading default manifest: %w", err)
	}
	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating default manifest: %w", err)
	}
	return cfg, nil
}
