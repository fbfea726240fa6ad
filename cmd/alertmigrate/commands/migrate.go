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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/opts"
	"github.com/walteh/alertmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RunMigrate rewrites the alert calls of the manifest, then lists the confirm
// calls left for review. Per-file failures are reported, not returned.
func RunMigrate(ctx context.Context, o *opts.RootOpts) error {
	ctx = zerolog.Ctx(ctx).With().Str("command", "migrate").Logger().WithContext(ctx)

	migrate, err := operation.NewMigrateOperation(o.OperationOptions())
	if err != nil {
		return errors.Errorf("creating migrate operation: %w", err)
	}
	inventory, err := operation.NewInventoryOperation(o.OperationOptions())
	if err != nil {
		return errors.Errorf("creating inventory operation: %w", err)
	}

	if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, migrate, inventory); err != nil {
		return errors.Errorf("migrating files: %w", err)
	}

	return nil
}
