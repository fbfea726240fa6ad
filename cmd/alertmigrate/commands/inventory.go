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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/opts"
	"github.com/walteh/alertmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func NewInventoryCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List the confirm() calls that need manual conversion",
		Long: `Inventory reads every confirm review file of the manifest and lists
the blocking confirm() calls it still contains, with their line numbers.
Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "inventory").Logger().WithContext(ctx)

			op, err := operation.NewInventoryOperation(o.OperationOptions())
			if err != nil {
				return errors.Errorf("creating inventory operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return errors.Errorf("listing confirm calls: %w", err)
			}

			return nil
		},
	}

	return cmd
}
