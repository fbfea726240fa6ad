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

package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/commands"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/opts"
	"github.com/walteh/alertmigrate/pkg/config"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile string
	root       string
	dryRun     bool
	parallel   int
	debug      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "alertmigrate",
		Short: "Rewrite blocking alert() calls into toast notifications",
		Long: `alertmigrate rewrites the alert() calls of the files in a manifest into
toast.success / toast.error notifications, adds the notifier import where it
is missing and lists the files whose confirm() calls need manual conversion.

Without --config the built-in manifest is run against the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), stderr, flags.debug)
			cmd.SetContext(ctx)

			loaded, err := newRootOpts(ctx, flags, stdout)
			if err != nil {
				return err
			}
			*rootOpts = *loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunMigrate(cmd.Context(), rootOpts)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewInventoryCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

func newRootOpts(ctx context.Context, flags *rootFlags, stdout io.Writer) (*opts.RootOpts, error) {
	var cfg *config.Config
	var err error
	if flags.configFile == "" {
		cfg, err = config.Default(ctx)
	} else {
		cfg, err = config.LoadConfig(ctx, flags.configFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if flags.root != "" {
		abs, err := filepath.Abs(flags.root)
		if err != nil {
			return nil, errors.Errorf("resolving root: %w", err)
		}
		cfg.Root = abs
	}

	if flags.parallel < 0 {
		return nil, errors.Errorf("--parallel must not be negative, got %d", flags.parallel)
	}
	if flags.parallel > 0 {
		cfg.Parallelism = flags.parallel
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.Location()).
		Str("root", cfg.RootDir()).
		Int("parallelism", cfg.Parallelism).
		Msg("loaded config")

	return &opts.RootOpts{
		Config: cfg,
		Store:  status.New(cfg.RootDir()),
		Logger: log.New(stdout, *zerolog.Ctx(ctx)),
		DryRun: flags.dryRun,
	}, nil
}

func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "manifest file (YAML, JSON or HCL), the built-in manifest when empty")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", "root directory, overrides the manifest")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "print diffs instead of writing files")
	cmd.PersistentFlags().IntVarP(&flags.parallel, "parallel", "p", 0, "files processed at once, overrides the manifest")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging returns ctx carrying a stderr logger. Console output already
// reports every file, so only warnings are logged unless debug is set.
func setupLogging(ctx context.Context, stderr io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
