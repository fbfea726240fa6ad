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
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/status"
	"github.com/walteh/alertmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.Base("file is not valid UTF-8")

// 🔁 migrateOperation rewrites the alert calls of every manifest file
type migrateOperation struct {
	BaseOperation
	migrator *text.Migrator
}

// 🔁 NewMigrateOperation creates a new migrate operation
func NewMigrateOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	migrator, err := text.NewMigrator(opts.Config.TextNotifier(), opts.Config.Rules())
	if err != nil {
		return nil, errors.Errorf("creating migrator: %w", err)
	}
	return &migrateOperation{
		BaseOperation: NewBaseOperation(opts),
		migrator:      migrator,
	}, nil
}

// 🏃 Execute runs the migration over the manifest and prints the summary
func (op *migrateOperation) Execute(ctx context.Context) error {
	logger := op.logger(ctx)

	targets, err := op.Config.AlertTargets(ctx)
	if err != nil {
		return errors.Errorf("resolving alert targets: %w", err)
	}

	header := "Replacing alert() calls with toast notifications"
	if op.DryRun {
		header += " (dry run)"
	}
	logger.Header(header)

	zerolog.Ctx(ctx).Debug().
		Int("files", len(targets)).
		Int("parallelism", op.Config.Parallelism).
		Bool("dry_run", op.DryRun).
		Msg("starting migration")

	err = forEachFile(ctx, op.Config.Parallelism, targets, op.processFile, func(_ int, info status.FileInfo) {
		op.Store.TrackFile(ctx, info)
		logger.LogFile(ctx, info)
		op.warn(logger, info)
	})
	if err != nil {
		return err
	}

	summary := op.Store.Summary()
	logger.Summary(summary)
	if summary.Errors() > 0 {
		logger.Warningf("%d of %d files need attention", summary.Errors(), summary.Total())
	} else if !op.DryRun {
		logger.Successf("%d files rewritten, %d alert calls replaced", summary.Processed, summary.Rewrites)
	}
	if op.DryRun {
		logger.Infof("dry run: %d files would be rewritten, nothing was written", summary.Processed)
	}
	return nil
}

// ⚠️ warn points out what needs a hand after the run
func (op *migrateOperation) warn(logger *log.Logger, info status.FileInfo) {
	if errors.Is(info.Error, text.ErrNoImportStatement) {
		logger.Warningf("%s has alert() calls but no import statement, add the %s import by hand",
			info.Path, op.Config.TextNotifier().Module)
	}
	if len(info.Unbalanced) > 0 {
		logger.Warningf("%s: alert() left blocking on lines %s, its arguments could not be balanced",
			info.Path, joinLines(info.Unbalanced))
	}
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// 📄 processFile migrates a single file. Every failure is reported in the
// returned info.
func (op *migrateOperation) processFile(ctx context.Context, path string) status.FileInfo {
	info := status.FileInfo{Path: path}

	exists, err := op.Store.FileExists(ctx, path)
	if err != nil {
		return failed(info, err)
	}
	if !exists {
		info.Status = status.StatusNotFound
		return info
	}

	content, err := op.Store.ReadFile(ctx, path)
	if err != nil {
		return failed(info, err)
	}
	if !utf8.Valid(content) {
		return failed(info, errors.WithStack(ErrInvalidUTF8))
	}

	result, err := op.migrator.Transform(path, string(content))
	if err != nil {
		return failed(info, err)
	}
	info.Unbalanced = result.Unbalanced
	if len(result.Unbalanced) > 0 {
		zerolog.Ctx(ctx).Debug().Str("path", path).Ints("lines", result.Unbalanced).Msg("unbalanced alert calls left as is")
	}

	if !result.Changed {
		info.Status = status.StatusUnchanged
		info.Size = int64(len(content))
		info.Checksum = status.Checksum(content)
		return info
	}

	output := []byte(result.Output)
	if op.DryRun {
		info.Diff = unifiedDiff(path, result.Original, result.Output)
	} else if err := op.Store.WriteFileAtomic(ctx, path, output); err != nil {
		return failed(info, errors.Errorf("writing file: %w", err))
	}

	info.Status = status.StatusProcessed
	info.Rewrites = len(result.Rewrites)
	info.ImportAdded = result.ImportAdded
	info.Size = int64(len(output))
	info.Checksum = status.Checksum(output)

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("success", result.Count(text.SeveritySuccess)).
		Int("error", result.Count(text.SeverityError)).
		Msg("rewrote alert calls")

	return info
}
