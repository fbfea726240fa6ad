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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes ops in order and stops at the first error
func (r *OperationRunner) Run(ctx context.Context, ops ...Operation) error {
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		r.logger.Debug().Int("operation", i+1).Int("total", len(ops)).Msg("running operation")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("executing operation: %w", err)
		}
	}
	return nil
}

// 🔁 forEachFile calls process for every path with at most parallelism calls
// in flight and hands each result to report in the order of paths. A single
// file never fails the batch; only cancellation does.
func forEachFile[T any](
	ctx context.Context,
	parallelism int,
	paths []string,
	process func(ctx context.Context, path string) T,
	report func(i int, result T),
) error {
	logger := zerolog.Ctx(ctx)

	if parallelism <= 1 {
		for i, p := range paths {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			report(i, process(ctx, p))
			logger.Debug().Msg(status.FormatProgress(i+1, len(paths)))
		}
		return nil
	}

	var (
		mu      sync.Mutex
		results = make([]T, len(paths))
		ready   = make([]bool, len(paths))
		next    int
	)

	// flush reports every finished result whose predecessors were reported
	flush := func(i int, result T) {
		mu.Lock()
		defer mu.Unlock()
		results[i] = result
		ready[i] = true
		for next < len(paths) && ready[next] {
			report(next, results[next])
			next++
			logger.Debug().Msg(status.FormatProgress(next, len(paths)))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			flush(i, process(gctx, p))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	return nil
}
