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

	"github.com/walteh/alertmigrate/pkg/config"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one pass over the manifest
type Operation interface {
	Execute(ctx context.Context) error
}

// 💾 Store reads and writes files under the root and records outcomes
type Store interface {
	status.FileManager
	TrackFile(ctx context.Context, info status.FileInfo)
	TrackConfirm(ctx context.Context, info status.ConfirmInfo)
	Summary() status.Summary
	Confirms() []status.ConfirmInfo
}

var _ Store = (*status.Manager)(nil)

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the validated manifest
	Config *config.Config
	// Store handles file access relative to the root
	Store Store
	// Logger prints console output; the context logger is used when nil
	Logger *log.Logger
	// DryRun computes changes and diffs without writing anything
	DryRun bool
}

func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.Store == nil {
		return errors.New("store is required")
	}
	return nil
}

// 🧱 BaseOperation holds what every operation shares
type BaseOperation struct {
	Options
}

// NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

func (op *BaseOperation) logger(ctx context.Context) *log.Logger {
	if op.Logger != nil {
		return op.Logger
	}
	return log.FromContext(ctx)
}

// 💥 failed marks info as an error with err as the reason
func failed(info status.FileInfo, err error) status.FileInfo {
	info.Status = status.StatusError
	info.Error = err
	return info
}
