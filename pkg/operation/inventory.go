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

	"github.com/walteh/alertmigrate/pkg/status"
	"github.com/walteh/alertmigrate/pkg/text"
)

// 📋 inventoryOperation lists the confirm calls left for manual review
type inventoryOperation struct {
	BaseOperation
}

// 📋 NewInventoryOperation creates a new confirm inventory operation
func NewInventoryOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &inventoryOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 🏃 Execute inspects every confirm review file and prints the listing.
// Nothing is ever written.
func (op *inventoryOperation) Execute(ctx context.Context) error {
	logger := op.logger(ctx)
	if len(op.Config.ConfirmFiles) == 0 {
		logger.Infof("no confirm() review files in the manifest")
		return nil
	}

	err := forEachFile(ctx, op.Config.Parallelism, op.Config.ConfirmFiles, op.inspectFile, func(_ int, info status.ConfirmInfo) {
		op.Store.TrackConfirm(ctx, info)
	})
	if err != nil {
		return err
	}

	logger.LogNewline()
	logger.ConfirmReview(op.Store.Confirms())
	return nil
}

// 🔍 inspectFile finds the confirm call sites of one file
func (op *inventoryOperation) inspectFile(ctx context.Context, path string) status.ConfirmInfo {
	info := status.ConfirmInfo{Path: path}

	exists, err := op.Store.FileExists(ctx, path)
	if err != nil {
		info.Error = err
		return info
	}
	if !exists {
		return info
	}
	info.Exists = true

	content, err := op.Store.ReadFile(ctx, path)
	if err != nil {
		info.Error = err
		return info
	}

	for _, site := range text.FindCallSites(string(content), text.ConfirmCallee) {
		info.Lines = append(info.Lines, site.Line)
	}
	return info
}
