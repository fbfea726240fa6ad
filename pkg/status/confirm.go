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

package status

import (
	"context"

	"github.com/rs/zerolog"
)

// 📝 ConfirmInfo lists the blocking confirm calls of one review file
type ConfirmInfo struct {
	Path   string // Manifest path, relative to root
	Exists bool   // Whether the file was found under root
	Lines  []int  // 1-based lines of each confirm call site
	Error  error  // Set when the file could not be read
}

// TrackConfirm records the review result for one file.
func (m *Manager) TrackConfirm(ctx context.Context, info ConfirmInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.confirms = append(m.confirms, info)

	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Bool("exists", info.Exists).
		Ints("lines", info.Lines).
		Msg("tracked confirm review")
}

// Confirms returns the tracked review results in order.
func (m *Manager) Confirms() []ConfirmInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	confirms := make([]ConfirmInfo, len(m.confirms))
	copy(confirms, m.confirms)
	return confirms
}
