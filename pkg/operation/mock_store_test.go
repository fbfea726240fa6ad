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

	"github.com/stretchr/testify/mock"
	"github.com/walteh/alertmigrate/pkg/status"
)

// 🔧 MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	content, _ := result.Get(0).([]byte)
	return content, result.Error(1)
}

func (m *MockStore) FileExists(ctx context.Context, path string) (bool, error) {
	result := m.Called(ctx, path)
	return result.Bool(0), result.Error(1)
}

func (m *MockStore) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	return m.Called(ctx, path, content).Error(0)
}

func (m *MockStore) TrackFile(ctx context.Context, info status.FileInfo) {
	m.Called(ctx, info)
}

func (m *MockStore) TrackConfirm(ctx context.Context, info status.ConfirmInfo) {
	m.Called(ctx, info)
}

func (m *MockStore) Summary() status.Summary {
	return m.Called().Get(0).(status.Summary)
}

func (m *MockStore) Confirms() []status.ConfirmInfo {
	confirms, _ := m.Called().Get(0).([]status.ConfirmInfo)
	return confirms
}
