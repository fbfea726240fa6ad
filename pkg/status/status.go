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
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus is the outcome of processing one manifest file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusProcessed            // File was rewritten
	StatusUnchanged            // Transformation was a no-op, nothing written
	StatusNotFound             // Manifest path does not exist under root
	StatusError                // Reading, transforming or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusUnchanged:
		return "no changes"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileInfo is what happened to one manifest file
type FileInfo struct {
	Path        string     // Manifest path, relative to root
	Status      FileStatus // Outcome
	Rewrites    int        // Call sites rewritten
	ImportAdded bool       // Notifier import inserted
	Size        int64      // Bytes written, or read when nothing was written
	Checksum    string     // SHA-256 of the final content
	Diff        string     // Unified diff of the change, dry runs only
	Unbalanced  []int      // Lines of alert calls left as is, their arguments never balance
	Error       error      // Set when Status is StatusError
}

// 💾 FileManager handles file system access relative to the root
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager and records per-file outcomes
type Manager struct {
	baseDir string // Root all paths are relative to

	mu       sync.Mutex
	files    []FileInfo
	confirms []ConfirmInfo
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new status manager
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// BaseDir returns the root directory.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		if info.IsDir() {
			return false, errors.Errorf("%s is a directory", path)
		}
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// WriteFileAtomic replaces the file with content in one rename. The existing
// file's permissions are kept.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// TrackFile records the outcome for one file. Files are reported in the order
// they are tracked.
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, info)

	event := zerolog.Ctx(ctx).Debug()
	if info.Error != nil {
		event = zerolog.Ctx(ctx).Warn().Err(info.Error)
	}
	event.Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("rewrites", info.Rewrites).
		Bool("import_added", info.ImportAdded).
		Msg("tracked file")
}

// Files returns the tracked outcomes in order.
func (m *Manager) Files() []FileInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	files := make([]FileInfo, len(m.files))
	copy(files, m.files)
	return files
}

// Summary counts the tracked outcomes.
func (m *Manager) Summary() Summary {
	return Summarize(m.Files())
}
