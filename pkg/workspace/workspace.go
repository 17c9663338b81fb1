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

// Package workspace performs filesystem operations relative to a project root.
package workspace

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// 💾 Workspace handles file system operations under one root directory
type Workspace struct {
	root string
}

// 🏭 New creates a workspace rooted at root
func New(root string) *Workspace {
	return &Workspace{root: filepath.Clean(root)}
}

// Root returns the cleaned root directory
func (w *Workspace) Root() string {
	return w.root
}

// 🔒 Abs returns the absolute path for a root-relative path
func (w *Workspace) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

// 🔍 Exists reports whether a path exists. Errors other than not-exist are returned.
func (w *Workspace) Exists(ctx context.Context, rel string) (bool, error) {
	_, err := os.Stat(w.Abs(rel))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking existence of %s: %w", rel, err)
}

// 📁 IsDir reports whether a path exists and is a directory
func (w *Workspace) IsDir(ctx context.Context, rel string) bool {
	info, err := os.Stat(w.Abs(rel))
	return err == nil && info.IsDir()
}

// 📄 IsFile reports whether a path exists and is a regular file
func (w *Workspace) IsFile(ctx context.Context, rel string) bool {
	info, err := os.Stat(w.Abs(rel))
	return err == nil && info.Mode().IsRegular()
}

// CreateDir creates a directory and any missing parents
func (w *Workspace) CreateDir(ctx context.Context, rel string) error {
	if err := os.MkdirAll(w.Abs(rel), dirPerm); err != nil {
		return errors.Errorf("creating directory %s: %w", rel, err)
	}
	return nil
}

// ReadFile reads a root-relative file
func (w *Workspace) ReadFile(ctx context.Context, rel string) ([]byte, error) {
	content, err := os.ReadFile(w.Abs(rel))
	if err != nil {
		return nil, errors.Errorf("reading file %s: %w", rel, err)
	}
	return content, nil
}

// 📝 WriteFileAtomic replaces a file through a temp file and rename. Existing
// permission bits are kept.
func (w *Workspace) WriteFileAtomic(ctx context.Context, rel string, content []byte) error {
	absPath := w.Abs(rel)
	tempPath := absPath + ".tmp"

	perm := fs.FileMode(filePerm)
	if info, err := os.Stat(absPath); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(absPath), dirPerm); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := os.WriteFile(tempPath, content, perm); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", rel).Int("size", len(content)).Msg("wrote file")
	return nil
}

// ✨ WriteFileIfAbsent writes content only when nothing exists at the path yet.
// It reports whether it wrote.
func (w *Workspace) WriteFileIfAbsent(ctx context.Context, rel string, content []byte) (bool, error) {
	f, err := os.OpenFile(w.Abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.Errorf("creating file %s: %w", rel, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return false, errors.Errorf("writing file %s: %w", rel, err)
	}
	return true, nil
}
