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

package validate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 ModuleResolver looks a module up without loading it.
//
// It returns false with a nil error when the module does not exist, and an
// error when the lookup itself cannot be carried out.
type ModuleResolver interface {
	Resolve(ctx context.Context, module string) (bool, error)
}

// 🐍 PythonResolver resolves dotted Python module names against a source tree.
//
// It only inspects paths. A parent package must be a directory (regular or
// namespace package); the last segment resolves to name.py, name/__init__.py
// or a namespace directory name/.
type PythonResolver struct {
	Root string
}

// 🏭 NewPythonResolver creates a resolver rooted at the project root
func NewPythonResolver(root string) *PythonResolver {
	return &PythonResolver{Root: filepath.Clean(root)}
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// stat returns the file info, nil when the path does not exist
func stat(p string) (fs.FileInfo, error) {
	info, err := os.Stat(p)
	if err == nil {
		return info, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, nil
	}
	// a file where a directory was expected
	if errors.Is(err, syscall.ENOTDIR) {
		return nil, nil
	}
	return nil, errors.Errorf("inspecting %s: %w", p, err)
}

// 🔍 Resolve implements ModuleResolver
func (r *PythonResolver) Resolve(ctx context.Context, module string) (bool, error) {
	parts := strings.Split(module, ".")
	for _, p := range parts {
		if !validIdentifier(p) {
			return false, errors.Errorf("invalid module name %q", module)
		}
	}

	dir := r.Root
	for i, p := range parts[:len(parts)-1] {
		dir = filepath.Join(dir, p)
		info, err := stat(dir)
		if err != nil {
			return false, err
		}
		if info == nil || !info.IsDir() {
			parent := strings.Join(parts[:i+1], ".")
			return false, errors.Errorf("no module named %q", parent)
		}
	}

	leaf := filepath.Join(dir, parts[len(parts)-1])
	candidates := []struct {
		path  string
		isDir bool
	}{
		{path: leaf + ".py"},
		{path: filepath.Join(leaf, "__init__.py")},
		{path: leaf, isDir: true},
	}

	for _, c := range candidates {
		info, err := stat(c.path)
		if err != nil {
			return false, err
		}
		if info == nil || info.IsDir() != c.isDir {
			continue
		}
		zerolog.Ctx(ctx).Debug().Str("module", module).Str("path", c.path).Msg("resolved module")
		return true, nil
	}

	return false, nil
}
