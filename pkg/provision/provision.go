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

// Package provision creates the directory skeleton of a reorganized project.
package provision

import (
	"context"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultMarkerName is the package marker written into package roots
	DefaultMarkerName = "__init__.py"
	// DefaultMarkerContent is the placeholder body of a new package marker
	DefaultMarkerContent = "\"\"\"Package initialization.\"\"\"\n"
)

// 🏗️ Provisioner ensures a fixed set of directories exists under a root
type Provisioner struct {
	Directories   []string // Root-relative directories to create
	PackageRoots  []string // Glob patterns selecting directories that get a marker
	MarkerName    string
	MarkerContent string

	ws *workspace.Workspace
}

// 🏭 New creates a provisioner with the default marker
func New(ws *workspace.Workspace, directories, packageRoots []string) *Provisioner {
	return &Provisioner{
		Directories:   directories,
		PackageRoots:  packageRoots,
		MarkerName:    DefaultMarkerName,
		MarkerContent: DefaultMarkerContent,
		ws:            ws,
	}
}

// 🏃 Provision creates every directory and any missing package markers.
// Running it again changes nothing and never rewrites an existing marker.
func (p *Provisioner) Provision(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	for _, dir := range p.Directories {
		if err := p.ws.CreateDir(ctx, dir); err != nil {
			return errors.Errorf("provisioning %s: %w", dir, err)
		}

		isPkg, err := p.IsPackageRoot(dir)
		if err != nil {
			return err
		}
		if !isPkg {
			continue
		}

		marker := path.Join(filepath.ToSlash(dir), p.MarkerName)
		wrote, err := p.ws.WriteFileIfAbsent(ctx, marker, []byte(p.MarkerContent))
		if err != nil {
			return errors.Errorf("writing package marker for %s: %w", dir, err)
		}
		logger.Debug().Str("dir", dir).Bool("marker_created", wrote).Msg("provisioned package directory")
	}

	return nil
}

// 🔍 IsPackageRoot reports whether dir matches one of the package root patterns
func (p *Provisioner) IsPackageRoot(dir string) (bool, error) {
	clean := path.Clean(filepath.ToSlash(dir))
	for _, pattern := range p.PackageRoots {
		matched, err := doublestar.Match(pattern, clean)
		if err != nil {
			return false, errors.Errorf("matching package root pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
