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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// 🧪 Check is one named validation step
type Check struct {
	Name string
	Run  func(ctx context.Context, r *Results) error
}

// 🏭 Checks returns the standard checks for a layout, in run order
func Checks(ws *workspace.Workspace, layout Layout, resolver ModuleResolver) []Check {
	return []Check{
		DirectoryStructure(ws, layout.RequiredDirs),
		RequiredFiles(ws, layout.RequiredFiles),
		Imports(resolver, layout.Imports),
		Configuration(ws, layout.ConfigPath, layout.RequiredSections),
		Documentation(ws, layout.Docs, layout.MinDocLength),
	}
}

// 📁 DirectoryStructure records one finding per required directory
func DirectoryStructure(ws *workspace.Workspace, dirs []string) Check {
	return Check{
		Name: "Directory Structure",
		Run: func(ctx context.Context, r *Results) error {
			for _, d := range dirs {
				if ws.IsDir(ctx, d) {
					r.Pass("Directory exists: "+d, d)
				} else {
					r.Fail("Missing directory: "+d, d)
				}
			}
			return nil
		},
	}
}

// 📄 RequiredFiles records one finding per required file
func RequiredFiles(ws *workspace.Workspace, files []string) Check {
	return Check{
		Name: "Required Files",
		Run: func(ctx context.Context, r *Results) error {
			for _, f := range files {
				if ws.IsFile(ctx, f) {
					r.Pass("File exists: "+f, f)
				} else {
					r.Fail("Missing file: "+f, f)
				}
			}
			return nil
		},
	}
}

// 📦 Imports looks up each expected module. A module that is not found is a
// warning; a lookup that fails is an error.
func Imports(resolver ModuleResolver, imports []ImportSpec) Check {
	return Check{
		Name: "Python Imports",
		Run: func(ctx context.Context, r *Results) error {
			for _, imp := range imports {
				label := fmt.Sprintf("%s (%s)", imp.Description, imp.Module)
				found, err := resolver.Resolve(ctx, imp.Module)
				switch {
				case err != nil:
					r.Fail(fmt.Sprintf("Import failed: %s - %v", imp.Module, err), fmt.Sprintf("%s: %v", label, err))
				case found:
					r.Pass("Import works: "+imp.Module, label)
				default:
					r.Warn("Module not found: "+imp.Module, label)
				}
			}
			return nil
		},
	}
}

// ⚙️ Configuration parses the project configuration and checks its sections.
// A missing section is a warning.
func Configuration(ws *workspace.Workspace, path string, sections []string) Check {
	return Check{
		Name: "Configuration",
		Run: func(ctx context.Context, r *Results) error {
			if !ws.IsFile(ctx, path) {
				r.Fail("Configuration file not found", "Configuration file missing")
				return nil
			}

			data, err := ws.ReadFile(ctx, path)
			if err != nil {
				r.Fail("Config check failed: "+err.Error(), err.Error())
				return nil
			}

			doc, err := ParseDocument(data)
			if err != nil {
				if errors.Is(err, ErrNotMapping) {
					r.Fail("Config check failed: "+err.Error(), err.Error())
				} else {
					r.Fail("Invalid YAML: "+err.Error(), "Invalid YAML: "+err.Error())
				}
				return nil
			}

			for _, s := range sections {
				if doc.HasSection(s) {
					r.Pass("Config section exists: "+s, fmt.Sprintf("Section '%s' present", s))
				} else {
					r.Warn("Config section missing: "+s, fmt.Sprintf("Section '%s' missing", s))
				}
			}
			return nil
		},
	}
}

// 📚 Documentation checks each document exists and is longer than minLength
// characters once trimmed. It never records errors.
func Documentation(ws *workspace.Workspace, docs []DocSpec, minLength int) Check {
	return Check{
		Name: "Documentation",
		Run: func(ctx context.Context, r *Results) error {
			for _, d := range docs {
				if !ws.IsFile(ctx, d.Path) {
					r.Warn("Documentation missing: "+d.Path, d.Description+" missing")
					continue
				}

				content, err := ws.ReadFile(ctx, d.Path)
				if err != nil {
					return err
				}

				if utf8.RuneCountInString(strings.TrimSpace(string(content))) > minLength {
					r.Pass("Documentation exists: "+d.Path, d.Description)
				} else {
					r.Warn("Documentation too short: "+d.Path, d.Description+" (needs more content)")
				}
			}
			return nil
		},
	}
}
