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

// 📦 ImportSpec is a module that should be importable after migration
type ImportSpec struct {
	Module      string `json:"module" yaml:"module" hcl:"module"`
	Description string `json:"description" yaml:"description" hcl:"description,optional"`
}

// 📚 DocSpec is a documentation file expected at the project root
type DocSpec struct {
	Path        string `json:"path" yaml:"path" hcl:"path"`
	Description string `json:"description" yaml:"description" hcl:"description,optional"`
}

// 🗺️ Layout is what a reorganized project must look like
type Layout struct {
	RequiredDirs     []string
	RequiredFiles    []string
	Imports          []ImportSpec
	ConfigPath       string
	RequiredSections []string
	Docs             []DocSpec
	MinDocLength     int // Trimmed character count a document must exceed
}

// 🏭 DefaultLayout returns the MOCU-OED project layout
func DefaultLayout() Layout {
	return Layout{
		RequiredDirs: []string{
			"src",
			"src/core",
			"src/models",
			"src/strategies",
			"src/utils",
			"scripts",
			"configs",
			"tests",
		},
		RequiredFiles: []string{
			"README.md",
			"requirements.txt",
			"setup.py",
			"configs/default_config.yaml",
			"src/__init__.py",
			"src/core/__init__.py",
			"src/models/__init__.py",
			"src/strategies/__init__.py",
			"src/utils/__init__.py",
		},
		Imports: []ImportSpec{
			{Module: "src.utils.config", Description: "Config utilities"},
			{Module: "src.utils.data_utils", Description: "Data utilities"},
			{Module: "src.utils.logging_utils", Description: "Logging utilities"},
			{Module: "src.models.message_passing", Description: "Message passing model"},
		},
		ConfigPath: "configs/default_config.yaml",
		RequiredSections: []string{
			"system",
			"integration",
			"training",
			"model",
			"oed",
			"paths",
		},
		Docs: []DocSpec{
			{Path: "README.md", Description: "Main README"},
			{Path: "REORGANIZATION_GUIDE.md", Description: "Reorganization guide"},
		},
		MinDocLength: 100,
	}
}
