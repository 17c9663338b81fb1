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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/restructure/pkg/plan"
	"github.com/walteh/restructure/pkg/validate"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// 🧪 TestLoadFormats checks every format decodes into the same config
func TestLoadFormats(t *testing.T) {
	wantPlan := plan.Plan{
		{Source: "a.py", Destination: "src/core/x.py", Mode: plan.ModeOverwrite},
		{Source: "b.py", Destination: "src/core/x.py", Mode: plan.ModeAppend},
	}

	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			name:     "yaml",
			filename: "restructure.yaml",
			content: `
transfers:
  - source: a.py
    destination: src/core/x.py
  - source: b.py
    destination: src/core/x.py
    mode: append
headers:
  - path: src/core/x.py
    description: Core module
directories: [src, src/core]
package_roots: ["src/**"]
validation:
  required_dirs: [src]
  imports:
    - module: src.core.x
      description: Core
  docs:
    - path: README.md
      description: Main README
  min_doc_length: 10
`,
		},
		{
			name:     "yml_extension",
			filename: "restructure.YML",
			content: `
transfers:
  - {source: a.py, destination: src/core/x.py}
  - {source: b.py, destination: src/core/x.py, mode: APPEND}
headers:
  - {path: src/core/x.py, description: Core module}
directories: [src, src/core]
package_roots: ["src/**"]
validation:
  required_dirs: [src]
  imports: [{module: src.core.x, description: Core}]
  docs: [{path: README.md, description: Main README}]
  min_doc_length: 10
`,
		},
		{
			name:     "json",
			filename: "restructure.json",
			content: `{
				"transfers": [
					{"source": "a.py", "destination": "src/core/x.py"},
					{"source": "b.py", "destination": "src/core/x.py", "mode": "append"}
				],
				"headers": [{"path": "src/core/x.py", "description": "Core module"}],
				"directories": ["src", "src/core"],
				"package_roots": ["src/**"],
				"validation": {
					"required_dirs": ["src"],
					"imports": [{"module": "src.core.x", "description": "Core"}],
					"docs": [{"path": "README.md", "description": "Main README"}],
					"min_doc_length": 10
				}
			}`,
		},
		{
			name:     "hcl",
			filename: "restructure.hcl",
			content: `
transfer {
  source      = "a.py"
  destination = "src/core/x.py"
}

transfer {
  source      = "b.py"
  destination = "src/core/x.py"
  mode        = mode.append
}

header {
  path        = "src/core/x.py"
  description = "Core module"
}

directories   = ["src", "src/core"]
package_roots = ["src/**"]

validation {
  required_dirs  = ["src"]
  min_doc_length = 10

  import {
    module      = "src.core.x"
    description = "Core"
  }

  doc {
    path        = "README.md"
    description = "Main README"
  }
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.content)
			cfg, err := Load(testContext(t), path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())

			got, err := cfg.Plan()
			require.NoError(t, err)
			assert.Equal(t, wantPlan, got)

			assert.Equal(t, []plan.HeaderSpec{{Path: "src/core/x.py", Description: "Core module"}}, cfg.HeaderSpecs())
			assert.Equal(t, []string{"src", "src/core"}, cfg.Dirs())
			assert.Equal(t, []string{"src/**"}, cfg.Roots())

			layout := cfg.Layout()
			assert.Equal(t, []string{"src"}, layout.RequiredDirs)
			assert.Equal(t, []validate.ImportSpec{{Module: "src.core.x", Description: "Core"}}, layout.Imports)
			assert.Equal(t, []validate.DocSpec{{Path: "README.md", Description: "Main README"}}, layout.Docs)
			assert.Equal(t, 10, layout.MinDocLength)
			assert.Equal(t, validate.DefaultLayout().RequiredFiles, layout.RequiredFiles, "unset fields keep defaults")
			assert.Equal(t, validate.DefaultLayout().ConfigPath, layout.ConfigPath)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		errContains string
	}{
		{
			name:        "unknown_extension",
			filename:    "restructure.toml",
			content:     "x = 1",
			errContains: "unsupported file extension",
		},
		{
			name:        "yaml_unknown_field",
			filename:    "c.yaml",
			content:     "transfer_list: []\n",
			errContains: "parsing YAML",
		},
		{
			name:        "json_unknown_field",
			filename:    "c.json",
			content:     `{"provider": {}}`,
			errContains: "parsing JSON",
		},
		{
			name:        "hcl_syntax",
			filename:    "c.hcl",
			content:     "transfer {",
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_missing_attribute",
			filename:    "c.hcl",
			content:     "transfer {\n  source = \"a.py\"\n}\n",
			errContains: "decoding HCL",
		},
		{
			name:        "unknown_mode",
			filename:    "c.yaml",
			content:     "transfers:\n  - {source: a.py, destination: b.py, mode: merge}\n",
			errContains: `unknown transfer mode "merge"`,
		},
		{
			name:        "empty_destination",
			filename:    "c.yaml",
			content:     "transfers:\n  - {source: a.py, destination: \"\"}\n",
			errContains: "destination is required",
		},
		{
			name:        "empty_header_path",
			filename:    "c.json",
			content:     `{"headers": [{"path": "", "description": "x"}]}`,
			errContains: "path is required",
		},
		{
			name:        "negative_doc_length",
			filename:    "c.yaml",
			content:     "validation:\n  min_doc_length: -1\n",
			errContains: "must not be negative",
		},
		{
			name:        "empty_import_module",
			filename:    "c.yaml",
			content:     "validation:\n  imports:\n    - {module: \"\"}\n",
			errContains: "module is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.content)
			_, err := Load(testContext(t), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "default_config", cfg: Default()},
		{name: "empty_yaml_file", cfg: func() *Config {
			cfg, err := Load(testContext(t), writeConfig(t, "empty.yaml", ""))
			require.NoError(t, err)
			return cfg
		}()},
		{name: "empty_hcl_file", cfg: func() *Config {
			cfg, err := Load(testContext(t), writeConfig(t, "empty.hcl", ""))
			require.NoError(t, err)
			return cfg
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.cfg.Plan()
			require.NoError(t, err)
			assert.Equal(t, plan.Default(), p)
			assert.Equal(t, plan.DefaultHeaders(), tt.cfg.HeaderSpecs())
			assert.Equal(t, plan.DefaultDirectories(), tt.cfg.Dirs())
			assert.Equal(t, plan.DefaultPackageRoots(), tt.cfg.Roots())
			assert.Equal(t, validate.DefaultLayout(), tt.cfg.Layout())
		})
	}
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "a.yaml", want: &YAMLParser{}},
		{filename: "a.yml", want: &YAMLParser{}},
		{filename: "a.json", want: &JSONParser{}},
		{filename: "a.hcl", want: &HCLParser{}},
		{filename: "a.txt", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
