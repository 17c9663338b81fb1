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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/plan"
	"github.com/walteh/restructure/pkg/validate"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 TransferArgs is one planned file transfer
type TransferArgs struct {
	Source      string `json:"source" yaml:"source" hcl:"source"`
	Destination string `json:"destination" yaml:"destination" hcl:"destination"`
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional"` // overwrite (default) or append
}

// 📝 HeaderArgs names a file that gets a documentation header
type HeaderArgs struct {
	Path        string `json:"path" yaml:"path" hcl:"path"`
	Description string `json:"description" yaml:"description" hcl:"description"`
}

// 🔍 ValidationArgs overrides parts of the expected project layout
type ValidationArgs struct {
	RequiredDirs     []string              `json:"required_dirs,omitempty" yaml:"required_dirs,omitempty" hcl:"required_dirs,optional"`
	RequiredFiles    []string              `json:"required_files,omitempty" yaml:"required_files,omitempty" hcl:"required_files,optional"`
	Imports          []validate.ImportSpec `json:"imports,omitempty" yaml:"imports,omitempty" hcl:"import,block"`
	ConfigPath       string                `json:"config_path,omitempty" yaml:"config_path,omitempty" hcl:"config_path,optional"`
	RequiredSections []string              `json:"required_sections,omitempty" yaml:"required_sections,omitempty" hcl:"required_sections,optional"`
	Docs             []validate.DocSpec    `json:"docs,omitempty" yaml:"docs,omitempty" hcl:"doc,block"`
	MinDocLength     *int                  `json:"min_doc_length,omitempty" yaml:"min_doc_length,omitempty" hcl:"min_doc_length,optional"`
}

// 📚 Config is the tool configuration. Every omitted part falls back to the
// built-in MOCU-OED defaults.
type Config struct {
	Transfers    []TransferArgs  `json:"transfers,omitempty" yaml:"transfers,omitempty" hcl:"transfer,block"`
	Headers      []HeaderArgs    `json:"headers,omitempty" yaml:"headers,omitempty" hcl:"header,block"`
	Directories  []string        `json:"directories,omitempty" yaml:"directories,omitempty" hcl:"directories,optional"`
	PackageRoots []string        `json:"package_roots,omitempty" yaml:"package_roots,omitempty" hcl:"package_roots,optional"`
	Validation   *ValidationArgs `json:"validation,omitempty" yaml:"validation,omitempty" hcl:"validation,block"`

	location string
}

// 🏭 Default returns an empty config, which resolves entirely to defaults
func Default() *Config {
	return &Config{}
}

// 🎯 Load loads the configuration from a file. The format is picked by
// extension: .yaml/.yml, .json or .hcl.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported file extension %q", filepath.Ext(path))
	}

	cfg, err := p.Parse(ctx, data, filepath.Base(path))
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("transfers", len(cfg.Transfers)).
		Int("headers", len(cfg.Headers)).
		Bool("validation", cfg.Validation != nil).
		Msg("configuration loaded")

	return cfg, nil
}

// Location returns the path the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if _, err := cfg.Plan(); err != nil {
		return err
	}

	for i, h := range cfg.Headers {
		if strings.TrimSpace(h.Path) == "" {
			return errors.Errorf("header %d: path is required", i)
		}
	}

	for _, d := range cfg.Directories {
		if strings.TrimSpace(d) == "" {
			return errors.Errorf("directories: empty path")
		}
	}

	if v := cfg.Validation; v != nil {
		if v.MinDocLength != nil && *v.MinDocLength < 0 {
			return errors.Errorf("validation.min_doc_length must not be negative")
		}
		for i, imp := range v.Imports {
			if strings.TrimSpace(imp.Module) == "" {
				return errors.Errorf("validation import %d: module is required", i)
			}
		}
		for i, d := range v.Docs {
			if strings.TrimSpace(d.Path) == "" {
				return errors.Errorf("validation doc %d: path is required", i)
			}
		}
	}

	return nil
}

// 🗺️ Plan builds the transfer plan, or returns the default plan when no
// transfers are configured
func (cfg *Config) Plan() (plan.Plan, error) {
	if len(cfg.Transfers) == 0 {
		return plan.Default(), nil
	}

	p := make(plan.Plan, 0, len(cfg.Transfers))
	for i, t := range cfg.Transfers {
		mode, err := plan.ParseMode(t.Mode)
		if err != nil {
			return nil, errors.Errorf("transfer %d: %w", i, err)
		}
		p = append(p, plan.TransferEntry{
			Source:      filepath.ToSlash(t.Source),
			Destination: filepath.ToSlash(t.Destination),
			Mode:        mode,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// 📝 HeaderSpecs returns the files to annotate after transfer
func (cfg *Config) HeaderSpecs() []plan.HeaderSpec {
	if len(cfg.Headers) == 0 {
		return plan.DefaultHeaders()
	}
	specs := make([]plan.HeaderSpec, 0, len(cfg.Headers))
	for _, h := range cfg.Headers {
		specs = append(specs, plan.HeaderSpec{Path: h.Path, Description: h.Description})
	}
	return specs
}

// 📁 Dirs returns the directories to provision
func (cfg *Config) Dirs() []string {
	if len(cfg.Directories) == 0 {
		return plan.DefaultDirectories()
	}
	return cfg.Directories
}

// 📦 Roots returns the package-root globs
func (cfg *Config) Roots() []string {
	if len(cfg.PackageRoots) == 0 {
		return plan.DefaultPackageRoots()
	}
	return cfg.PackageRoots
}

// 🔍 Layout returns the default layout with any configured overrides applied
func (cfg *Config) Layout() validate.Layout {
	l := validate.DefaultLayout()
	v := cfg.Validation
	if v == nil {
		return l
	}

	if len(v.RequiredDirs) > 0 {
		l.RequiredDirs = v.RequiredDirs
	}
	if len(v.RequiredFiles) > 0 {
		l.RequiredFiles = v.RequiredFiles
	}
	if len(v.Imports) > 0 {
		l.Imports = v.Imports
	}
	if v.ConfigPath != "" {
		l.ConfigPath = v.ConfigPath
	}
	if len(v.RequiredSections) > 0 {
		l.RequiredSections = v.RequiredSections
	}
	if len(v.Docs) > 0 {
		l.Docs = v.Docs
	}
	if v.MinDocLength != nil {
		l.MinDocLength = *v.MinDocLength
	}
	return l
}
