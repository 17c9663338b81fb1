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

package migrate

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/config"
	"github.com/walteh/restructure/pkg/header"
	"github.com/walteh/restructure/pkg/log"
	"github.com/walteh/restructure/pkg/provision"
	"github.com/walteh/restructure/pkg/report"
	"github.com/walteh/restructure/pkg/transfer"
	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// DefaultGenerator names the tool on the report's "Generated" line
const DefaultGenerator = "restructure migrate"

// 🎯 Options configures a migration
type Options struct {
	SourceRoot string         // Root the plan's sources are relative to
	TargetRoot string         // Root the plan's destinations are relative to
	Config     *config.Config // nil means built-in defaults
	Generator  string         // Shown in the report, DefaultGenerator when empty
}

// 📊 Outcome is what a completed migration did
type Outcome struct {
	RunID      string
	Results    []transfer.Result
	Succeeded  int
	Failed     int
	Headers    []string // Files that received a header
	ReportPath string
}

// 🏃 Migrator runs provision, transfer, annotate and report in that order
type Migrator struct {
	opts    Options
	console *log.Logger
}

// 🏭 New creates a migrator. A nil console runs silently.
func New(console *log.Logger, opts Options) *Migrator {
	if console == nil {
		console = log.New(io.Discard, zerolog.Nop())
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}
	return &Migrator{
		opts:    opts,
		console: console,
	}
}

// 🚀 Run executes the migration. Missing sources and failed transfers are
// recorded in the outcome; failing to provision directories, write a header
// or write the report aborts the run with an error.
func (m *Migrator) Run(ctx context.Context) (*Outcome, error) {
	p, err := m.opts.Config.Plan()
	if err != nil {
		return nil, errors.Errorf("building plan: %w", err)
	}

	target := workspace.New(m.opts.TargetRoot)
	reporter := report.New(target, m.opts.Generator)

	logger := zerolog.Ctx(ctx).With().Str("run_id", reporter.RunID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().
		Str("source", m.opts.SourceRoot).
		Str("target", m.opts.TargetRoot).
		Int("entries", len(p)).
		Msg("starting migration")

	out := &Outcome{RunID: reporter.RunID}

	// 1. directories
	m.console.Step(1, "Creating directory structure...")
	dirs := m.opts.Config.Dirs()
	if err := provision.New(target, dirs, m.opts.Config.Roots()).Provision(ctx); err != nil {
		return nil, errors.Errorf("creating directory structure: %w", err)
	}
	m.console.Pass(fmt.Sprintf("Directory structure ready (%d directories)", len(dirs)))

	// 2. files
	m.console.Step(2, "Copying files...")
	out.Results = transfer.New(m.opts.SourceRoot, m.opts.TargetRoot, m.console).Run(ctx, p)
	out.Succeeded, out.Failed = transfer.Summary(out.Results)
	fmt.Fprintf(m.console.Console(), "\nSummary: %d succeeded, %d failed\n", out.Succeeded, out.Failed)
	if out.Failed > 0 {
		m.console.Warningf("%d of %d transfers did not complete", out.Failed, len(out.Results))
	}

	// 3. headers
	m.console.Step(3, "Adding headers to key files...")
	annotator := header.New(target)
	for _, h := range m.opts.Config.HeaderSpecs() {
		changed, err := annotator.Annotate(ctx, h.Path, h.Description)
		if err != nil {
			return nil, errors.Errorf("annotating %s: %w", h.Path, err)
		}
		if changed {
			out.Headers = append(out.Headers, h.Path)
			m.console.Pass("Added header: " + h.Path)
		}
	}

	// 4. report
	m.console.Step(4, "Creating migration report...")
	out.ReportPath, err = reporter.Write(ctx, out.Results, p)
	if err != nil {
		return nil, errors.Errorf("creating migration report: %w", err)
	}
	m.console.Pass("Created: " + out.ReportPath)

	logger.Info().
		Int("succeeded", out.Succeeded).
		Int("failed", out.Failed).
		Int("headers", len(out.Headers)).
		Msg("migration finished")

	return out, nil
}
