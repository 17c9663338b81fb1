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

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/restructure/cmd/restructure/opts"
	"github.com/walteh/restructure/pkg/log"
	"github.com/walteh/restructure/pkg/migrate"
	"github.com/walteh/restructure/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// NewMigrateCmd creates a new migrate command
func NewMigrateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		source string
		target string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move project files into the reorganized layout",
		Long: `Migrate reorganizes a project tree. It will:
1. Create the directory structure and package markers
2. Copy and merge files according to the plan
3. Add documentation headers to key files
4. Write MIGRATION_REPORT.md to the target root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			console := log.FromContext(ctx)

			src, err := filepath.Abs(source)
			if err != nil {
				return errors.Errorf("resolving source root: %w", err)
			}
			dst, err := filepath.Abs(target)
			if err != nil {
				return errors.Errorf("resolving target root: %w", err)
			}

			fmt.Fprintf(out, "Old base: %s\n", src)
			fmt.Fprintf(out, "New base: %s\n\n", dst)

			if !yes && !Confirm(cmd.InOrStdin(), out, "Proceed with migration?") {
				fmt.Fprintln(out, "Migration cancelled.")
				return nil
			}

			console.Banner("MOCU-OED Project Migration")

			outcome, err := migrate.New(console, migrate.Options{
				SourceRoot: src,
				TargetRoot: dst,
				Config:     o.Config,
			}).Run(ctx)
			if err != nil {
				return errors.Errorf("running migration: %w", err)
			}

			console.LogNewline()
			console.Banner("Migration complete!")
			console.Infof("Run id: %s", outcome.RunID)
			o.User.LogValidation(outcome.Failed == 0, fmt.Sprintf("%d succeeded, %d failed", outcome.Succeeded, outcome.Failed), nil)
			o.User.NextSteps("Next steps:", []string{
				"Review " + report.FileName,
				"Run validation: restructure validate --root " + target,
				"Run tests: pytest tests/",
				"Update import statements as needed",
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", ".", "root the plan's source paths are relative to")
	cmd.Flags().StringVarP(&target, "target", "t", ".", "root the reorganized layout is written to")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
