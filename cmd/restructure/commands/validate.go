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
	"github.com/walteh/restructure/pkg/validate"
	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// NewValidateCmd creates a new validate command
func NewValidateCmd(o *opts.RootOpts) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a project matches the reorganized layout",
		Long: `Validate inspects a project tree and prints every finding. It checks:
1. Required directories
2. Required files
3. Module resolvability
4. Configuration sections
5. Documentation

Warnings never fail a run. Any error makes the command exit non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(root)
			if err != nil {
				return errors.Errorf("resolving project root: %w", err)
			}

			console := log.FromContext(cmd.Context())

			fmt.Fprintf(cmd.OutOrStdout(), "Project root: %s\n\n", abs)
			console.Banner("MOCU-OED Project Validation")

			ws := workspace.New(abs)
			checks := validate.Checks(ws, o.Config.Layout(), validate.NewPythonResolver(abs))
			results := validate.NewRunner(console, checks...).Run(cmd.Context())

			validate.WriteSummary(cmd.OutOrStdout(), results)

			if !results.OK() {
				console.Errorf("Validation failed with %d errors", len(results.Errors()))
				return errors.Errorf("%d errors: %w", len(results.Errors()), validate.ErrFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", ".", "project root to validate")

	return cmd
}
