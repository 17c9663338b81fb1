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

	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrFailed is returned by callers when a run recorded at least one error
var ErrFailed = errors.New("validation failed")

// 🏃 Runner executes checks in order
type Runner struct {
	checks  []Check
	console *log.Logger
}

// 🏗️ NewRunner creates a runner. console may be nil for silent runs.
func NewRunner(console *log.Logger, checks ...Check) *Runner {
	return &Runner{
		checks:  checks,
		console: console,
	}
}

// 🏃 Run executes every check exactly once, whatever earlier checks found.
// A check that returns an error or panics adds one error finding named
// after the check.
func (r *Runner) Run(ctx context.Context) *Results {
	results := NewResults(r.console)

	for _, c := range r.checks {
		if r.console != nil {
			r.console.Section(c.Name)
		}

		if err := runCheck(ctx, c, results); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("check", c.Name).Msg("check failed")
			results.Fail(fmt.Sprintf("%s: %v", c.Name, err), fmt.Sprintf("ERROR: %v", err))
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("passed", len(results.Passed())).
		Int("warnings", len(results.Warnings())).
		Int("errors", len(results.Errors())).
		Msg("validation complete")

	return results
}

func runCheck(ctx context.Context, c Check, results *Results) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("panic: %v", p)
		}
	}()
	return c.Run(ctx, results)
}
