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

// Package report renders the migration report.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/plan"
	"github.com/walteh/restructure/pkg/transfer"
	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// FileName is where the report is written, relative to the target root
const FileName = "MIGRATION_REPORT.md"

const (
	statusComplete   = "✓ Complete"
	statusIncomplete = "⚠ Incomplete"
)

// 📄 Reporter renders and persists the migration report
type Reporter struct {
	Generator string // Shown on the "Generated" line
	RunID     string

	ws *workspace.Workspace
}

// 🏭 New creates a reporter for the target workspace with a fresh run id
func New(ws *workspace.Workspace, generator string) *Reporter {
	return &Reporter{
		Generator: generator,
		RunID:     uuid.NewString(),
		ws:        ws,
	}
}

// Status returns the status label for a failure count
func Status(failed int) string {
	if failed == 0 {
		return statusComplete
	}
	return statusIncomplete
}

// 📝 Render builds the report text. Destination existence is checked on disk
// now, not taken from results, so later edits to the files are reflected.
func (r *Reporter) Render(ctx context.Context, results []transfer.Result, p plan.Plan) (string, error) {
	succeeded, failed := transfer.Summary(results)

	var b strings.Builder
	b.WriteString("# Migration Report\n\n")
	fmt.Fprintf(&b, "Generated: %s (run %s)\n\n", r.Generator, r.RunID)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Files copied successfully**: %d\n", succeeded)
	fmt.Fprintf(&b, "- **Files failed**: %d\n", failed)
	fmt.Fprintf(&b, "- **Result**: %d succeeded, %d failed\n", succeeded, failed)
	fmt.Fprintf(&b, "- **Status**: %s\n\n", Status(failed))

	b.WriteString("## File Mapping\n\n")
	b.WriteString("The following files were migrated:\n\n")
	b.WriteString("| Old Location | New Location | Status |\n")
	b.WriteString("|-------------|-------------|--------|\n")

	for _, e := range p {
		exists, err := r.ws.Exists(ctx, e.Destination)
		if err != nil {
			return "", errors.Errorf("checking %s: %w", e.Destination, err)
		}
		mark := "✗"
		if exists {
			mark = "✓"
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", e.Source, e.Destination, mark)
	}

	b.WriteString("\n")
	b.WriteString(manualSteps)
	return b.String(), nil
}

// 💾 Write renders the report and stores it under the target root.
// It returns the path written.
func (r *Reporter) Write(ctx context.Context, results []transfer.Result, p plan.Plan) (string, error) {
	text, err := r.Render(ctx, results, p)
	if err != nil {
		return "", errors.Errorf("rendering report: %w", err)
	}
	if err := r.ws.WriteFileAtomic(ctx, FileName, []byte(text)); err != nil {
		return "", errors.Errorf("writing report: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("run_id", r.RunID).Str("path", FileName).Msg("wrote migration report")
	return r.ws.Abs(FileName), nil
}

const manualSteps = "" +
	"## Manual Steps Required\n\n" +
	"### 1. Update Import Statements\n\n" +
	"Old imports like:\n" +
	"```python\n" +
	"from MOCU import *\n" +
	"from determineSyncN import *\n" +
	"```\n\n" +
	"Should become:\n" +
	"```python\n" +
	"from src.core.mocu_cuda import MOCU\n" +
	"from src.core.sync_detection import determineSyncN\n" +
	"```\n\n" +
	"### 2. Update Configuration\n\n" +
	"- Update `N_global` in CUDA kernel if needed\n" +
	"- Configure model paths in `configs/default_config.yaml`\n\n" +
	"### 3. Test Migration\n\n" +
	"Run the test suite:\n" +
	"```bash\n" +
	"pytest tests/ -v\n" +
	"```\n\n" +
	"### 4. Update Documentation\n\n" +
	"- Review and update docstrings\n" +
	"- Update README examples\n" +
	"- Check that all functions have type hints\n\n" +
	"## Known Issues\n\n" +
	"1. **Hard-coded paths**: Some files contain hard-coded paths that need updating\n" +
	"2. **N_global parameter**: CUDA kernel requires manual update for different N\n" +
	"3. **Model loading**: Update model paths in strategy files\n\n" +
	"## Validation Checklist\n\n" +
	"- [ ] All files copied successfully\n" +
	"- [ ] Import statements updated\n" +
	"- [ ] Tests pass\n" +
	"- [ ] Documentation reviewed\n" +
	"- [ ] Configuration files created\n" +
	"- [ ] Example scripts work\n\n" +
	"## Contact\n\n" +
	"If you encounter issues, please check:\n" +
	"- REORGANIZATION_GUIDE.md\n" +
	"- README.md\n" +
	"- GitHub issues\n"
