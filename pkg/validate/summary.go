package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// 📊 WriteSummary prints counts followed by the warning and error lists
func WriteSummary(w io.Writer, r *Results) {
	rule := strings.Repeat("=", 70)
	passed, warnings, errs := r.Passed(), r.Warnings(), r.Errors()

	fmt.Fprintf(w, "\n%s\nValidation Summary\n%s\n\n", rule, rule)
	fmt.Fprintf(w, "%s Passed:   %d\n", color.GreenString("✓"), len(passed))
	fmt.Fprintf(w, "%s Warnings: %d\n", color.YellowString("⚠"), len(warnings))
	fmt.Fprintf(w, "%s Errors:   %d\n", color.RedString("✗"), len(errs))

	if len(warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", color.YellowString("⚠ Warnings:"))
		for _, msg := range warnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}

	if len(errs) > 0 {
		fmt.Fprintf(w, "\n%s\n", color.RedString("✗ Errors:"))
		for _, msg := range errs {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	} else {
		fmt.Fprintf(w, "\n%s\n", color.GreenString("All validation checks passed!"))
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}
