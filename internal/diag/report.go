package diag

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// previewWidth bounds how wide a rendered diagnostic's offending-line
// preview is allowed to run before Report wraps it.
const previewWidth = 100

// Report is the final, ordered result of a single plcc run: every Diagnostic
// collected across the pipeline, tagged with a RunID so a user comparing two
// .plccdebug dumps can tell which report produced which dump.
type Report struct {
	RunID       uuid.UUID
	Diagnostics []Diagnostic
}

// NewReport builds a Report from a Collector's accumulated Diagnostics,
// minting a fresh RunID. Diagnostic order is preserved as collected.
func NewReport(c *Collector) (Report, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Report{}, fmt.Errorf("minting run id: %w", err)
	}
	return Report{RunID: id, Diagnostics: c.All()}, nil
}

// HasErrors reports whether any Diagnostic in the Report is Fatal.
func (r Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Fatal() {
			return true
		}
	}
	return false
}

// String renders the full report, each diagnostic on its own block, together
// with a run-id header for correlation with a debug dump produced by the
// same invocation.
func (r Report) String() string {
	if len(r.Diagnostics) == 0 {
		return fmt.Sprintf("run %s: no diagnostics\n", r.RunID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d diagnostic(s)\n", r.RunID, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "%d [%s]: %s\n", d.Line.Number, d.Line.Path, d.Message)
		preview := rosed.Edit(d.Line.Text).Wrap(previewWidth).String()
		b.WriteString(preview)
		b.WriteString("\n")
	}
	return b.String()
}
