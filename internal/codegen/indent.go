package codegen

import "strings"

// indentLines prefixes every line with levels repetitions of unit. Blank
// lines are left alone so block spacing survives re-indentation.
//
// rosed (wired in internal/diag's report line-wrapping, see report.go) is
// deliberately not used here: its Editor operates on paragraph-separated
// prose and is not a byte-exact fit for preserving the blank separator line
// between a field block and a constructor block that generated output must
// reproduce verbatim.
func indentLines(lines []string, levels int, unit string) []string {
	prefix := strings.Repeat(unit, levels)
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = l
			continue
		}
		out[i] = prefix + l
	}
	return out
}
