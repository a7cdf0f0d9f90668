package lexspec

import (
	"fmt"
	"regexp"

	"github.com/ourPLCC/plcc/internal/container"
	"github.com/ourPLCC/plcc/internal/diag"
)

var namePattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// Validate checks every recognized Rule for name format, duplicate names,
// duplicate patterns, and pattern well-formedness, and flags every raw,
// unrecognized Entry as InvalidRule. It reports every violation it finds
// rather than stopping at the first.
func Validate(entries []Entry) []diag.Diagnostic {
	var diags []diag.Diagnostic
	names := container.NewStringSet()
	patterns := container.NewStringSet()

	for _, e := range entries {
		if e.RawLine != nil {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.InvalidRule,
				Line:    *e.RawLine,
				Message: fmt.Sprintf("invalid rule format found on line %d", e.RawLine.Number),
			})
			continue
		}

		r := e.Rule
		if !namePattern.MatchString(r.Name) {
			diags = append(diags, diag.Diagnostic{
				Kind: diag.InvalidNameFormat,
				Line: r.Line,
				Message: fmt.Sprintf(
					"invalid name format for rule %q (must be uppercase letters, numbers, and underscores, and cannot start with a number)",
					r.Name,
				),
			})
		}

		if names.Has(r.Name) {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.DuplicateName,
				Line:    r.Line,
				Message: fmt.Sprintf("duplicate rule name found %q", r.Name),
			})
		}
		names.Add(r.Name)

		if patterns.Has(r.Pattern) {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.DuplicatePattern,
				Line:    r.Line,
				Message: fmt.Sprintf("duplicate rule pattern found %q", r.Pattern),
			})
		}
		patterns.Add(r.Pattern)

		if invalidPattern(r.Pattern) {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.InvalidPattern,
				Line:    r.Line,
				Message: fmt.Sprintf("invalid pattern %q (patterns cannot be empty or contain an unescaped closing quote)", r.Pattern),
			})
		}
	}

	return diags
}

// invalidPattern reports whether pattern is empty or contains a quote
// character not preceded by a backslash escape.
func invalidPattern(pattern string) bool {
	if pattern == "" {
		return true
	}
	runes := []rune(pattern)
	for i, r := range runes {
		if r != '\'' && r != '"' {
			continue
		}
		if i == 0 || runes[i-1] != '\\' {
			return true
		}
	}
	return false
}
