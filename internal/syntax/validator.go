package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ourPLCC/plcc/internal/container"
	"github.com/ourPLCC/plcc/internal/diag"
)

var (
	lhsNamePattern    = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]+$`)
	lhsAltNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9_]+$`)
)

// Validate runs shape checks independent of whether the grammar is LL(1):
// LHS name/altName format, duplicate resolved LHS names, and RHS
// non-terminals that never appear as an LHS anywhere in the rule set. It
// reports every violation rather than stopping at the first.
func Validate(rules []Rule) []diag.Diagnostic {
	var diags []diag.Diagnostic
	resolved := container.NewStringSet()
	lhsNames := container.NewStringSet()

	for _, r := range rules {
		if !lhsNamePattern.MatchString(r.Lhs.Name) {
			diags = append(diags, diag.Diagnostic{
				Kind: diag.InvalidLhsName,
				Line: r.Line,
				Message: fmt.Sprintf(
					"invalid LHS name format for rule %q (must start with a lower-case letter, and may contain letters, numbers, and underscores)",
					strings.TrimSpace(r.Line.Text),
				),
			})
		}

		if r.Lhs.AltName != "" && !lhsAltNamePattern.MatchString(r.Lhs.AltName) {
			diags = append(diags, diag.Diagnostic{
				Kind: diag.InvalidLhsAltName,
				Line: r.Line,
				Message: fmt.Sprintf(
					"invalid LHS alternate name format for rule %q (must start with an upper-case letter, and may contain letters, numbers, and underscores)",
					strings.TrimSpace(r.Line.Text),
				),
			})
		}

		name := resolvedLhsName(r.Lhs)
		if resolved.Has(name) {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.DuplicateLhs,
				Line:    r.Line,
				Message: fmt.Sprintf("duplicate LHS name %q on %q", name, strings.TrimSpace(r.Line.Text)),
			})
		}
		resolved.Add(name)
		lhsNames.Add(r.Lhs.Name)
	}

	for _, r := range rules {
		for _, sym := range r.Rhs {
			if sym.Kind != RhsNonTerminal {
				continue
			}
			if !lhsNames.Has(sym.Name) {
				diags = append(diags, diag.Diagnostic{
					Kind:    diag.UndefinedNonterminal,
					Line:    r.Line,
					Message: fmt.Sprintf("undefined nonterminal %q", sym.Name),
				})
			}
		}
	}

	return diags
}

// resolvedLhsName is the name an LHS resolves to for duplicate checking and
// class naming: its altName if given, else its name with the first letter
// capitalized.
func resolvedLhsName(lhs Symbol) string {
	if lhs.AltName != "" {
		return lhs.AltName
	}
	return capitalize(lhs.Name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
