// Package syntax implements the Syntactic Parser and Validator: it turns
// lines of the syntactic section into Rules built from Symbols, then checks
// the resulting rule set's shape independently of LL(1) analysis.
package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ourPLCC/plcc/internal/diag"
	"github.com/ourPLCC/plcc/internal/source"
)

// Rule is one production recognized from a single syntactic-section line.
type Rule struct {
	Line      source.Line
	Lhs       Symbol
	Rhs       []Symbol
	Repeating bool
	Separator *Symbol
}

// ParseError reports why a line could not be parsed into a Rule, carrying
// the diag.Kind its caller should report.
type ParseError struct {
	Kind    diag.Kind
	Message string
}

func (e *ParseError) Error() string { return e.Message }

var (
	ruleSplit       = regexp.MustCompile(`^(.*)(::=|\*\*=)(.*)$`)
	angledSymbol    = regexp.MustCompile(`^\s*<(\w+)(?::(\w*))?>`)
	bareSymbol      = regexp.MustCompile(`^\s*(\w+)`)
	separatorPrefix = regexp.MustCompile(`^\s*\+`)
	eolComment      = regexp.MustCompile(`^\s*#.*$`)
	terminalPattern = regexp.MustCompile(`^[A-Z_]+$`)
)

// Parse recognizes line as `<lhs>[:Alt] OP symbol* [+ sep] [#comment]`,
// scanning the RHS left to right exactly once: symbols, then an optional
// separator, then an optional trailing comment. Any text left over after
// that is ExtraContent.
func Parse(line source.Line) (Rule, error) {
	text := strings.TrimRight(line.Text, "\n")

	m := ruleSplit.FindStringSubmatch(text)
	if m == nil {
		return Rule{}, &ParseError{
			Kind:    diag.MissingDefinitionOperator,
			Message: fmt.Sprintf("missing '::=' or '**=' on line %d", line.Number),
		}
	}
	lhsText, op, rhsText := m[1], m[2], m[3]

	lhs, err := parseLhs(lhsText)
	if err != nil {
		return Rule{}, err
	}

	rest := rhsText
	var rhs []Symbol
	for {
		sym, remainder, ok := parseSymbol(rest)
		if !ok {
			break
		}
		rhs = append(rhs, sym)
		rest = remainder
	}

	var sep *Symbol
	if loc := separatorPrefix.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
		sym, remainder, ok := parseSymbol(rest)
		if !ok {
			return Rule{}, &ParseError{
				Kind:    diag.InvalidTerminal,
				Message: fmt.Sprintf("invalid separator on line %d", line.Number),
			}
		}
		if !sym.IsTerminal() {
			return Rule{}, &ParseError{
				Kind:    diag.SeparatorMustBeTerminal,
				Message: fmt.Sprintf("separator must be a terminal on line %d", line.Number),
			}
		}
		rest = remainder
		sep = &sym
	}

	if loc := eolComment.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]] + rest[loc[1]:]
	}

	if strings.TrimSpace(rest) != "" {
		return Rule{}, &ParseError{
			Kind:    diag.ExtraContent,
			Message: fmt.Sprintf("extra content %q on line %d", strings.TrimSpace(rest), line.Number),
		}
	}

	return Rule{
		Line:      line,
		Lhs:       lhs,
		Rhs:       rhs,
		Repeating: op == "**=",
		Separator: sep,
	}, nil
}

// parseLhs recognizes the single leading symbol of a rule's LHS text and
// requires it to resolve as a non-terminal.
func parseLhs(lhsText string) (Symbol, error) {
	sym, remainder, ok := parseSymbol(lhsText)
	if !ok || strings.TrimSpace(remainder) != "" {
		return Symbol{}, &ParseError{
			Kind:    diag.InvalidNonterminal,
			Message: fmt.Sprintf("invalid LHS %q", strings.TrimSpace(lhsText)),
		}
	}
	if sym.IsTerminal() {
		return Symbol{}, &ParseError{
			Kind:    diag.InvalidNonterminal,
			Message: fmt.Sprintf("LHS %q must be a non-terminal", sym.Name),
		}
	}
	return Symbol{Kind: LhsNonTerminal, Name: sym.Name, AltName: sym.AltName}, nil
}

// parseSymbol consumes one leading symbol from s: either an angle-bracketed
// `<name>` / `<name:alt>` form, or a bare `NAME` form.
func parseSymbol(s string) (Symbol, string, bool) {
	if m := angledSymbol.FindStringSubmatchIndex(s); m != nil {
		name := s[m[2]:m[3]]
		alt := ""
		if m[4] != -1 {
			alt = s[m[4]:m[5]]
		}
		remainder := s[m[1]:]
		if terminalPattern.MatchString(name) {
			return Symbol{Kind: CapturingTerminal, Name: name, AltName: alt}, remainder, true
		}
		return Symbol{Kind: RhsNonTerminal, Name: name, AltName: alt}, remainder, true
	}

	if m := bareSymbol.FindStringSubmatchIndex(s); m != nil {
		name := s[m[2]:m[3]]
		remainder := s[m[1]:]
		return Symbol{Kind: Terminal, Name: name}, remainder, true
	}

	return Symbol{}, s, false
}
