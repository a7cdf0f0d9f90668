// Package grammar builds the grammar graph from a validated syntactic
// specification and runs LL(1) analysis over it: FIRST/FOLLOW/predict-set
// computation, conflict detection, and repeating-rule normalization.
package grammar

import (
	"github.com/ourPLCC/plcc/internal/container"
	"github.com/ourPLCC/plcc/internal/diag"
	"github.com/ourPLCC/plcc/internal/syntax"
)

// Production is one RHS alternative of a non-terminal, expanded to normal
// form: repeating rules are rewritten before the analyzer ever sees them, so
// every Production here is an ordinary sequence of symbol names.
type Production struct {
	Rule   syntax.Rule // the originating rule, for diagnostic anchoring
	Symbol []string    // RHS symbol names in order
}

// Grammar is the graph the LL(1) analyzer operates on: non-terminals mapped
// to their productions, plus the set of known terminals.
type Grammar struct {
	StartSymbol string
	Rules       map[string][]Production
	Terminals   container.StringSet
	NonTerms    container.StringSet

	// continuations holds the synthesized non-terminals a repeating rule
	// `A **= α + s` expands into: `A -> ε | α Acont`, `Acont -> ε | s α
	// Acont`. Keyed by the original rule's LHS name.
	continuations map[string]string
}

// New builds a Grammar from validated rules. Rules is assumed to have
// already passed syntax.Validate; New does no shape validation of its own.
// The first rule's LHS becomes the start symbol.
func New(rules []syntax.Rule) *Grammar {
	g := &Grammar{
		Rules:         map[string][]Production{},
		Terminals:     container.NewStringSet(),
		NonTerms:      container.NewStringSet(),
		continuations: map[string]string{},
	}

	for i, r := range rules {
		name := r.Lhs.Name
		if i == 0 {
			g.StartSymbol = name
		}
		g.NonTerms.Add(name)

		if r.Repeating {
			g.addRepeatingRule(r)
			continue
		}

		prod := Production{Rule: r}
		for _, sym := range r.Rhs {
			prod.Symbol = append(prod.Symbol, g.track(sym))
		}
		g.Rules[name] = append(g.Rules[name], prod)
	}

	return g
}

// track records sym's name as a known terminal or non-terminal and returns
// that name, the canonical key everything else in this package keys on.
func (g *Grammar) track(sym syntax.Symbol) string {
	if sym.IsTerminal() {
		g.Terminals.Add(sym.Name)
	} else {
		g.NonTerms.Add(sym.Name)
	}
	return sym.Name
}

// addRepeatingRule expands `A **= α + s` into normal form: `A -> ε | α
// Acont` and a synthesized `Acont -> ε | s α Acont`, where Acont is a fresh
// continuation non-terminal private to this rule.
func (g *Grammar) addRepeatingRule(r syntax.Rule) {
	name := r.Lhs.Name
	cont := name + "$cont"
	g.continuations[name] = cont
	g.NonTerms.Add(cont)

	var alpha []string
	for _, sym := range r.Rhs {
		alpha = append(alpha, g.track(sym))
	}

	g.Rules[name] = append(g.Rules[name],
		Production{Rule: r, Symbol: nil},
		Production{Rule: r, Symbol: append(append([]string{}, alpha...), cont)},
	)

	contAlpha := []string{}
	if r.Separator != nil {
		contAlpha = append(contAlpha, g.track(*r.Separator))
	}
	contAlpha = append(contAlpha, alpha...)
	contAlpha = append(contAlpha, cont)

	g.Rules[cont] = append(g.Rules[cont],
		Production{Rule: r, Symbol: nil},
		Production{Rule: r, Symbol: contAlpha},
	)
}

// IsTerminal reports whether name was ever seen as a terminal symbol.
func (g *Grammar) IsTerminal(name string) bool {
	return g.Terminals.Has(name)
}

// IsNonTerminal reports whether name was ever seen as a non-terminal.
func (g *Grammar) IsNonTerminal(name string) bool {
	return g.NonTerms.Has(name)
}

// NonTerminals returns every non-terminal name in the grammar, including
// synthesized continuations, in sorted order.
func (g *Grammar) NonTerminals() []string {
	return g.NonTerms.Ordered()
}

// Diagnostics reports structural problems a later analysis stage cannot
// recover from: a production referencing a symbol that is neither a known
// terminal nor a known non-terminal. syntax.Validate should already have
// caught UndefinedNonterminal, so this exists as a defensive second check
// for whatever reaches this package directly (e.g. from tests or tools).
func (g *Grammar) Diagnostics() []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, prods := range g.Rules {
		for _, p := range prods {
			for _, sym := range p.Symbol {
				if !g.IsTerminal(sym) && !g.IsNonTerminal(sym) {
					diags = append(diags, diag.Diagnostic{
						Kind:    diag.UndefinedNonterminal,
						Line:    p.Rule.Line,
						Message: "undefined symbol " + sym,
					})
				}
			}
		}
	}
	return diags
}
