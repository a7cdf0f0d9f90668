package astmodel

import (
	"fmt"

	"github.com/ourPLCC/plcc/internal/diag"
	"github.com/ourPLCC/plcc/internal/syntax"
)

// Build derives a Module and any DuplicateField diagnostics from a validated
// rule set, grouping productions by their LHS's plain name: a non-terminal
// with exactly one rule becomes a single concrete Class, one with more than
// one becomes an abstract base plus one concrete Class per rule.
func Build(rules []syntax.Rule) (Module, []diag.Diagnostic) {
	var module Module
	var diags []diag.Diagnostic

	groups := groupByLhsName(rules)
	for _, name := range orderedGroupNames(rules) {
		group := groups[name]
		if len(group) == 1 {
			c, d := buildConcreteClass(group[0], nil)
			module.Classes = append(module.Classes, c)
			diags = append(diags, d...)
			continue
		}

		baseSym := syntax.Symbol{Kind: syntax.LhsNonTerminal, Name: name}
		base := UnresolvedBaseClassName{Symbol: baseSym}
		module.Classes = append(module.Classes, Class{
			Name:       UnresolvedClassName{Symbol: baseSym},
			IsAbstract: true,
		})
		for _, r := range group {
			c, d := buildConcreteClass(r, base)
			module.Classes = append(module.Classes, c)
			diags = append(diags, d...)
		}
	}

	return module, diags
}

func buildConcreteClass(r syntax.Rule, extends Resolver) (Class, []diag.Diagnostic) {
	nameSym := syntax.Symbol{Kind: syntax.LhsNonTerminal, Name: r.Lhs.Name, AltName: r.Lhs.AltName}
	class := Class{
		Name:    UnresolvedClassName{Symbol: nameSym},
		Extends: extends,
	}

	var diags []diag.Diagnostic
	seen := map[string]bool{}
	var params []Parameter
	var assigns []AssignVariableToField

	for _, sym := range r.Rhs {
		if !sym.Captures() {
			continue
		}

		key := fieldKey(sym)
		if seen[key] {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.DuplicateField,
				Line:    r.Line,
				Message: fmt.Sprintf("duplicate field name %q in production for %q", key, r.Lhs.Name),
			})
			continue
		}
		seen[key] = true

		var varName, typeName Resolver
		if r.Repeating {
			varName = UnresolvedListVariableName{Symbol: sym}
			typeName = UnresolvedListTypeName{Symbol: sym}
		} else {
			varName = UnresolvedVariableName{Symbol: sym}
			typeName = UnresolvedTypeName{Symbol: sym}
		}

		class.Fields = append(class.Fields, FieldDeclaration{Name: varName, Type: typeName})
		params = append(params, Parameter{Name: varName, Type: typeName})
		assigns = append(assigns, AssignVariableToField{
			Lhs: FieldReference{Name: varName},
			Rhs: varName,
		})
	}

	class.Constructor = &Constructor{
		ClassName:  class.Name,
		Parameters: params,
		Body:       assigns,
	}

	return class, diags
}

// fieldKey is the pre-translation identity of a field: its override name if
// given, else its symbol name. Two RHS symbols collide exactly when this
// key collides, regardless of what a particular translator's casing rules
// would later do to it.
func fieldKey(sym syntax.Symbol) string {
	if sym.AltName != "" {
		return sym.AltName
	}
	return sym.Name
}

func groupByLhsName(rules []syntax.Rule) map[string][]syntax.Rule {
	groups := map[string][]syntax.Rule{}
	for _, r := range rules {
		groups[r.Lhs.Name] = append(groups[r.Lhs.Name], r)
	}
	return groups
}

// orderedGroupNames preserves first-appearance order of each distinct LHS
// name so Module.Classes comes out in the same order the specification
// declared its non-terminals, matching the Source Reader's ordering
// guarantee.
func orderedGroupNames(rules []syntax.Rule) []string {
	var order []string
	seen := map[string]bool{}
	for _, r := range rules {
		if !seen[r.Lhs.Name] {
			seen[r.Lhs.Name] = true
			order = append(order, r.Lhs.Name)
		}
	}
	return order
}
