package grammar

import (
	"fmt"
	"sort"

	"github.com/ourPLCC/plcc/internal/container"
	"github.com/ourPLCC/plcc/internal/diag"
)

// PredictSet computes the predict set of a single production: FIRST(α) \
// {ε}, plus FOLLOW(A) when ε ∈ FIRST(α).
func PredictSet(s Sets, lhs string, p Production) container.StringSet {
	first := s.firstOfSequence(p.Symbol)
	predict := container.NewStringSet()
	for f := range first {
		if f != epsilonName {
			predict.Add(f)
		}
	}
	if first.Has(epsilonName) {
		predict.AddAll(s.Follow[lhs])
	}
	return predict
}

// CheckLL1 verifies, for every non-terminal, that its productions' predict
// sets are pairwise disjoint, and flags any non-terminal whose productions
// together predict nothing at all. Predict sets are computed once up front
// and conflicts are reported in a fixed (sorted-by-non-terminal) order so
// diagnostic output is deterministic regardless of map iteration order.
func CheckLL1(g *Grammar, s Sets) []diag.Diagnostic {
	var diags []diag.Diagnostic

	for _, nt := range sortedKeys(g.Rules) {
		prods := g.Rules[nt]
		predicts := make([]container.StringSet, len(prods))
		union := container.NewStringSet()
		for i, p := range prods {
			predicts[i] = PredictSet(s, nt, p)
			union.AddAll(predicts[i])
		}

		if union.Len() == 0 {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.UselessOrLeftRecursive,
				Line:    prods[0].Rule.Line,
				Message: fmt.Sprintf("%s predicts nothing (useless or left-recursive)", nt),
			})
			continue
		}

		for i := 0; i < len(prods); i++ {
			for j := i + 1; j < len(prods); j++ {
				overlap := intersect(predicts[i], predicts[j])
				if overlap.Len() == 0 {
					continue
				}
				diags = append(diags, diag.Diagnostic{
					Kind: diag.Ll1Conflict,
					Line: prods[j].Rule.Line,
					Message: fmt.Sprintf(
						"%s has a predict conflict on %s between productions at line %d and line %d",
						nt, overlap, prods[i].Rule.Line.Number, prods[j].Rule.Line.Number,
					),
				})
			}
		}
	}

	return diags
}

func intersect(a, b container.StringSet) container.StringSet {
	result := container.NewStringSet()
	for e := range a {
		if b.Has(e) {
			result.Add(e)
		}
	}
	return result
}

func sortedKeys(m map[string][]Production) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
