package grammar

import "github.com/ourPLCC/plcc/internal/container"

const (
	epsilonName = ""     // the empty-derivation marker
	eofName     = "\x03" // the end-of-input marker (end-of-text character)
)

// Sets holds the FIRST and FOLLOW tables computed for a Grammar, keyed by
// symbol name. Epsilon is represented by epsilonName ("") as a set member;
// EOF is represented by eofName.
type Sets struct {
	First  map[string]container.StringSet
	Follow map[string]container.StringSet
}

// ComputeSets runs the standard fixed-point FIRST and FOLLOW algorithms:
// repeat until no set grows. Terminals are seeded with
// FIRST(t) = {t}; every non-terminal starts empty and grows monotonically,
// which both guarantees termination and makes the order of productions
// visited irrelevant to the final result.
func ComputeSets(g *Grammar) Sets {
	s := Sets{
		First:  map[string]container.StringSet{},
		Follow: map[string]container.StringSet{},
	}

	for t := range g.Terminals {
		s.First[t] = container.NewStringSet(t)
	}
	for nt := range g.NonTerms {
		s.First[nt] = container.NewStringSet()
		s.Follow[nt] = container.NewStringSet()
	}

	s.Follow[g.StartSymbol].Add(eofName)

	for changed := true; changed; {
		changed = false
		for nt, prods := range g.Rules {
			for _, p := range prods {
				before := s.First[nt].Len()
				s.First[nt].AddAll(s.firstOfSequence(p.Symbol))
				if s.First[nt].Len() != before {
					changed = true
				}
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for _, prods := range g.Rules {
			for _, p := range prods {
				for i, sym := range p.Symbol {
					if !g.IsNonTerminal(sym) {
						continue
					}
					beta := p.Symbol[i+1:]
					betaFirst := s.firstOfSequence(beta)

					before := s.Follow[sym].Len()
					for b := range betaFirst {
						if b != epsilonName {
							s.Follow[sym].Add(b)
						}
					}
					if betaFirst.Has(epsilonName) || len(beta) == 0 {
						s.Follow[sym].AddAll(s.Follow[p.Rule.Lhs.Name])
					}
					if s.Follow[sym].Len() != before {
						changed = true
					}
				}
			}
		}
	}

	return s
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) from already-seeded or
// partially-computed per-symbol FIRST sets: the union of FIRST(X1), and of
// FIRST(Xi) for each i whose predecessors can all derive epsilon, including
// epsilon itself only if every Xi can derive epsilon (or the sequence is
// empty, i.e. an epsilon production).
func (s Sets) firstOfSequence(seq []string) container.StringSet {
	result := container.NewStringSet()
	if len(seq) == 0 {
		result.Add(epsilonName)
		return result
	}

	allDeriveEpsilon := true
	for _, x := range seq {
		first := s.First[x]
		for f := range first {
			if f != epsilonName {
				result.Add(f)
			}
		}
		if !first.Has(epsilonName) {
			allDeriveEpsilon = false
			break
		}
	}
	if allDeriveEpsilon {
		result.Add(epsilonName)
	}
	return result
}
