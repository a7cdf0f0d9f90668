package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func Test_ComputeSets_RepeatingRuleCanDeriveEpsilon(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= <list> END`, `<list> **= <item> + COMMA`, `<item> ::= NUM`)
	g := New(rules)
	sets := ComputeSets(g)

	assert.True(sets.First["list"].Has(epsilonName))
	assert.True(sets.First["list"].Has("NUM"))
	assert.True(sets.Follow["list"].Has("END"))
}

func Test_PredictSet_IncludesFollowWhenEpsilonDerivable(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= <list> END`, `<list> **= <item> + COMMA`, `<item> ::= NUM`)
	g := New(rules)
	sets := ComputeSets(g)

	for _, p := range g.Rules["list"] {
		predict := PredictSet(sets, "list", p)
		if len(p.Symbol) == 0 {
			assert.True(predict.Has("END"), "epsilon production of list must predict on FOLLOW(list)")
		}
	}
}

func Test_ComputeSets_FirstAndFollowExactMembership(t *testing.T) {
	rules := parseRules(t, `<s> ::= <expr> END`, `<expr> ::= NUM PLUS NUM`, `<expr> ::= NUM`)
	g := New(rules)
	sets := ComputeSets(g)

	if diff := cmp.Diff([]string{"NUM"}, sets.First["expr"].Ordered()); diff != "" {
		t.Errorf("FIRST(expr) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"END"}, sets.Follow["expr"].Ordered()); diff != "" {
		t.Errorf("FOLLOW(expr) mismatch (-want +got):\n%s", diff)
	}
}
