package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourPLCC/plcc/internal/source"
	"github.com/ourPLCC/plcc/internal/syntax"
)

func sourceLine(number int, text string) source.Line {
	return source.Line{Path: "syn.plcc", Number: number, Text: text}
}

func parseRules(t *testing.T, texts ...string) []syntax.Rule {
	t.Helper()
	var rules []syntax.Rule
	for i, text := range texts {
		r, err := syntax.Parse(sourceLine(i+1, text))
		require.NoError(t, err)
		rules = append(rules, r)
	}
	return rules
}

func Test_New_TracksTerminalsAndNonTerminals(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= <expr> PLUS <expr>`, `<expr> ::= NUM`)
	g := New(rules)

	assert.Equal("s", g.StartSymbol)
	assert.True(g.IsNonTerminal("expr"))
	assert.True(g.IsTerminal("PLUS"))
	assert.True(g.IsTerminal("NUM"))
}

func Test_ComputeSets_SimpleChain(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= <expr>`, `<expr> ::= NUM`)
	g := New(rules)
	sets := ComputeSets(g)

	assert.True(sets.First["expr"].Has("NUM"))
	assert.True(sets.First["s"].Has("NUM"))
	assert.True(sets.Follow["s"].Has(eofName))
	assert.True(sets.Follow["expr"].Has(eofName))
}

func Test_ComputeSets_FollowPicksUpNextSymbolsFirst(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= <opt> END`, `<opt> ::= A`)
	g := New(rules)
	sets := ComputeSets(g)

	assert.True(sets.Follow["opt"].Has("END"))
}

func Test_CheckLL1_DetectsConflict(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= A B`, `<s> ::= A C`)
	g := New(rules)
	sets := ComputeSets(g)

	diags := CheckLL1(g, sets)
	require.Len(t, diags, 1)
	assert.Equal("Ll1Conflict", string(diags[0].Kind))
}

func Test_CheckLL1_DetectsUselessOrLeftRecursive(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<a> ::= <a> X`)
	g := New(rules)
	sets := ComputeSets(g)

	diags := CheckLL1(g, sets)
	require.Len(t, diags, 1)
	assert.Equal("UselessOrLeftRecursive", string(diags[0].Kind))
}

func Test_CheckLL1_AcceptsDisjointPredictSets(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<s> ::= A`, `<s> ::= B`)
	g := New(rules)
	sets := ComputeSets(g)

	assert.Empty(CheckLL1(g, sets))
}

func Test_New_RepeatingRuleExpandsToNormalForm(t *testing.T) {
	assert := assert.New(t)
	rules := parseRules(t, `<list> **= <item> + COMMA`, `<item> ::= NUM`)
	g := New(rules)

	require.Len(t, g.Rules["list"], 2)
	cont := g.continuations["list"]
	require.NotEmpty(t, cont)
	require.Len(t, g.Rules[cont], 2)
}
