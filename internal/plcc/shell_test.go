package plcc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourPLCC/plcc/internal/grammar"
	"github.com/ourPLCC/plcc/internal/source"
	"github.com/ourPLCC/plcc/internal/syntax"
)

func parseShellTestRules(t *testing.T, texts ...string) []syntax.Rule {
	t.Helper()
	var rules []syntax.Rule
	for i, text := range texts {
		r, err := syntax.Parse(source.Line{Path: "syn.plcc", Number: i + 1, Text: text})
		require.NoError(t, err)
		rules = append(rules, r)
	}
	return rules
}

func Test_Shell_Eval_Start(t *testing.T) {
	rules := parseShellTestRules(t, `<s> ::= <expr> END`, `<expr> ::= NUM`)
	g := grammar.New(rules)
	sets := grammar.ComputeSets(g)

	var out strings.Builder
	sh := &Shell{grammar: g, sets: sets, out: &out}

	assert.Equal(t, "s", sh.Eval("start"))
}

func Test_Shell_Eval_FirstAndFollow(t *testing.T) {
	rules := parseShellTestRules(t, `<s> ::= <expr> END`, `<expr> ::= NUM`)
	g := grammar.New(rules)
	sets := grammar.ComputeSets(g)

	var out strings.Builder
	sh := &Shell{grammar: g, sets: sets, out: &out}

	assert.Equal(t, "{NUM}", sh.Eval("first expr"))
	assert.Equal(t, "{END}", sh.Eval("follow expr"))
}

func Test_Shell_Eval_UnknownNonTerminal(t *testing.T) {
	rules := parseShellTestRules(t, `<s> ::= NUM`)
	g := grammar.New(rules)
	sets := grammar.ComputeSets(g)

	var out strings.Builder
	sh := &Shell{grammar: g, sets: sets, out: &out}

	assert.Contains(t, sh.Eval("first nope"), "unknown non-terminal")
}

func Test_Shell_Eval_Help(t *testing.T) {
	sh := &Shell{}
	assert.Contains(t, sh.Eval("help"), "commands:")
}

func Test_Shell_Eval_Unrecognized(t *testing.T) {
	sh := &Shell{}
	assert.Contains(t, sh.Eval("frobnicate"), "unrecognized command")
}
