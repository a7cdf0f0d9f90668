package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourPLCC/plcc/internal/source"
)

func line(text string) source.Line {
	return source.Line{Path: "syn.plcc", Number: 1, Text: text}
}

func Test_Parse_SimpleRule(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<s> ::= A B`))
	require.NoError(t, err)

	assert.Equal(LhsNonTerminal, r.Lhs.Kind)
	assert.Equal("s", r.Lhs.Name)
	assert.False(r.Repeating)
	require.Len(t, r.Rhs, 2)
	assert.Equal(Terminal, r.Rhs[0].Kind)
	assert.Equal("A", r.Rhs[0].Name)
	assert.Equal(Terminal, r.Rhs[1].Kind)
}

func Test_Parse_RepeatingRuleWithSeparator(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<list> **= <item> + COMMA`))
	require.NoError(t, err)

	assert.True(r.Repeating)
	require.Len(t, r.Rhs, 1)
	assert.Equal(RhsNonTerminal, r.Rhs[0].Kind)
	require.NotNil(t, r.Separator)
	assert.Equal("COMMA", r.Separator.Name)
}

func Test_Parse_AltNameAndFieldOverride(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<expr:Binary> ::= <left:l> PLUS <right:r>`))
	require.NoError(t, err)

	assert.Equal("Binary", r.Lhs.AltName)
	require.Len(t, r.Rhs, 3)
	assert.Equal(RhsNonTerminal, r.Rhs[0].Kind)
	assert.Equal("l", r.Rhs[0].AltName)
	assert.Equal(RhsNonTerminal, r.Rhs[2].Kind)
	assert.Equal("r", r.Rhs[2].AltName)
}

func Test_Parse_CapturingTerminal(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<lit> ::= <NUM>`))
	require.NoError(t, err)

	require.Len(t, r.Rhs, 1)
	assert.Equal(CapturingTerminal, r.Rhs[0].Kind)
	assert.Equal("NUM", r.Rhs[0].Name)
}

func Test_Parse_TrailingComment(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<s> ::= A B # a comment`))
	require.NoError(t, err)
	assert.Len(r.Rhs, 2)
}

func Test_Parse_MissingDefinitionOperator(t *testing.T) {
	assert := assert.New(t)
	_, err := Parse(line(`<s> A B`))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal("MissingDefinitionOperator", string(pe.Kind))
}

func Test_Parse_ExtraContentAfterSeparator(t *testing.T) {
	assert := assert.New(t)
	_, err := Parse(line(`<s> ::= A B + COMMA garbage`))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal("ExtraContent", string(pe.Kind))
}

func Test_Parse_LhsMustBeNonTerminal(t *testing.T) {
	assert := assert.New(t)
	_, err := Parse(line(`BAD ::= A`))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal("InvalidNonterminal", string(pe.Kind))
}

func Test_Parse_SeparatorMustBeTerminal(t *testing.T) {
	assert := assert.New(t)
	_, err := Parse(line(`<list> **= <item> + <other>`))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal("SeparatorMustBeTerminal", string(pe.Kind))
}
