package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Rule {
	t.Helper()
	r, err := Parse(line(text))
	require.NoError(t, err)
	return r
}

func Test_Validate_AcceptsWellFormedGrammar(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{
		mustParse(t, `<stmt> ::= <expr>`),
		mustParse(t, `<expr> ::= NUM`),
	}

	assert.Empty(Validate(rules))
}

func Test_Validate_InvalidLhsName(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<Bad> ::= A`))
	require.NoError(t, err)

	diags := Validate([]Rule{r})
	require.Len(t, diags, 1)
	assert.Equal("InvalidLhsName", string(diags[0].Kind))
}

func Test_Validate_InvalidLhsAltName(t *testing.T) {
	assert := assert.New(t)
	r, err := Parse(line(`<stmt:lower> ::= A`))
	require.NoError(t, err)

	diags := Validate([]Rule{r})
	require.Len(t, diags, 1)
	assert.Equal("InvalidLhsAltName", string(diags[0].Kind))
}

func Test_Validate_DuplicateResolvedLhs(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{
		mustParse(t, `<stmt> ::= A`),
		mustParse(t, `<stmt> ::= B`),
	}

	diags := Validate(rules)
	require.Len(t, diags, 1)
	assert.Equal("DuplicateLhs", string(diags[0].Kind))
}

func Test_Validate_DuplicateResolvedLhsAcrossAltNames(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{
		mustParse(t, `<expr:Binary> ::= A`),
		mustParse(t, `<other:Binary> ::= B`),
	}

	diags := Validate(rules)
	require.Len(t, diags, 1)
	assert.Equal("DuplicateLhs", string(diags[0].Kind))
}

func Test_Validate_UndefinedNonterminal(t *testing.T) {
	assert := assert.New(t)
	rules := []Rule{
		mustParse(t, `<stmt> ::= <missing>`),
	}

	diags := Validate(rules)
	require.Len(t, diags, 1)
	assert.Equal("UndefinedNonterminal", string(diags[0].Kind))
}
