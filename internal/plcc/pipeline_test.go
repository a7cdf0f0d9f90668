package plcc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourPLCC/plcc/internal/codegen"
)

func writeSpec(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.plcc")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func Test_Load_FullPipelineProducesModule(t *testing.T) {
	path := writeSpec(t, `
NUM '[0-9]+'
PLUS '\+'
%
<expr> ::= <NUM:left> PLUS <NUM:right>
`)

	p, err := Load(path, true)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.False(t, p.Collector.HasErrors())
	require.NotNil(t, p.Grammar)
	assert.Equal(t, "expr", p.Grammar.StartSymbol)
	require.Len(t, p.Module.Classes, 1)
	assert.Equal(t, "Expr", p.Module.Classes[0].Name.Resolve(codegen.Braces{}))
}

func Test_Load_TooFewSectionsIsAnError(t *testing.T) {
	path := writeSpec(t, `NUM '[0-9]+'`)

	_, err := Load(path, true)
	assert.Error(t, err)
}

func Test_Generate_OneFilePerClass(t *testing.T) {
	path := writeSpec(t, `
NUM '[0-9]+'
%
<lit> ::= <NUM>
`)
	p, err := Load(path, true)
	require.NoError(t, err)
	require.False(t, p.Collector.HasErrors())

	files := Generate(p.Module, codegen.Braces{}, "java")
	assert.Contains(t, files, "Lit.java")
}

func Test_CheckReservedNames_FlagsCollisionWithRuntimeFile(t *testing.T) {
	path := writeSpec(t, `
X 'x'
%
<token> ::= <X>
`)
	p, err := Load(path, true)
	require.NoError(t, err)
	require.False(t, p.Collector.HasErrors())

	diags := CheckReservedNames(p.Module, codegen.Braces{})
	require.Len(t, diags, 1)
	assert.Equal(t, "ReservedClassName", string(diags[0].Kind))
}
