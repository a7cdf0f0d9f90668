package plcc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CopyRuntimeFiles_FlattensIntoDestDir(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, CopyRuntimeFiles("java", "token", dest))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.False(t, e.IsDir())
	}
}

func Test_CopyRuntimeFiles_GroupsAreIndependent(t *testing.T) {
	tokenDest := t.TempDir()
	parserDest := t.TempDir()
	require.NoError(t, CopyRuntimeFiles("python", "token", tokenDest))
	require.NoError(t, CopyRuntimeFiles("python", "parser", parserDest))

	tokenEntries, err := os.ReadDir(tokenDest)
	require.NoError(t, err)
	parserEntries, err := os.ReadDir(parserDest)
	require.NoError(t, err)

	assert.NotEmpty(t, tokenEntries)
	assert.NotEmpty(t, parserEntries)
}

func Test_WriteGenerated_WritesEachFile(t *testing.T) {
	dest := t.TempDir()
	files := map[string]string{
		"Expr.java": "class Expr {}",
	}
	require.NoError(t, WriteGenerated(dest, files))

	got, err := os.ReadFile(filepath.Join(dest, "Expr.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Expr {}\n", string(got))
}

func Test_WriteFailureError_UnwrapsCause(t *testing.T) {
	cause := os.ErrPermission
	err := &WriteFailureError{Path: "/nope/Expr.java", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/nope/Expr.java")
}
