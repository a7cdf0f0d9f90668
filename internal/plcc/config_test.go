package plcc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func Test_LoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".plcc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
destdir = "out/java"
python_destdir = "out/py"
LL1 = false
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "out/java", cfg.DestDir)
	assert.Equal(t, "out/py", cfg.PythonDestDir)
	require.NotNil(t, cfg.LL1)
	assert.False(t, *cfg.LL1)
}

func Test_BoolOrDefault(t *testing.T) {
	assert.True(t, BoolOrDefault(nil, true))
	assert.False(t, BoolOrDefault(nil, false))
	f := false
	assert.False(t, BoolOrDefault(&f, true))
}
