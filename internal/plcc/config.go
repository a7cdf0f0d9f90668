package plcc

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the persisted form of a project's `.plcc.toml`: defaults for
// every CLI flag so a project doesn't have to repeat them on every
// invocation. An explicit CLI flag always overrides the matching Config
// field; Config only fills in what the command line left unset.
type Config struct {
	DestDir         string `toml:"destdir"`
	PythonDestDir   string `toml:"python_destdir"`
	Debug           int    `toml:"debug"`
	NoWrite         bool   `toml:"nowrite"`
	LL1             *bool  `toml:"LL1"`
	Parser          *bool  `toml:"parser"`
	Token           *bool  `toml:"Token"`
	Semantics       *bool  `toml:"semantics"`
	PythonSemantics *bool  `toml:"python_semantics"`
}

// DefaultConfig holds the defaults for a bare invocation with no flags and
// no config file.
func DefaultConfig() Config {
	return Config{
		DestDir:       "Java",
		PythonDestDir: "Python",
	}
}

// LoadConfig reads a `.plcc.toml` at path, if it exists, layered onto
// DefaultConfig. A missing file is not an error; every other read or parse
// failure is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BoolOrDefault dereferences p, or returns def if p is nil. Used to read an
// optional tri-state Config flag (unset/true/false) against its documented
// default.
func BoolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
