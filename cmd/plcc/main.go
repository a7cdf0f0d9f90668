/*
Plcc reads a declarative language specification and generates a lexer,
recursive-descent parser, and typed AST-node classes for that language in
one or more target languages.

Usage:

	plcc [flags] SPEC_FILE
	plcc inspect [flags] SPEC_FILE

The flags are:

	--destdir PATH
		Output directory for the braces/typed (Java-shaped) target.
		Defaults to "Java".

	--python_destdir PATH
		Output directory for the indentation/dynamic (Python-shaped)
		target. Defaults to "Python".

	--debug N
		Verbosity level 0..2. At 2, a ".plccdebug" artifact carrying the
		analyzed grammar graph is written alongside SPEC_FILE.

	--nowrite
		Run every analysis stage and report diagnostics, but write no
		files.

	--version
		Print the version string and exit 0.

	--LL1 bool
		Skip the LL(1) conflict check when false.

	--parser bool
		Skip parser runtime-support copying when false.

	--Token bool
		Skip lexer runtime-support copying when false.

	--semantics bool, --python_semantics bool
		Accepted for the respective target, but no semantic pass is run,
		so neither flag changes the generated output.

	--config PATH
		Project config file to layer defaults from. Defaults to
		".plcc.toml" in the current directory if present.

"plcc inspect SPEC_FILE" loads and analyzes SPEC_FILE the same way a normal
run does, then opens an interactive shell for querying FIRST/FOLLOW/predict
sets instead of generating output.

Exit codes: 0 on success (advisory diagnostics alone do not fail a run), 1
if any fatal diagnostic was reported or generation failed, 2 if the tool
itself could not run.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ourPLCC/plcc/internal/codegen"
	"github.com/ourPLCC/plcc/internal/diag"
	"github.com/ourPLCC/plcc/internal/plcc"
	"github.com/ourPLCC/plcc/internal/version"
)

const (
	// ExitSuccess indicates every stage ran without a fatal diagnostic.
	ExitSuccess = 0

	// ExitDiagnostics indicates at least one fatal diagnostic was reported.
	ExitDiagnostics = 1

	// ExitInitError indicates the tool itself could not run (bad flags,
	// unreadable spec file, I/O failure unrelated to the specification's
	// content).
	ExitInitError = 2
)

var returnCode = ExitSuccess

var (
	flagDestDir         = pflag.String("destdir", "", "Output directory for the braces/typed target")
	flagPythonDestDir   = pflag.String("python_destdir", "", "Output directory for the indentation/dynamic target")
	flagDebug           = pflag.Int("debug", -1, "Verbosity level 0..2")
	flagNoWrite         = pflag.Bool("nowrite", false, "Run all analysis; emit diagnostics; write no files")
	flagVersion         = pflag.Bool("version", false, "Print version string and exit 0")
	flagLL1             = pflag.Bool("LL1", true, "Check the grammar for LL(1) conflicts")
	flagParser          = pflag.Bool("parser", true, "Copy parser runtime-support files")
	flagToken           = pflag.Bool("Token", true, "Copy lexer runtime-support files")
	flagSemantics       = pflag.Bool("semantics", true, "Semantic pass for the braces/typed target (accepted; no semantic pass is run)")
	flagPythonSemantics = pflag.Bool("python_semantics", true, "Semantic pass for the indentation/dynamic target (accepted; no semantic pass is run)")
	flagConfig          = pflag.String("config", ".plcc.toml", "Project config file supplying flag defaults")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", r))
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return
	}

	args := pflag.Args()
	inspect := false
	if len(args) > 0 && args[0] == "inspect" {
		inspect = true
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: plcc [flags] SPEC_FILE")
		returnCode = ExitInitError
		return
	}
	specPath := args[0]

	cfg, err := plcc.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err)
		returnCode = ExitInitError
		return
	}
	applyFlagOverrides(&cfg)

	pipeline, err := plcc.Load(specPath, plcc.BoolOrDefault(cfg.LL1, true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
		return
	}

	report, err := diag.NewReport(pipeline.Collector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
		return
	}
	if len(report.Diagnostics) > 0 {
		fmt.Fprint(os.Stderr, report.String())
	}
	if report.HasErrors() {
		returnCode = ExitDiagnostics
		return
	}

	if cfg.Debug >= 2 && pipeline.Grammar != nil {
		dump := plcc.NewGrammarDump(report.RunID, pipeline.Grammar, pipeline.Sets)
		dumpPath := specPath + ".plccdebug"
		if err := plcc.WriteDebugDump(dumpPath, dump); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitInitError
			return
		}
	}

	if inspect {
		runInspectShell(pipeline)
		return
	}

	if cfg.NoWrite {
		return
	}

	if err := generateAndWrite(pipeline, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitDiagnostics
		return
	}
}

// applyFlagOverrides layers any explicitly-set pflag value on top of cfg:
// an explicit flag always overrides whatever the config file supplied.
func applyFlagOverrides(cfg *plcc.Config) {
	pflag.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "destdir":
			cfg.DestDir = *flagDestDir
		case "python_destdir":
			cfg.PythonDestDir = *flagPythonDestDir
		case "debug":
			cfg.Debug = *flagDebug
		case "nowrite":
			cfg.NoWrite = *flagNoWrite
		case "LL1":
			cfg.LL1 = flagLL1
		case "parser":
			cfg.Parser = flagParser
		case "Token":
			cfg.Token = flagToken
		case "semantics":
			cfg.Semantics = flagSemantics
		case "python_semantics":
			cfg.PythonSemantics = flagPythonSemantics
		}
	})
}

func runInspectShell(pipeline *plcc.Pipeline) {
	if pipeline.Grammar == nil {
		fmt.Fprintln(os.Stderr, "ERROR: cannot inspect a specification with fatal diagnostics")
		returnCode = ExitDiagnostics
		return
	}
	shell, err := plcc.NewShell(pipeline.Grammar, pipeline.Sets, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
		return
	}
	defer shell.Close()
	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
	}
}

func generateAndWrite(pipeline *plcc.Pipeline, cfg plcc.Config) error {
	type target struct {
		translator codegen.Translator
		ext        string
		lang       string
		destDir    string
		semantics  bool
	}
	targets := []target{
		{codegen.Braces{}, "java", "java", cfg.DestDir, plcc.BoolOrDefault(cfg.Semantics, true)},
		{codegen.Dynamic{}, "py", "python", cfg.PythonDestDir, plcc.BoolOrDefault(cfg.PythonSemantics, true)},
	}

	for _, t := range targets {
		reserved := plcc.CheckReservedNames(pipeline.Module, t.translator)
		if len(reserved) > 0 {
			for _, d := range reserved {
				fmt.Fprintln(os.Stderr, d.String())
			}
			return fmt.Errorf("%d generated class name(s) collide with runtime-support files", len(reserved))
		}

		files := plcc.Generate(pipeline.Module, t.translator, t.ext)
		if err := plcc.WriteGenerated(t.destDir, files); err != nil {
			return err
		}

		if plcc.BoolOrDefault(cfg.Token, true) {
			if err := plcc.CopyRuntimeFiles(t.lang, "token", t.destDir); err != nil {
				return err
			}
		}
		if plcc.BoolOrDefault(cfg.Parser, true) {
			if err := plcc.CopyRuntimeFiles(t.lang, "parser", t.destDir); err != nil {
				return err
			}
		}
		_ = t.semantics // semantic-section passthrough is an external collaborator; not reimplemented here
	}

	return nil
}
