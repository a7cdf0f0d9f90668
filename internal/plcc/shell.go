package plcc

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ourPLCC/plcc/internal/grammar"
)

// Shell is the `plcc inspect` interactive session: a readline-backed
// REPL for querying FIRST/FOLLOW/predict sets of an already-loaded grammar
// without regenerating code.
type Shell struct {
	rl      *readline.Instance
	grammar *grammar.Grammar
	sets    grammar.Sets
	out     io.Writer
}

// NewShell opens a readline session over g/s. out receives command output;
// pass os.Stdout in production, a buffer in tests.
func NewShell(g *grammar.Grammar, s grammar.Sets, out io.Writer) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "plcc> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &Shell{rl: rl, grammar: g, sets: s, out: out}, nil
}

// Close releases the underlying readline resources.
func (s *Shell) Close() error {
	return s.rl.Close()
}

// Run reads commands until EOF (Ctrl-D) or an explicit "quit"/"exit", one
// per line, dispatching to Eval and printing its output.
func (s *Shell) Run() error {
	for {
		line, err := s.rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		fmt.Fprintln(s.out, s.Eval(line))
	}
}

// Eval interprets one command and returns its textual result. Recognized
// commands:
//
//	first <nonterminal>
//	follow <nonterminal>
//	predict <nonterminal>
//	rules <nonterminal>
//	start
//	help
func (s *Shell) Eval(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "help":
		return "commands: first <nt>, follow <nt>, predict <nt>, rules <nt>, start, help, quit"
	case "start":
		return s.grammar.StartSymbol
	case "first", "follow":
		if len(fields) != 2 {
			return fmt.Sprintf("usage: %s <nonterminal>", fields[0])
		}
		table := s.sets.First
		if fields[0] == "follow" {
			table = s.sets.Follow
		}
		set, ok := table[fields[1]]
		if !ok {
			return fmt.Sprintf("unknown non-terminal %q", fields[1])
		}
		return set.String()
	case "predict":
		if len(fields) != 2 {
			return "usage: predict <nonterminal>"
		}
		prods, ok := s.grammar.Rules[fields[1]]
		if !ok {
			return fmt.Sprintf("unknown non-terminal %q", fields[1])
		}
		var b strings.Builder
		for i, p := range prods {
			predict := grammar.PredictSet(s.sets, fields[1], p)
			fmt.Fprintf(&b, "production %d: %s\n", i, predict.String())
		}
		return strings.TrimRight(b.String(), "\n")
	case "rules":
		if len(fields) != 2 {
			return "usage: rules <nonterminal>"
		}
		prods, ok := s.grammar.Rules[fields[1]]
		if !ok {
			return fmt.Sprintf("unknown non-terminal %q", fields[1])
		}
		var b strings.Builder
		for i, p := range prods {
			fmt.Fprintf(&b, "production %d: %s -> %s\n", i, fields[1], strings.Join(p.Symbol, " "))
		}
		return strings.TrimRight(b.String(), "\n")
	default:
		return fmt.Sprintf("unrecognized command %q (try \"help\")", fields[0])
	}
}
