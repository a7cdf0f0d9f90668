package plcc

import (
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"

	"github.com/ourPLCC/plcc/internal/grammar"
)

// GrammarDump is the plain, rezi-serializable summary of an analyzed
// Grammar written to a ".plccdebug" artifact at --debug=2, the way
// server/dao/sqlite persists *game.State with rezi.EncBinary/DecBinary.
// Every field is a primitive, map, or slice rezi can encode directly; no
// custom MarshalBinary is needed.
type GrammarDump struct {
	RunID        string
	StartSymbol  string
	Terminals    []string
	NonTerminals []string
	First        map[string][]string
	Follow       map[string][]string
	Productions  map[string][]string
}

// NewGrammarDump flattens a Grammar and its computed Sets into a GrammarDump
// stamped with runID.
func NewGrammarDump(runID uuid.UUID, g *grammar.Grammar, s grammar.Sets) GrammarDump {
	d := GrammarDump{
		RunID:        runID.String(),
		StartSymbol:  g.StartSymbol,
		Terminals:    g.Terminals.Ordered(),
		NonTerminals: g.NonTerminals(),
		First:        map[string][]string{},
		Follow:       map[string][]string{},
		Productions:  map[string][]string{},
	}
	for nt, set := range s.First {
		d.First[nt] = set.Ordered()
	}
	for nt, set := range s.Follow {
		d.Follow[nt] = set.Ordered()
	}
	for nt, prods := range g.Rules {
		for _, p := range prods {
			d.Productions[nt] = append(d.Productions[nt], fmt.Sprintf("%v", p.Symbol))
		}
	}
	return d
}

// WriteDebugDump rezi-encodes d and writes it to path.
func WriteDebugDump(path string, d GrammarDump) error {
	enc := rezi.EncBinary(d)
	if err := os.WriteFile(path, enc, 0o644); err != nil {
		return fmt.Errorf("writing debug dump %q: %w", path, err)
	}
	return nil
}

// ReadDebugDump decodes a GrammarDump previously written by WriteDebugDump
// and fails unless every byte of the file was consumed.
func ReadDebugDump(path string) (GrammarDump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GrammarDump{}, fmt.Errorf("reading debug dump %q: %w", path, err)
	}
	var d GrammarDump
	n, err := rezi.DecBinary(data, &d)
	if err != nil {
		return GrammarDump{}, fmt.Errorf("decoding debug dump %q: %w", path, err)
	}
	if n != len(data) {
		return GrammarDump{}, fmt.Errorf("debug dump %q: decoded %d/%d bytes", path, n, len(data))
	}
	return d, nil
}
