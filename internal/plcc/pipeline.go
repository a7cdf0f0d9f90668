package plcc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ourPLCC/plcc/internal/astmodel"
	"github.com/ourPLCC/plcc/internal/codegen"
	"github.com/ourPLCC/plcc/internal/diag"
	"github.com/ourPLCC/plcc/internal/grammar"
	"github.com/ourPLCC/plcc/internal/lexspec"
	"github.com/ourPLCC/plcc/internal/mdspec"
	"github.com/ourPLCC/plcc/internal/section"
	"github.com/ourPLCC/plcc/internal/source"
	"github.com/ourPLCC/plcc/internal/syntax"
)

// Pipeline is the assembled result of running every stage over one
// specification source, stopping generation (but not diagnostic
// collection) at the first stage that reports a fatal error: generation
// never runs if an earlier stage produced errors.
type Pipeline struct {
	Collector *diag.Collector

	LexicalRules []lexspec.Rule
	SyntaxRules  []syntax.Rule
	Grammar      *grammar.Grammar
	Sets         grammar.Sets
	Module       astmodel.Module
}

// Load runs the Source Reader, Section Splitter, Lexical and Syntactic
// Parsers/Validators, the Grammar+LL(1) Analyzer, and the AST Model
// Builder, in that order, over the specification at path. If path ends in
// ".md" the Markdown-embedded format (internal/mdspec) is used to recover
// the plain-text specification before handing it to the Source Reader.
func Load(path string, checkLL1 bool) (*Pipeline, error) {
	p := &Pipeline{Collector: diag.NewCollector()}

	var reader *source.Reader
	if strings.EqualFold(filepath.Ext(path), ".md") {
		raw, err := readFile(path)
		if err != nil {
			return nil, err
		}
		extracted := mdspec.ExtractString(raw)
		reader = source.NewReaderFromString(path, extracted, nil)
	} else {
		r, err := source.NewReader(path, nil)
		if err != nil {
			return nil, err
		}
		reader = r
	}
	defer reader.Close()

	sections, err := section.Split(reader)
	if err != nil {
		return nil, err
	}
	if len(sections) < 2 {
		return nil, fmt.Errorf("specification %q must have at least a lexical and a syntactic section", path)
	}

	lexEntries := lexspec.Parse(sections[0])
	p.Collector.AddAll(lexspec.Validate(lexEntries))
	for _, e := range lexEntries {
		if e.Rule != nil {
			p.LexicalRules = append(p.LexicalRules, *e.Rule)
		}
	}

	for _, line := range sections[1] {
		trimmed := strings.TrimSpace(line.Text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rule, perr := syntax.Parse(line)
		if perr != nil {
			p.Collector.Add(diag.Diagnostic{
				Kind:    parseErrorKind(perr),
				Line:    line,
				Message: perr.Error(),
			})
			continue
		}
		if !rule.Repeating && rule.Separator != nil {
			p.Collector.Add(diag.Diagnostic{
				Kind:    diag.SeparatorOnNonRepeatingRule,
				Line:    line,
				Message: "separator given on a non-repeating ('::=') rule; tolerated but unused",
			})
		}
		p.SyntaxRules = append(p.SyntaxRules, rule)
	}
	p.Collector.AddAll(syntax.Validate(p.SyntaxRules))

	if p.Collector.HasErrors() {
		return p, nil
	}

	p.Grammar = grammar.New(p.SyntaxRules)
	p.Collector.AddAll(p.Grammar.Diagnostics())
	p.Sets = grammar.ComputeSets(p.Grammar)
	if checkLL1 {
		p.Collector.AddAll(grammar.CheckLL1(p.Grammar, p.Sets))
	}

	if p.Collector.HasErrors() {
		return p, nil
	}

	module, diags := astmodel.Build(p.SyntaxRules)
	p.Module = module
	p.Collector.AddAll(diags)

	return p, nil
}

// parseErrorKind recovers the diag.Kind a *syntax.ParseError carries so the
// Collector's Diagnostics all share the same Kind vocabulary regardless of
// which stage produced them.
func parseErrorKind(err error) diag.Kind {
	if pe, ok := err.(*syntax.ParseError); ok {
		return pe.Kind
	}
	return diag.ExtraContent
}

// reservedClassNames are the fixed runtime-support type names (see
// runtime.go) a generated class must not collide with: the generated and
// bundled files would overwrite each other in destDir.
var reservedClassNames = map[string]bool{
	"Token":         true,
	"PLCCException": true,
	"IMatch":        true,
}

// CheckReservedNames reports a ReservedClassName diagnostic for every class
// in module whose translated name collides with a bundled runtime-support
// file. Unlike the earlier stages, this has no single originating source
// Line to anchor to (the collision is between two file names, not a parse
// of one line), so it reports against the zero Line, the same convention a
// top-level WriteFailure uses.
func CheckReservedNames(module astmodel.Module, t codegen.Translator) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, c := range module.Classes {
		name := c.Name.Resolve(t)
		if !reservedClassNames[name] {
			continue
		}
		diags = append(diags, diag.Diagnostic{
			Kind:    diag.ReservedClassName,
			Message: fmt.Sprintf("generated class name %q collides with a bundled runtime-support file", name),
		})
	}
	return diags
}

// Generate renders every class in the Module through t and returns the
// rendered source keyed by the file it should be written as (ClassName plus
// ext). Generate does not itself decide whether to write anything; callers
// gate that on --nowrite and on the Collector's errors.
func Generate(module astmodel.Module, t codegen.Translator, ext string) map[string]string {
	out := make(map[string]string, len(module.Classes))
	for _, c := range module.Classes {
		name := c.Name.Resolve(t)
		out[name+"."+ext] = astmodel.Render(c, t)
	}
	return out
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}
