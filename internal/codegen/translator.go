// Package codegen implements the Target Translator: a small capability
// interface that turns the language-neutral AST model into source text for
// a specific target language, plus the two reference translators: a
// braces/typed target and an indentation/dynamic target.
package codegen

// Translator is the capability set an UnresolvedName or Class consults to
// render itself. No language-specific syntax appears anywhere outside an
// implementation of this interface.
type Translator interface {
	ToTypeName(name string) string
	ToListTypeName(elementType string) string
	ToVariableName(name string) string
	ToListVariableName(name string) string
	ToClassName(name string) string
	ToBaseClassName(name string) string
	ToFieldReference(name string) string
	ToAssignmentStatement(lhs, rhs string) string
	ToParameter(name, typeName string) string

	// Indent reflows lines by levels units of this translator's indent
	// width.
	Indent(lines []string, levels int) []string

	// RenderClass emits the full source text of one generated class.
	RenderClass(c RenderedClass) string
}

// RenderedClass is the fully-resolved, translator-agnostic description of
// one generated class: every name has already been run through the
// Translator's naming functions, so RenderClass only has to arrange text.
type RenderedClass struct {
	Name           string
	Extends        string // "" when no base class
	Fields         []RenderedField
	Params         []string // already-rendered "T x" / "x: T" parameter text
	Assigns        []string // already-rendered assignment statements
	IsAbstract     bool
	HasConstructor bool
}

// RenderedField is one already-resolved field: a name and a type, both run
// through the Translator before RenderClass ever sees them.
type RenderedField struct {
	Name string
	Type string
}
