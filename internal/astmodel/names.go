// Package astmodel builds a language-neutral AST model from a validated
// syntactic specification: one Class per non-terminal (or one abstract base
// plus one concrete class per production for non-terminals with more than
// one), with fields resolved against a codegen.Translator only at render
// time.
package astmodel

import (
	"github.com/ourPLCC/plcc/internal/codegen"
	"github.com/ourPLCC/plcc/internal/syntax"
)

// Resolver is anything that becomes a piece of target-language text only
// once handed a Translator. Every Unresolved* name in this package
// implements it, mirroring the original `to(language)` methods.
type Resolver interface {
	Resolve(t codegen.Translator) string
}

// UnresolvedTypeName resolves to "Token" for a terminal symbol, or to the
// translator's rendering of the non-terminal's name otherwise.
type UnresolvedTypeName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedTypeName) Resolve(t codegen.Translator) string {
	if u.Symbol.IsTerminal() {
		return t.ToTypeName("Token")
	}
	return t.ToTypeName(u.Symbol.Name)
}

// UnresolvedListTypeName resolves a repeating field's element type, then
// wraps it as a list type.
type UnresolvedListTypeName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedListTypeName) Resolve(t codegen.Translator) string {
	if u.Symbol.IsTerminal() {
		return t.ToListTypeName(t.ToTypeName("Token"))
	}
	element := UnresolvedTypeName{Symbol: u.Symbol}.Resolve(t)
	return t.ToListTypeName(element)
}

// UnresolvedVariableName prefers the symbol's given (alt) name verbatim;
// only a symbol with no override consults the translator's naming function.
type UnresolvedVariableName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedVariableName) Resolve(t codegen.Translator) string {
	if u.Symbol.AltName != "" {
		return u.Symbol.AltName
	}
	return t.ToVariableName(u.Symbol.Name)
}

// UnresolvedListVariableName is UnresolvedVariableName's counterpart for
// repeating fields.
type UnresolvedListVariableName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedListVariableName) Resolve(t codegen.Translator) string {
	if u.Symbol.AltName != "" {
		return u.Symbol.AltName
	}
	return t.ToListVariableName(u.Symbol.Name)
}

// UnresolvedClassName prefers an explicit altName (a production's class
// name), falling back to the translator's class-naming function for the
// plain LHS name.
type UnresolvedClassName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedClassName) Resolve(t codegen.Translator) string {
	if u.Symbol.AltName != "" {
		return u.Symbol.AltName
	}
	return t.ToClassName(u.Symbol.Name)
}

// UnresolvedBaseClassName always consults the translator: an abstract
// base's name is derived from the shared LHS, never from a per-production
// altName.
type UnresolvedBaseClassName struct {
	Symbol syntax.Symbol
}

func (u UnresolvedBaseClassName) Resolve(t codegen.Translator) string {
	return t.ToBaseClassName(u.Symbol.Name)
}
