package astmodel

import "github.com/ourPLCC/plcc/internal/codegen"

// Module is the full set of classes derived from one syntactic
// specification.
type Module struct {
	Classes []Class
}

// Class is one generated AST node: a concrete class for a single-production
// non-terminal or for one production of a multi-production non-terminal, or
// an abstract base shared by the latter.
type Class struct {
	Name        Resolver // UnresolvedClassName
	Extends     Resolver // UnresolvedBaseClassName, nil when no base
	Fields      []FieldDeclaration
	Constructor *Constructor
	IsAbstract  bool
}

// FieldDeclaration is one field of a generated class: a name and a type,
// both resolved only at render time.
type FieldDeclaration struct {
	Name Resolver // UnresolvedVariableName or UnresolvedListVariableName
	Type Resolver // UnresolvedTypeName or UnresolvedListTypeName
}

// Constructor is the class's generated constructor: one parameter per
// field, assigning each straight into the same-named field.
type Constructor struct {
	ClassName  Resolver
	Parameters []Parameter
	Body       []AssignVariableToField
}

// Parameter is one constructor parameter.
type Parameter struct {
	Name Resolver
	Type Resolver
}

func (p Parameter) Resolve(t codegen.Translator) string {
	return t.ToParameter(p.Name.Resolve(t), p.Type.Resolve(t))
}

// FieldReference names a field on `this`/`self` inside the constructor body.
type FieldReference struct {
	Name Resolver
}

func (f FieldReference) Resolve(t codegen.Translator) string {
	return t.ToFieldReference(f.Name.Resolve(t))
}

// AssignVariableToField is one constructor-body statement: `this.x = x` /
// `self.x = x`.
type AssignVariableToField struct {
	Lhs FieldReference
	Rhs Resolver // the constructor parameter's UnresolvedVariableName
}

func (a AssignVariableToField) Resolve(t codegen.Translator) string {
	return t.ToAssignmentStatement(a.Lhs.Resolve(t), a.Rhs.Resolve(t))
}

// Render turns a Class into the translator's full source text by resolving
// every name, then delegating layout to the translator's RenderClass.
func Render(c Class, t codegen.Translator) string {
	rc := codegen.RenderedClass{
		Name:       c.Name.Resolve(t),
		IsAbstract: c.IsAbstract,
	}
	if c.Extends != nil {
		rc.Extends = c.Extends.Resolve(t)
	}
	for _, f := range c.Fields {
		rc.Fields = append(rc.Fields, codegen.RenderedField{
			Name: f.Name.Resolve(t),
			Type: f.Type.Resolve(t),
		})
	}
	if c.Constructor != nil {
		rc.HasConstructor = true
		for _, p := range c.Constructor.Parameters {
			rc.Params = append(rc.Params, p.Resolve(t))
		}
		for _, a := range c.Constructor.Body {
			rc.Assigns = append(rc.Assigns, a.Resolve(t))
		}
	}
	return t.RenderClass(rc)
}
