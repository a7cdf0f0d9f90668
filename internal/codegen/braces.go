package codegen

import (
	"fmt"
	"strings"
)

// Braces is the reference Braces/Typed translator: type precedes name,
// fields are declared with a keyword, lists render as `List<T>`, and
// classes carry an explicit constructor block. It stands in for a
// Java-shaped target.
type Braces struct{}

func (Braces) ToTypeName(name string) string { return pascalCase(name) }

func (Braces) ToListTypeName(elementType string) string {
	return fmt.Sprintf("List<%s>", elementType)
}

func (Braces) ToVariableName(name string) string { return camelCase(name) }

func (Braces) ToListVariableName(name string) string { return camelCase(name) + "List" }

func (Braces) ToClassName(name string) string { return pascalCase(name) }

func (Braces) ToBaseClassName(name string) string { return pascalCase(name) }

func (Braces) ToFieldReference(name string) string { return "this." + name }

func (Braces) ToAssignmentStatement(lhs, rhs string) string {
	return fmt.Sprintf("%s = %s;", lhs, rhs)
}

func (Braces) ToParameter(name, typeName string) string {
	return fmt.Sprintf("%s %s", typeName, name)
}

func (Braces) Indent(lines []string, levels int) []string {
	return indentLines(lines, levels, "    ")
}

// RenderClass lays out a full Java-shaped class: field declarations with a
// `public` keyword, an `extends` clause when a base exists, and a
// constructor assigning every parameter straight to its field.
func (b Braces) RenderClass(c RenderedClass) string {
	var body []string
	for _, f := range c.Fields {
		body = append(body, fmt.Sprintf("public %s %s;", f.Type, f.Name))
	}
	if len(c.Fields) > 0 {
		body = append(body, "")
	}

	if c.HasConstructor {
		ctorHeader := fmt.Sprintf("public %s(%s) {", c.Name, strings.Join(c.Params, ", "))
		body = append(body, ctorHeader)
		body = append(body, b.Indent(c.Assigns, 1)...)
		body = append(body, "}")
	}

	keyword := "class"
	if c.IsAbstract {
		keyword = "abstract class"
	}
	header := fmt.Sprintf("public %s %s", keyword, c.Name)
	if c.Extends != "" {
		header += " extends " + c.Extends
	}
	header += " {"

	var out []string
	out = append(out, header)
	out = append(out, b.Indent(body, 1)...)
	out = append(out, "}")
	return strings.Join(out, "\n")
}
