package codegen

import (
	"fmt"
	"strings"
)

// Dynamic is the reference Indentation/Dynamic translator: name precedes
// type with a separator, field declarations are elided (fields are set
// directly in the constructor), lists render as `[T]`, and class bodies
// are indentation-delimited. It stands in for a Python-shaped target.
type Dynamic struct{}

func (Dynamic) ToTypeName(name string) string { return pascalCase(name) }

func (Dynamic) ToListTypeName(elementType string) string {
	return fmt.Sprintf("[%s]", elementType)
}

func (Dynamic) ToVariableName(name string) string { return camelCase(name) }

func (Dynamic) ToListVariableName(name string) string { return camelCase(name) + "_list" }

func (Dynamic) ToClassName(name string) string { return pascalCase(name) }

func (Dynamic) ToBaseClassName(name string) string { return pascalCase(name) }

func (Dynamic) ToFieldReference(name string) string { return "self." + name }

func (Dynamic) ToAssignmentStatement(lhs, rhs string) string {
	return fmt.Sprintf("%s = %s", lhs, rhs)
}

func (Dynamic) ToParameter(name, typeName string) string {
	return fmt.Sprintf("%s: %s", name, typeName)
}

func (Dynamic) Indent(lines []string, levels int) []string {
	return indentLines(lines, levels, "    ")
}

// RenderClass lays out an indentation-delimited class body: no field
// declarations (fields come into being only inside the constructor), a
// bracketed base class in the header when one exists, and a constructor
// whose body is just the assignment statements.
func (d Dynamic) RenderClass(c RenderedClass) string {
	header := fmt.Sprintf("class %s", c.Name)
	if c.Extends != "" {
		header += fmt.Sprintf("(%s)", c.Extends)
	}
	header += ":"

	var body []string
	if !c.HasConstructor {
		body = append(body, "pass")
	} else {
		ctorHeader := fmt.Sprintf("def __init__(self, %s):", strings.Join(c.Params, ", "))
		body = append(body, ctorHeader)
		assigns := c.Assigns
		if len(assigns) == 0 {
			assigns = []string{"pass"}
		}
		body = append(body, d.Indent(assigns, 1)...)
	}

	var out []string
	out = append(out, header)
	out = append(out, d.Indent(body, 1)...)
	return strings.Join(out, "\n")
}
