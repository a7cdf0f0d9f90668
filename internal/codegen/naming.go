package codegen

import "strings"

// pascalCase turns a snake/terminal-case or already-lowercase identifier
// into PascalCase: "LEFT_PAREN" -> "LeftParen", "expr" -> "Expr".
func pascalCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// camelCase is pascalCase with its first letter lowered: "LEFT_PAREN" ->
// "leftParen", "expr" -> "expr".
func camelCase(name string) string {
	p := pascalCase(name)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}
