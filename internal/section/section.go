// Package section splits a line stream into ordered sections at top-level
// "%" divider lines. The first section is lexical, the second syntactic,
// and any further sections are semantic.
package section

import (
	"strings"

	"github.com/ourPLCC/plcc/internal/source"
)

// Section is an ordered slice of Lines belonging to one part of the
// specification (lexical, syntactic, or one of the semantic sections).
type Section []source.Line

// LineSource is the minimal pull interface section splitting needs; it is
// satisfied by *source.Reader.
type LineSource interface {
	HasNext() bool
	Next() (source.Line, bool, error)
}

// Split consumes every remaining line from src and partitions it into
// Sections divided by lines whose trimmed text is exactly "%" and which are
// not inside a verbatim-code block. Divider lines are not included in any
// Section. A trailing divider produces an empty trailing Section.
func Split(src LineSource) ([]Section, error) {
	sections := []Section{{}}

	for src.HasNext() {
		line, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if !line.InBlock && strings.TrimSpace(line.Text) == "%" {
			sections = append(sections, Section{})
			continue
		}

		last := len(sections) - 1
		sections[last] = append(sections[last], line)
	}

	return sections, nil
}
