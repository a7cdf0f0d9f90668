// Package lexspec implements the Lexical Parser: it turns the lines of the
// lexical section into a list of token rules, skip rules preserved in order
// alongside emitted ones, and raw unrecognized lines kept for the Validator
// to flag.
package lexspec

import (
	"regexp"
	"strings"

	"github.com/ourPLCC/plcc/internal/source"
)

// Rule is one recognized lexical rule: a skip rule (whitespace, comments,
// anything the generated lexer discards) or a token rule the generated
// lexer emits.
type Rule struct {
	Line    source.Line
	IsSkip  bool
	Name    string
	Pattern string
}

// Entry is either a recognized Rule or, when a line matches none of the
// three accepted shapes, the raw Line itself so the Validator can report
// InvalidRule against it.
type Entry struct {
	Rule    *Rule
	RawLine *source.Line
}

var (
	skipForm  = regexp.MustCompile(`^skip\s+(\S+)\s+('(?:[^']*)'|"(?:[^"]*)")\s*(?:#.*)?$`)
	tokenForm = regexp.MustCompile(`^(?:token\s+)?(\S+)\s+('(?:[^']*)'|"(?:[^"]*)")\s*(?:#.*)?$`)
)

// Parse recognizes every non-blank, non-comment line of a lexical section as
// one of three forms, in order: skip NAME 'PATTERN', token NAME 'PATTERN',
// or the implicit NAME 'PATTERN' form. Lines already dropped by the Source
// Reader (blank, comment, outside a verbatim block) never reach here; any
// line that still matches none of the three shapes is returned as a raw
// Entry for the Validator to reject.
func Parse(lines []source.Line) []Entry {
	var entries []Entry
	for _, line := range lines {
		trimmed := strings.TrimSpace(line.Text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := skipForm.FindStringSubmatch(trimmed); m != nil {
			entries = append(entries, Entry{Rule: &Rule{
				Line: line, IsSkip: true, Name: m[1], Pattern: stripQuotes(m[2]),
			}})
			continue
		}

		if m := tokenForm.FindStringSubmatch(trimmed); m != nil {
			entries = append(entries, Entry{Rule: &Rule{
				Line: line, IsSkip: false, Name: m[1], Pattern: stripQuotes(m[2]),
			}})
			continue
		}

		l := line
		entries = append(entries, Entry{RawLine: &l})
	}
	return entries
}

func stripQuotes(pattern string) string {
	pattern = strings.Trim(pattern, `'`)
	pattern = strings.Trim(pattern, `"`)
	return pattern
}
