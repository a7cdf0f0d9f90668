// Package diag implements the Diagnostics Collector: ordered collection of
// (file, line, text, message) diagnostics from every earlier pipeline stage,
// and the final report delivered to the command-line layer.
package diag

import (
	"fmt"

	"github.com/ourPLCC/plcc/internal/source"
)

// Kind identifies which of the recognized error kinds a Diagnostic is.
type Kind string

const (
	IncludeCycle Kind = "IncludeCycle"
	FileNotFound Kind = "FileNotFound"

	InvalidNameFormat Kind = "InvalidNameFormat"
	DuplicateName     Kind = "DuplicateName"
	DuplicatePattern  Kind = "DuplicatePattern"
	InvalidPattern    Kind = "InvalidPattern"
	InvalidRule       Kind = "InvalidRule"

	MissingDefinitionOperator Kind = "MissingDefinitionOperator"
	InvalidNonterminal        Kind = "InvalidNonterminal"
	InvalidTerminal           Kind = "InvalidTerminal"
	SeparatorMustBeTerminal   Kind = "SeparatorMustBeTerminal"
	ExtraContent              Kind = "ExtraContent"

	InvalidLhsName       Kind = "InvalidLhsName"
	InvalidLhsAltName    Kind = "InvalidLhsAltName"
	DuplicateLhs         Kind = "DuplicateLhs"
	UndefinedNonterminal Kind = "UndefinedNonterminal"

	Ll1Conflict            Kind = "Ll1Conflict"
	UselessOrLeftRecursive Kind = "UselessOrLeftRecursive"
	DuplicateField         Kind = "DuplicateField"

	// UnreachableCase is reserved for a production whose predict set is
	// already fully covered by earlier alternatives in the same rule; no
	// analysis pass currently detects that case, so nothing emits this Kind
	// yet. UselessOrLeftRecursive covers the productions that are unreachable
	// by structure (never reduced or only reachable through left recursion)
	// rather than by predict-set shadowing.
	UnreachableCase Kind = "UnreachableCase"

	ReservedClassName Kind = "ReservedClassName"
	WriteFailure      Kind = "WriteFailure"

	// SeparatorOnNonRepeatingRule is tolerated (does not gate codegen) but
	// still reported so the behavior is visible rather than silent.
	SeparatorOnNonRepeatingRule Kind = "SeparatorOnNonRepeatingRule"
)

// nonFatalKinds gates generation: any Diagnostic whose Kind IS in this set
// is advisory only and does not stop the pipeline. Every Kind but
// SeparatorOnNonRepeatingRule is fatal.
var nonFatalKinds = map[Kind]bool{
	SeparatorOnNonRepeatingRule: true,
}

// Diagnostic is a single reported problem, always anchored to the Line it
// originated from (the zero Line when none applies, e.g. a top-level
// WriteFailure).
type Diagnostic struct {
	Kind    Kind
	Line    source.Line
	Message string
}

// Fatal reports whether this Diagnostic should gate later pipeline stages.
func (d Diagnostic) Fatal() bool {
	return !nonFatalKinds[d.Kind]
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped anywhere plain Go error handling is more convenient than the
// Collector.
func (d Diagnostic) Error() string {
	return d.String()
}

// String renders the diagnostic as a line-number-and-path prefix, the
// message, then the offending line text on its own line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d [%s]: %s\n%s", d.Line.Number, d.Line.Path, d.Message, d.Line.Text)
}
