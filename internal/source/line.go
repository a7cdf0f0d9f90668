package source

import "fmt"

// Line is one physical line of a specification, after include resolution.
// Path and Number together identify exactly where the line came from;
// Number is the 1-based physical line number within Path, counting every
// line of that file including ones later dropped as blank or comment.
type Line struct {
	Path    string
	Number  int
	Text    string
	InBlock bool
}

// String renders the line the way diagnostics report it: "<path>:<number>: <text>".
func (l Line) String() string {
	return fmt.Sprintf("%s:%d: %s", l.Path, l.Number, l.Text)
}
