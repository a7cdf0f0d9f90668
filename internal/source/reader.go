// Package source implements the specification Source Reader: a lazy,
// pull-based stream of Lines that resolves %include directives and marks
// lines that fall inside verbatim-code brackets.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultBrackets are the verbatim-code bracket pairs recognized when none
// are supplied to NewReader.
var DefaultBrackets = map[string]string{
	`%%%`: `%%%`,
	`%%{`: `%%}`,
}

var includeDirective = regexp.MustCompile(`^%include\s+(\S+)\s*$`)

type frame struct {
	path    string
	scanner *bufio.Scanner
	closer  io.Closer
	lineNum int
}

// Reader is a single-threaded, lazy Line source. Call Next repeatedly until
// it reports ok=false; suspension (file I/O) only happens inside Next.
type Reader struct {
	brackets   map[string]string
	stack      []*frame
	activePath map[string]bool // paths currently open somewhere on stack
	blockClose string          // "" when not inside a verbatim block
	lookahead  *Line
	err        error
	done       bool
}

// NewReader opens rootPath and returns a Reader positioned at its first
// line. brackets may be nil to use DefaultBrackets.
func NewReader(rootPath string, brackets map[string]string) (*Reader, error) {
	if brackets == nil {
		brackets = DefaultBrackets
	}
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", rootPath, err)
	}

	r := &Reader{
		brackets:   brackets,
		activePath: map[string]bool{},
	}
	if err := r.push(abs, nil); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) push(absPath string, directive *Line) error {
	if r.activePath[absPath] {
		return &IncludeCycleError{Directive: *directive, Path: absPath}
	}

	f, err := os.Open(absPath)
	if err != nil {
		return &FileNotFoundError{Directive: directive, Path: absPath, Cause: err}
	}

	r.pushFrame(absPath, f, f)
	return nil
}

// pushFrame installs a new active frame reading from rdr, identified by
// path (used for cycle detection and Line.Path). closer is closed when the
// frame is exhausted or the Reader is closed early; it may be nil for
// sources that own no resource (e.g. an in-memory string).
func (r *Reader) pushFrame(path string, rdr io.Reader, closer io.Closer) {
	r.activePath[path] = true
	r.stack = append(r.stack, &frame{
		path:    path,
		scanner: bufio.NewScanner(rdr),
		closer:  closer,
	})
}

func (r *Reader) pop() {
	top := r.stack[len(r.stack)-1]
	if top.closer != nil {
		top.closer.Close()
	}
	delete(r.activePath, top.path)
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Reader) top() *frame {
	return r.stack[len(r.stack)-1]
}

// HasNext reports whether another Line is available without consuming it.
func (r *Reader) HasNext() bool {
	if r.lookahead != nil {
		return true
	}
	if r.done || r.err != nil {
		return false
	}
	l, ok, err := r.advance()
	if err != nil {
		r.err = err
		return false
	}
	if !ok {
		r.done = true
		return false
	}
	r.lookahead = &l
	return true
}

// Next returns the next Line and advances the stream. Callers must check
// HasNext (or the returned ok) before trusting the Line.
func (r *Reader) Next() (Line, bool, error) {
	if r.lookahead != nil {
		l := *r.lookahead
		r.lookahead = nil
		return l, true, nil
	}
	if r.done {
		return Line{}, false, nil
	}
	if r.err != nil {
		return Line{}, false, r.err
	}
	l, ok, err := r.advance()
	if err != nil {
		r.err = err
		return Line{}, false, err
	}
	if !ok {
		r.done = true
		return Line{}, false, nil
	}
	return l, true, nil
}

// advance pulls raw physical lines, following includes and tracking block
// state, until it has a Line worth emitting or the whole include stack is
// exhausted.
func (r *Reader) advance() (Line, bool, error) {
	for len(r.stack) > 0 {
		top := r.top()
		if !top.scanner.Scan() {
			if err := top.scanner.Err(); err != nil {
				return Line{}, false, fmt.Errorf("reading %q: %w", top.path, err)
			}
			r.pop()
			continue
		}

		top.lineNum++
		raw := Line{Path: top.path, Number: top.lineNum, Text: top.scanner.Text()}
		trimmed := strings.TrimSpace(raw.Text)

		if r.blockClose != "" {
			if trimmed == r.blockClose {
				raw.InBlock = false
				r.blockClose = ""
				return raw, true, nil
			}
			raw.InBlock = true
			return raw, true, nil
		}

		if close, isOpen := r.brackets[trimmed]; isOpen {
			r.blockClose = close
			raw.InBlock = false
			return raw, true, nil
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := includeDirective.FindStringSubmatch(raw.Text); m != nil {
			target := m[1]
			absTarget := target
			if !filepath.IsAbs(target) {
				absTarget = filepath.Join(filepath.Dir(top.path), target)
			}
			absTarget, err := filepath.Abs(absTarget)
			if err != nil {
				return Line{}, false, fmt.Errorf("resolving include %q: %w", target, err)
			}
			if err := r.push(absTarget, &raw); err != nil {
				return Line{}, false, err
			}
			continue
		}

		return raw, true, nil
	}
	return Line{}, false, nil
}

// Close releases any files still open on the include stack. Safe to call
// after the stream is exhausted or abandoned early.
func (r *Reader) Close() error {
	var firstErr error
	for len(r.stack) > 0 {
		top := r.top()
		if top.closer != nil {
			if err := top.closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		r.stack = r.stack[:len(r.stack)-1]
	}
	return firstErr
}

// NewReaderFromString returns a Reader over in-memory text as though it
// were a file at virtualPath. %include directives inside it are still
// resolved against the real filesystem, relative to virtualPath's
// directory. Used for the Markdown-embedded spec format (see
// internal/mdspec) and by tests.
func NewReaderFromString(virtualPath, content string, brackets map[string]string) *Reader {
	if brackets == nil {
		brackets = DefaultBrackets
	}
	r := &Reader{
		brackets:   brackets,
		activePath: map[string]bool{},
	}
	abs, err := filepath.Abs(virtualPath)
	if err != nil {
		abs = virtualPath
	}
	r.pushFrame(abs, strings.NewReader(content), nil)
	return r
}
