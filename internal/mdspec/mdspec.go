// Package mdspec extracts a plcc specification embedded in a Markdown
// document as fenced code blocks tagged "plcc", so a specification can live
// alongside its own prose documentation in one file.
package mdspec

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	mkast "github.com/gomarkdown/markdown/ast"
	mkparser "github.com/gomarkdown/markdown/parser"
)

const fenceLanguage = "plcc"

type fenceScanner bool

func (fenceScanner) RenderNode(w io.Writer, node mkast.Node, entering bool) mkast.WalkStatus {
	if !entering {
		return mkast.GoToNext
	}
	block, ok := node.(*mkast.CodeBlock)
	if !ok || block == nil {
		return mkast.GoToNext
	}
	if strings.ToLower(strings.TrimSpace(string(block.Info))) == fenceLanguage {
		w.Write(block.Literal)
	}
	return mkast.GoToNext
}

func (fenceScanner) RenderHeader(io.Writer, mkast.Node) {}
func (fenceScanner) RenderFooter(io.Writer, mkast.Node) {}

// Extract concatenates the literal contents of every ```plcc fenced code
// block in a Markdown document, in document order, one directly after
// another with no separator added. Line numbers in the recovered text do
// not match the Markdown source's own numbers.
func Extract(mdText []byte) []byte {
	doc := markdown.Parse(mdText, mkparser.New())
	var scanner fenceScanner
	return markdown.Render(doc, scanner)
}

// ExtractString is Extract for callers already holding a string.
func ExtractString(mdText string) string {
	return string(Extract([]byte(mdText)))
}
