// Package extract scans documentation files for titled, fenced HTML samples
// and converts each sample into an element tree.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/text"
)

const (
	// TitlePrefix marks a heading line that names the next HTML sample.
	TitlePrefix = "### ~"
	// FenceOpen and FenceClose delimit an HTML code block.
	FenceOpen  = "```html"
	FenceClose = "```"
)

// ParseError reports a malformed HTML sample. It is scoped to a single
// documentation file; the caller skips the file and keeps going.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid HTML sample: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse scans lines for title markers and fenced HTML blocks and returns one
// Example per non-empty block, in document order. A block with no preceding
// title, or with an empty body, is silently discarded.
func Parse(lines []string, sourcePath string) ([]ast.Example, error) {
	var (
		examples []ast.Example
		title    string
		inBlock  bool
		block    []string
	)
	for _, line := range lines {
		switch {
		case inBlock && line == FenceClose:
			inBlock = false
			body := strings.TrimSpace(strings.Join(block, "\n"))
			block = nil
			if title == "" || body == "" {
				continue
			}
			elements, err := parseHTML(body, sourcePath)
			if err != nil {
				return nil, err
			}
			examples = append(examples, ast.Example{
				Title:      title,
				SourcePath: sourcePath,
				Elements:   elements,
			})
		case inBlock:
			block = append(block, line)
		case line == FenceOpen:
			inBlock = true
		case strings.HasPrefix(line, TitlePrefix):
			title = strings.TrimPrefix(line, TitlePrefix)
		}
	}
	return examples, nil
}

// parseHTML parses an HTML fragment into ast nodes. Whitespace-only text is
// dropped and remaining text has its whitespace collapsed; class attributes
// are cleaned of dynamic markers as the tree is built.
func parseHTML(src, sourcePath string) ([]ast.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	roots, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return nil, &ParseError{Path: sourcePath, Err: err}
	}
	var out []ast.Node
	for _, n := range roots {
		if conv, ok := convert(n); ok {
			out = append(out, conv)
		}
	}
	return out, nil
}

func convert(n *html.Node) (ast.Node, bool) {
	switch n.Type {
	case html.TextNode:
		collapsed := strings.Join(strings.Fields(n.Data), " ")
		if collapsed == "" {
			return nil, false
		}
		return ast.Text{Value: collapsed}, true
	case html.CommentNode:
		return ast.Comment{Value: strings.Join(strings.Fields(n.Data), " ")}, true
	case html.ElementNode:
		tag := ast.Tag{Name: n.Data, Attrs: map[string]string{}}
		for _, a := range n.Attr {
			if _, dup := tag.Attrs[a.Key]; dup {
				continue
			}
			val := a.Val
			if a.Key == "class" {
				val = text.CleanClass(val)
			}
			tag.Attrs[a.Key] = val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if conv, ok := convert(c); ok {
				tag.Children = append(tag.Children, conv)
			}
		}
		return tag, true
	default:
		return nil, false
	}
}
