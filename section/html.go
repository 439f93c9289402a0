package section

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/text"
)

// FromHTML extracts sections from an HTML document or fragment.
// h1 through h6 elements open sections; paragraphs, lists, and
// blockquotes accumulate as blank-line separated content under the
// most recent heading. Script, style, and similar non-content elements
// are skipped. Text before the first heading becomes an untitled
// preamble section.
func FromHTML(r io.Reader) ([]model.Section, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	b := &htmlBuilder{}
	b.walk(root)
	b.flushBlock()
	b.flushSection()

	return b.sections, nil
}

// htmlBuilder accumulates sections while walking the DOM. pending
// holds loose inline text until the next block boundary.
type htmlBuilder struct {
	sections []model.Section
	heading  string
	opened   bool
	blocks   []string
	pending  strings.Builder
}

func (b *htmlBuilder) walk(n *html.Node) {
	if n.Type == html.TextNode {
		b.pending.WriteString(flattenWhitespace(n.Data))
		return
	}
	if n.Type != html.ElementNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.walk(c)
		}
		return
	}
	if skipElement(n.Data) {
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.flushBlock()
		b.flushSection()
		b.heading = textContent(n)
		b.opened = true

	case "p", "blockquote", "pre":
		b.flushBlock()
		if t := textContent(n); t != "" {
			b.blocks = append(b.blocks, t)
		}

	case "ul", "ol":
		b.flushBlock()
		var items []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				if t := textContent(c); t != "" {
					items = append(items, t)
				}
			}
		}
		if len(items) > 0 {
			b.blocks = append(b.blocks, strings.Join(items, "\n"))
		}

	case "br":
		b.pending.WriteString("\n")

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.walk(c)
		}
	}
}

// flushBlock turns accumulated loose text into a content block.
func (b *htmlBuilder) flushBlock() {
	t := collapseLines(b.pending.String())
	b.pending.Reset()
	if t != "" {
		b.blocks = append(b.blocks, t)
	}
}

// flushSection emits the section under construction. Preamble content
// with no opening heading is kept as an untitled section.
func (b *htmlBuilder) flushSection() {
	content := strings.Join(b.blocks, "\n\n")
	if b.opened || content != "" {
		b.sections = append(b.sections, model.Section{
			Heading: b.heading,
			Content: content,
		})
	}
	b.blocks = nil
	b.heading = ""
	b.opened = false
}

// textContent extracts the visible text of a node and its descendants.
// br elements become line breaks; all other whitespace collapses.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(flattenWhitespace(n.Data))
			return
		}
		if n.Type == html.ElementNode {
			if skipElement(n.Data) {
				return
			}
			if n.Data == "br" {
				sb.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return collapseLines(sb.String())
}

// flattenWhitespace converts source-formatting whitespace inside a text
// node to plain spaces, leaving word boundaries intact. Line breaks in
// the output come only from br elements.
func flattenWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

// collapseLines collapses space runs within each line and trims the
// result.
func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = text.CollapseSpaces(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// skipElement reports whether an element carries no narrative content.
func skipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "head":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}
