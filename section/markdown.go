package section

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/tsawler/pagina/model"
)

// FromMarkdown extracts sections from a markdown document. Heading
// nodes open sections and block content accumulates under the most
// recent one, so marker heuristics are never needed for structured
// payloads. Text before the first heading becomes an untitled preamble
// section. Inline emphasis markers inside body text are kept verbatim
// for the render-time formatter.
func FromMarkdown(src []byte) []model.Section {
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(src))

	var sections []model.Section
	var heading string
	var body bytes.Buffer
	opened := false

	flush := func() {
		content := strings.TrimSpace(body.String())
		if opened || content != "" {
			sections = append(sections, model.Section{
				Heading: heading,
				Content: content,
			})
		}
		body.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			flush()
			heading = inlineText(h, src)
			opened = true
			continue
		}
		if t := blockText(n, src); t != "" {
			if body.Len() > 0 {
				body.WriteString("\n\n")
			}
			body.WriteString(t)
		}
	}
	flush()

	return sections
}

// blockText returns the source text of a block node. Leaf blocks read
// their raw source lines; container blocks such as lists and
// blockquotes join their children line by line.
func blockText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// inlineText collects the text of a node's inline children, dropping
// emphasis markers and other markup syntax.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(inlineText(c, src))
	}
	return strings.TrimSpace(buf.String())
}
