package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tbragis/refmark/internal/wikilink"
)

// Parser wraps goldmark for markdown processing.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(),
	}
}

// Document contains extracted metadata from a markdown file.
type Document struct {
	Content     []byte
	Frontmatter *Frontmatter
	Headings    []Heading
	Links       []wikilink.Occurrence
}

// Parse parses markdown content into a Document.
func (p *Parser) Parse(content []byte) *Document {
	return &Document{
		Content:     content,
		Frontmatter: ExtractFrontmatter(content),
		Headings:    p.Headings(content),
		Links:       wikilink.Extract(content),
	}
}

// Heading is a markdown heading.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line number
}

// Headings extracts all headings from markdown content via the goldmark
// AST. Frontmatter is stripped first so its closing fence is not read as
// a setext underline.
func (p *Parser) Headings(content []byte) []Heading {
	body, skipped := StripFrontmatter(content)

	root := p.md.Parser().Parse(text.NewReader(body))

	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		seg := h.Lines().At(0)
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  headingText(h, body),
			Line:  skipped + lineAt(body, seg.Start),
		})
		return ast.WalkContinue, nil
	})

	return headings
}

// PlainContent returns the document content without frontmatter.
func (d *Document) PlainContent() string {
	body, _ := StripFrontmatter(d.Content)
	return string(body)
}

func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSpace(sb.String())
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
