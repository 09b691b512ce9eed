package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
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

// ParsedPost contains metadata extracted from a post's index.md.
type ParsedPost struct {
	Meta     map[string]any
	Body     []byte
	Title    string
	HasTitle bool
	Summary  string
	Headings []Heading

	// FrontmatterErr is set when the metadata block could not be decoded.
	// Meta is empty and Body holds the whole content in that case.
	FrontmatterErr error
}

// Parse splits content into metadata and body and extracts the title,
// headings and summary from the body.
func (p *Parser) Parse(content []byte) *ParsedPost {
	meta, body, err := SplitFrontmatter(content)

	post := &ParsedPost{
		Meta:           meta,
		Body:           body,
		FrontmatterErr: err,
	}
	post.Title, post.HasTitle = ExtractTitle(body)
	post.Headings = ExtractHeadings(body)
	post.Summary = p.summary(body)
	return post
}

// summary returns the plain text of the first top-level paragraph.
func (p *Parser) summary(body []byte) string {
	doc := p.md.Parser().Parse(text.NewReader(body))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph {
			continue
		}
		var buf bytes.Buffer
		_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			switch v := n.(type) {
			case *ast.Text:
				buf.Write(v.Segment.Value(body))
				if v.SoftLineBreak() || v.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(v.Value)
			}
			return ast.WalkContinue, nil
		})
		return strings.TrimSpace(buf.String())
	}
	return ""
}
