package mock

import "github.com/fwojciec/pagetoc"

var (
	_ pagetoc.Parser   = (*Parser)(nil)
	_ pagetoc.Document = (*Document)(nil)
)

// Parser is a mock implementation of pagetoc.Parser.
type Parser struct {
	ParseFn func(markup string) pagetoc.Document
}

func (p *Parser) Parse(markup string) pagetoc.Document {
	return p.ParseFn(markup)
}

// Document is a mock implementation of pagetoc.Document.
type Document struct {
	FindHeadingsFn func(topLevel, depth int) []pagetoc.Heading
}

func (d *Document) FindHeadings(topLevel, depth int) []pagetoc.Heading {
	return d.FindHeadingsFn(topLevel, depth)
}
