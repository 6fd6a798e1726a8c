// Package goquery implements pagetoc.Parser on top of golang.org/x/net/html,
// goquery and cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagetoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RootTag names the synthetic element that wraps every parsed fragment.
// It is a custom element name so it never collides with real content.
const RootTag = "page-toc"

// Ensure Parser implements pagetoc.Parser at compile time.
var _ pagetoc.Parser = (*Parser)(nil)

// Parser builds Documents from HTML fragments. It holds no state and is
// safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse normalizes entities in markup and parses it as a fragment of a
// <body> element, so no <html>, <head> or <body> wrapper is injected.
// The resulting top-level nodes are attached, in order, to a single
// synthetic RootTag element. Whitespace text nodes are kept.
//
// Parsing is tolerant: malformed markup is recovered by the HTML5 tree
// construction rules. If the fragment cannot be parsed at all the returned
// Document has no headings.
func (p *Parser) Parse(markup string) pagetoc.Document {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Body.String(),
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(NormalizeEntities(markup)), context)
	if err != nil {
		return &Document{}
	}

	root := &html.Node{Type: html.ElementNode, Data: RootTag}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	return &Document{doc: goquery.NewDocumentFromNode(root)}
}
