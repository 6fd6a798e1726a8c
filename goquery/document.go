package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagetoc"
)

// Ensure Document implements pagetoc.Document at compile time.
var _ pagetoc.Document = (*Document)(nil)

// Document is a parsed fragment rooted at a synthetic RootTag element.
// The zero value is an empty document without headings.
type Document struct {
	doc *goquery.Document
}

// Root returns the synthetic root node, or nil for an empty document.
func (d *Document) Root() pagetoc.Node {
	if d.doc == nil {
		return nil
	}
	return &node{sel: d.doc.Selection}
}

// FindHeadings returns the headings whose tag is in
// pagetoc.HeadingTags(topLevel, depth). Tags are matched by element name
// at any nesting depth and results are in document order,
// which together with each heading's level determines the TOC shape.
func (d *Document) FindHeadings(topLevel, depth int) []pagetoc.Heading {
	headings := []pagetoc.Heading{}
	if d.doc == nil || len(d.doc.Nodes) == 0 {
		return headings
	}

	tags := pagetoc.HeadingTags(topLevel, depth)
	if len(tags) == 0 {
		return headings
	}

	matcher, err := cascadia.Compile(strings.Join(tags, ", "))
	if err != nil {
		return headings
	}

	d.doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		headings = append(headings, &heading{
			node:  node{sel: sel},
			level: pagetoc.HeadingLevel(goquery.NodeName(sel)),
		})
	})
	return headings
}
