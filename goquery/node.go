package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagetoc"
	"golang.org/x/net/html"
)

// Ensure node types implement the pagetoc handles at compile time.
var (
	_ pagetoc.Node    = (*node)(nil)
	_ pagetoc.Heading = (*heading)(nil)
)

// node wraps a single-node goquery selection.
type node struct {
	sel *goquery.Selection
}

func (n *node) TagName() string {
	if len(n.sel.Nodes) == 0 || n.sel.Nodes[0].Type != html.ElementNode {
		return ""
	}
	return goquery.NodeName(n.sel)
}

func (n *node) Children() []pagetoc.Node {
	var children []pagetoc.Node
	n.sel.Contents().Each(func(_ int, sel *goquery.Selection) {
		children = append(children, &node{sel: sel})
	})
	return children
}

// HTML renders the node with the x/net/html serializer, so text is
// escaped and attributes are quoted the same way for every node. Quotes
// and apostrophes in text come out as &#34; and &#39;.
func (n *node) HTML() string {
	s, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return s
}

// heading is a node whose tag is h1..h6.
type heading struct {
	node
	level int
}

func (h *heading) Level() int {
	return h.level
}

func (h *heading) Attr(name string) (string, bool) {
	return h.sel.Attr(name)
}

func (h *heading) Text() string {
	return h.sel.Text()
}

// InnerContent concatenates the serialized children of the heading and
// strips every tag not in allowed.
func (h *heading) InnerContent(allowed pagetoc.TagSet) string {
	var b strings.Builder
	for _, child := range h.Children() {
		b.WriteString(child.HTML())
	}
	return StripTags(b.String(), allowed)
}
