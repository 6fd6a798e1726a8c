package pagetoc

import "strconv"

// MinLevel and MaxLevel bound the HTML heading levels (h1..h6).
const (
	MinLevel = 1
	MaxLevel = 6
)

// Node is a handle to a node in a parsed HTML tree.
type Node interface {
	// TagName returns the lowercase element name, or "" for text,
	// comment and other non-element nodes.
	TagName() string

	// Children returns the direct child nodes in document order.
	Children() []Node

	// HTML returns the serialized markup of the node itself.
	HTML() string
}

// Heading is an h1..h6 element located in a Document.
type Heading interface {
	Node

	// Level returns the numeric heading level (1 for h1, 6 for h6).
	Level() int

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the heading.
	Text() string

	// InnerContent serializes the heading's children and strips every
	// tag not in allowed, keeping the stripped tags' text in place.
	// An empty heading yields "".
	InnerContent(allowed TagSet) string
}

// Document is a parsed HTML fragment.
type Document interface {
	// FindHeadings returns every heading whose tag is in
	// HeadingTags(topLevel, depth), in document order.
	// Returns an empty slice when nothing matches.
	FindHeadings(topLevel, depth int) []Heading
}

// Parser turns an HTML fragment into a Document.
type Parser interface {
	// Parse builds a Document from markup. Malformed markup is recovered
	// on a best-effort basis and never produces an error; a fragment that
	// cannot be parsed at all yields a Document without headings.
	Parse(markup string) Document
}

// HeadingTags converts a top level and depth to heading tag names.
// The range [topLevel, topLevel+depth-1] is intersected with [1, 6], so
// HeadingTags(1, 3) is ["h1" "h2" "h3"] and HeadingTags(5, 4) is
// ["h5" "h6"]. A depth of zero or less yields an empty slice.
func HeadingTags(topLevel, depth int) []string {
	if depth <= 0 {
		return []string{}
	}

	lo := max(topLevel, MinLevel)
	hi := MaxLevel
	// topLevel+depth-1 overflows for huge depths; only add when it cannot.
	if topLevel < 0 || depth-1 < MaxLevel-topLevel {
		hi = min(topLevel+depth-1, MaxLevel)
	}

	tags := make([]string, 0, MaxLevel)
	for n := lo; n <= hi; n++ {
		tags = append(tags, "h"+strconv.Itoa(n))
	}
	return tags
}

// HeadingLevel returns the level of a heading tag name ("h3" -> 3), or 0
// if tag is not h1..h6.
func HeadingLevel(tag string) int {
	if len(tag) != 2 || (tag[0] != 'h' && tag[0] != 'H') {
		return 0
	}
	n := int(tag[1] - '0')
	if n < MinLevel || n > MaxLevel {
		return 0
	}
	return n
}
