package pagetoc

import "strings"

// Options configures which headings appear in a TOC and how their
// labels are filtered.
type Options struct {
	// TopLevel is the highest heading level included (1 for h1).
	TopLevel int `json:"topLevel" yaml:"top_level"`

	// Depth is the number of levels included below and including TopLevel.
	Depth int `json:"depth" yaml:"depth"`

	// AllowedTags survive in entry labels; all other tags are stripped
	// with their text kept. A nil set strips every tag.
	AllowedTags TagSet `json:"-" yaml:"-"`
}

// DefaultOptions returns options covering h1..h6 with DefaultAllowedTags.
func DefaultOptions() Options {
	return Options{
		TopLevel:    MinLevel,
		Depth:       MaxLevel,
		AllowedTags: DefaultAllowedTags,
	}
}

// Entry is a node of a table of contents.
type Entry struct {
	Level    int      `json:"level"`
	Tag      string   `json:"tag"`
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Text     string   `json:"text"`
	Children []*Entry `json:"children,omitempty"`
}

// Generate parses markup and returns the TOC tree for the headings
// selected by opts. Markup without matching headings yields nil.
func Generate(p Parser, markup string, opts Options) []*Entry {
	doc := p.Parse(markup)
	return BuildTree(doc.FindHeadings(opts.TopLevel, opts.Depth), opts.AllowedTags)
}

// BuildTree nests headings into a TOC tree. Headings must be in document
// order; each one becomes a child of the nearest preceding heading with a
// smaller level, so skipped levels (h1 followed by h3) nest directly.
//
// Each entry's ID is the heading's id attribute when present, otherwise a
// unique slug of its text.
func BuildTree(headings []Heading, allowed TagSet) []*Entry {
	if len(headings) == 0 {
		return nil
	}

	anchors := NewAnchorSet()
	for _, h := range headings {
		if id, ok := h.Attr("id"); ok && id != "" {
			anchors.Reserve(id)
		}
	}

	var roots []*Entry
	var stack []*Entry

	for _, h := range headings {
		text := strings.Join(strings.Fields(h.Text()), " ")
		id, ok := h.Attr("id")
		if !ok || id == "" {
			id = anchors.Unique(Slugify(text))
		}

		entry := &Entry{
			Level: h.Level(),
			Tag:   h.TagName(),
			ID:    id,
			Label: h.InnerContent(allowed),
			Text:  text,
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= entry.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, entry)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, entry)
		}
		stack = append(stack, entry)
	}

	return roots
}

// Flatten returns the entries of a TOC tree in pre-order, which is the
// document order of the underlying headings.
func Flatten(entries []*Entry) []*Entry {
	var out []*Entry
	var walk func([]*Entry)
	walk = func(es []*Entry) {
		for _, e := range es {
			out = append(out, e)
			walk(e.Children)
		}
	}
	walk(entries)
	return out
}
