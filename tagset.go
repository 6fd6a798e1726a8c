package pagetoc

import (
	"slices"
	"strings"
)

// TagSet is a set of lowercase HTML tag names.
type TagSet map[string]struct{}

// DefaultAllowedTags are the inline formatting tags kept in TOC labels.
var DefaultAllowedTags = NewTagSet("b", "i", "em", "strong", "code", "small", "sub", "sup", "mark", "span")

// NewTagSet returns a TagSet holding the given tag names.
// Names are lowercased and surrounding whitespace is trimmed.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			s[tag] = struct{}{}
		}
	}
	return s
}

// ParseTagSet parses a tag list written either as markup ("<b><i>") or
// as a comma or space separated list ("b, i").
func ParseTagSet(s string) TagSet {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '<', '>', '/', ',', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	return NewTagSet(fields...)
}

// Contains reports whether tag is in the set. Matching is case-insensitive.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[strings.ToLower(tag)]
	return ok
}

// Tags returns the tag names in sorted order.
func (s TagSet) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// String formats the set in the "<b><i>" form accepted by ParseTagSet.
func (s TagSet) String() string {
	var b strings.Builder
	for _, tag := range s.Tags() {
		b.WriteString("<")
		b.WriteString(tag)
		b.WriteString(">")
	}
	return b.String()
}
