package pagetoc

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify creates a URL-safe anchor from heading text.
// Converts to lowercase, replaces whitespace runs with hyphens and removes
// everything except letters, digits and hyphens.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// fallbackAnchor is used for headings whose text produces an empty slug.
const fallbackAnchor = "section"

// AnchorSet hands out unique anchors within one document.
// The zero value is not usable; call NewAnchorSet.
type AnchorSet struct {
	taken  map[string]bool
	counts map[string]int
}

// NewAnchorSet returns an empty AnchorSet.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{
		taken:  make(map[string]bool),
		counts: make(map[string]int),
	}
}

// Reserve marks id as used, e.g. for ids already present in the markup.
func (a *AnchorSet) Reserve(id string) {
	a.taken[id] = true
}

// Unique returns base if unused, otherwise base with the first free
// numeric suffix ("intro", "intro-1", "intro-2", ...).
func (a *AnchorSet) Unique(base string) string {
	if base == "" {
		base = fallbackAnchor
	}

	anchor := base
	n := a.counts[base]
	for a.taken[anchor] {
		n++
		anchor = base + "-" + strconv.Itoa(n)
	}
	a.counts[base] = n
	a.taken[anchor] = true
	return anchor
}
