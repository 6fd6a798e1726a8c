// Package readability implements pagetoc.Extractor with go-readability, so
// that a TOC built from a full page only covers the main article and not
// headings in navigation, sidebars or footers.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagetoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagetoc.Extractor at compile time.
var _ pagetoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. pageURL is used to resolve relative
// links in the content and may be nil.
func NewExtractor(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract processes raw HTML and returns the main content.
// If readability finds no article, the input is returned unchanged so the
// headings of short or unusual pages are not lost.
func (e *Extractor) Extract(rawHTML string) (*pagetoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagetoc.Errorf(pagetoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		content = rawHTML
	}

	return &pagetoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: content,
	}, nil
}
