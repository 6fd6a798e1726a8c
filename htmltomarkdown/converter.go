// Package htmltomarkdown converts TOC entry labels to inline Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/pagetoc"
)

// Ensure Converter implements pagetoc.Converter at compile time.
var _ pagetoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert label HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms label HTML into a single line of Markdown.
// Blank input converts to "".
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pagetoc.Errorf(pagetoc.EINVALID, "convert label: %v", err)
	}

	return strings.Join(strings.Fields(result), " "), nil
}
