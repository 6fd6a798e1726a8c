package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// rawTextElements hold text the tokenizer never decodes.
var rawTextElements = map[string]bool{
	"script":    true,
	"style":     true,
	"xmp":       true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
}

// NormalizeEntities rewrites the text of markup into a canonical form
// before it is handed to the tree builder.
//
// Each text run is decoded first, using the full HTML5 named entity set
// plus decimal and hex numeric references, and then the characters
// & < > " ' are escaped again. The order matters: decoding alone would turn
// "&lt;b&gt;" into a real <b> tag, and escaping without decoding would turn
// "&amp;lt;" into "&amp;amp;lt;". After both steps "&eacute;" becomes "é",
// "&lt;b&gt;" stays literal text and "&amp;lt;" still reads as "&lt;".
//
// Tags, attributes, comments and the content of raw text elements such as
// <script> are copied verbatim.
func NormalizeEntities(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))

	z := html.NewTokenizer(strings.NewReader(markup))
	inRawText := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if inRawText {
				b.Write(z.Raw())
				continue
			}
			b.WriteString(html.EscapeString(html.UnescapeString(string(z.Raw()))))
		case html.StartTagToken:
			// Raw must be copied before TagName lowercases the buffer.
			b.Write(z.Raw())
			name, _ := z.TagName()
			inRawText = rawTextElements[string(name)]
		default:
			inRawText = false
			b.Write(z.Raw())
		}
	}
}
