package goquery

import (
	"strings"

	"github.com/fwojciec/pagetoc"
	"golang.org/x/net/html"
)

// StripTags removes every tag from markup whose name is not in allowed,
// keeping the text between the tags. Allowed tags are kept verbatim,
// attributes included. Comments and doctypes are always removed.
func StripTags(markup string, allowed pagetoc.TagSet) string {
	var b strings.Builder
	b.Grow(len(markup))

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if allowed.Contains(string(name)) {
				b.WriteString(raw)
			}
		}
	}
}
