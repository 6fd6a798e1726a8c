package mock

import (
	"strconv"

	"github.com/fwojciec/pagetoc"
)

var _ pagetoc.Heading = (*Heading)(nil)

// Heading is a static implementation of pagetoc.Heading for tests.
// Label is returned by InnerContent regardless of the allowed tags.
type Heading struct {
	HeadingLevel int
	Attrs        map[string]string
	Content      string
	Label        string
}

// NewHeading returns a Heading whose text and label are both text.
func NewHeading(level int, text string) *Heading {
	return &Heading{HeadingLevel: level, Content: text, Label: text}
}

func (h *Heading) TagName() string {
	return "h" + strconv.Itoa(h.HeadingLevel)
}

func (h *Heading) Children() []pagetoc.Node {
	return nil
}

func (h *Heading) HTML() string {
	return "<" + h.TagName() + ">" + h.Label + "</" + h.TagName() + ">"
}

func (h *Heading) Level() int {
	return h.HeadingLevel
}

func (h *Heading) Attr(name string) (string, bool) {
	v, ok := h.Attrs[name]
	return v, ok
}

func (h *Heading) Text() string {
	return h.Content
}

func (h *Heading) InnerContent(_ pagetoc.TagSet) string {
	return h.Label
}
