package mock

import "github.com/fwojciec/pagetoc"

var _ pagetoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagetoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
