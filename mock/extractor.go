package mock

import "github.com/fwojciec/pagetoc"

var _ pagetoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagetoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagetoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
