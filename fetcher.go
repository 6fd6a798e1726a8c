package pagetoc

import "context"

// Fetcher loads HTML from a source location such as a file path or URL.
type Fetcher interface {
	// Fetch returns the HTML stored at source.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
