// Package fs provides file-based loading of HTML sources.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/pagetoc"
)

// StdinSource is the source name that reads from the Reader's stdin.
const StdinSource = "-"

// Ensure Reader implements pagetoc.Fetcher at compile time.
var _ pagetoc.Fetcher = (*Reader)(nil)

// Reader loads HTML from local files, or from stdin for StdinSource.
type Reader struct {
	stdin io.Reader
}

// NewReader creates a Reader that reads StdinSource from stdin.
// If stdin is nil, os.Stdin is used.
func NewReader(stdin io.Reader) *Reader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Reader{stdin: stdin}
}

// Fetch returns the contents of the file at source.
// Returns ENOTFOUND if the file does not exist.
func (r *Reader) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if source == StdinSource {
		b, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := os.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		return "", pagetoc.Errorf(pagetoc.ENOTFOUND, "file %q not found", source)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close is a no-op; files are closed after each read.
func (r *Reader) Close() error {
	return nil
}
