package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagetoc"
	"github.com/fwojciec/pagetoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagetoc.Converter at compile time.
var _ pagetoc.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts plain text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("Getting Started")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", md)
	})

	t.Run("converts strong emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("Hello <strong>World</strong>")

		require.NoError(t, err)
		assert.Equal(t, "Hello **World**", md)
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("The <code>Run</code> method")

		require.NoError(t, err)
		assert.Contains(t, md, "`Run`")
	})

	t.Run("decodes escaped text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("Fish &amp; Chips")

		require.NoError(t, err)
		assert.Equal(t, "Fish & Chips", md)
	})

	t.Run("collapses to a single line", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("Multi\n  line\n label")

		require.NoError(t, err)
		assert.Equal(t, "Multi line label", md)
	})

	t.Run("returns empty string for blank input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("  ")

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
