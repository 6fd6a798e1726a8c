package pagetoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML snippet, such as an Entry label, into
	// Markdown.
	Convert(html string) (string, error)
}
