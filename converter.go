package blogscrap

// Converter transforms cached article HTML into Markdown.
type Converter interface {
	// Convert transforms an HTML document or fragment into Markdown.
	Convert(html string) (markdown string, err error)
}
