package topics

// Renderer turns raw topic content into terminal output. format is the
// topic file's extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics unchanged
type PlainRenderer struct{}

// Render returns content as is
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
