package topics

// Renderer formats topic content for terminal display.
type Renderer interface {
	Render(content, format string) string
}

// PlainRenderer passes content through untouched.
type PlainRenderer struct{}

// Render returns the content unchanged.
func (PlainRenderer) Render(content, format string) string {
	return content
}
