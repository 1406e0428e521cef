package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics richly for the terminal.
// Non-markdown formats pass through untouched.
type GlamourRenderer struct {
	Style string // glamour style name or path; empty means auto-detect
	Width int    // word wrap width; 0 disables wrapping
}

// Render converts markdown to styled terminal output, falling back to
// the raw content if rendering fails.
func (r GlamourRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
