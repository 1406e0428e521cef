// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Renderer provides YAML output for machine consumption
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.RenderResult(map[string]string{
		"error": err.Error(),
	})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderResult(map[string]string{
		"message": msg,
	})
}
