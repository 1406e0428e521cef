// Package ui renders resolvr's command output. Rich and plain renderers
// share one interface; machine formats (json, yaml) live in subpackages
// and encode the same view values.
package ui

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arthur-debert/resolvr/pkg/handler"
	jsonui "github.com/arthur-debert/resolvr/pkg/ui/json"
	yamlui "github.com/arthur-debert/resolvr/pkg/ui/yaml"
)

// HandlerView is the presentation form of a resolved handler.
type HandlerView struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Exec     string   `json:"exec,omitempty" yaml:"exec,omitempty"`
	Terminal bool     `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Regexes  []string `json:"regexes,omitempty" yaml:"regexes,omitempty"`
}

// ViewOf builds the presentation form of a handler.
func ViewOf(h handler.Handler) HandlerView {
	switch h := h.(type) {
	case handler.NamedHandler:
		return HandlerView{Kind: "named", Name: h.Name()}
	case *handler.PatternHandler:
		return HandlerView{
			Kind:     "pattern",
			Exec:     h.Exec(),
			Terminal: h.Terminal(),
			Regexes:  h.Patterns().Sources(),
		}
	}
	return HandlerView{Kind: "unknown"}
}

// Display is the single-line form of a handler used in open/get output.
func (v HandlerView) Display() string {
	if v.Kind == "named" {
		return v.Name
	}
	return v.Exec
}

// ListView is the presentation form of the list command: pattern rules
// followed by MIME associations.
type ListView struct {
	Rules        []handler.PatternRule `json:"rules" yaml:"rules"`
	Associations map[string][]string   `json:"associations" yaml:"associations"`
}

// MimeView pairs a target with its detected MIME type.
type MimeView struct {
	Target string `json:"target" yaml:"target"`
	Mime   string `json:"mime" yaml:"mime"`
}

// Renderer is the output contract the commands print through.
type Renderer interface {
	RenderHandler(v HandlerView) error
	RenderList(v ListView) error
	RenderMimes(v []MimeView) error
	RenderMessage(msg string) error
	RenderError(err error) error
}

// NewRenderer returns the renderer for a concrete format. FormatAuto must
// be resolved by the caller first; it falls back to plain text here.
func NewRenderer(format Format, out io.Writer) Renderer {
	switch format {
	case FormatTerminal:
		return &TerminalRenderer{out: out}
	case FormatJSON:
		return &machineRenderer{enc: jsonui.New(out)}
	case FormatYAML:
		return &machineRenderer{enc: yamlui.New(out)}
	default:
		return &PlainRenderer{out: out}
	}
}

// TerminalRenderer writes styled output for interactive use.
type TerminalRenderer struct {
	out io.Writer
}

func (r *TerminalRenderer) RenderHandler(v HandlerView) error {
	if v.Kind == "named" {
		_, err := fmt.Fprintln(r.out, v.Name)
		return err
	}
	_, err := fmt.Fprintln(r.out, execStyle.Render(v.Exec))
	return err
}

func (r *TerminalRenderer) RenderList(v ListView) error {
	if len(v.Rules) == 0 && len(v.Associations) == 0 {
		_, err := fmt.Fprintln(r.out, mutedStyle.Render("No rules or associations configured"))
		return err
	}

	if len(v.Rules) > 0 {
		fmt.Fprintln(r.out, titleStyle.Render("Pattern rules"))
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			Headers("#", "PATTERNS", "COMMAND", "TERMINAL")
		for i, rule := range v.Rules {
			t.Row(
				strconv.Itoa(i+1),
				strings.Join(rule.Regexes, "\n"),
				rule.Exec,
				boolCell(rule.Terminal),
			)
		}
		fmt.Fprintln(r.out, t)
	}

	if len(v.Associations) > 0 {
		fmt.Fprintln(r.out, titleStyle.Render("Default applications"))
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			Headers("MIME TYPE", "HANDLERS")
		for _, mime := range sortedKeys(v.Associations) {
			t.Row(mime, strings.Join(v.Associations[mime], "\n"))
		}
		fmt.Fprintln(r.out, t)
	}

	return nil
}

func (r *TerminalRenderer) RenderMimes(v []MimeView) error {
	for _, m := range v {
		fmt.Fprintf(r.out, "%s: %s\n", m.Target, execStyle.Render(m.Mime))
	}
	return nil
}

func (r *TerminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

func (r *TerminalRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	// ResolvrError strings already carry their code, so no extra tagging
	// here.
	_, werr := fmt.Fprintf(r.out, "%s %s\n", errorStyle.Render("Error:"), err.Error())
	return werr
}

// PlainRenderer writes unstyled text for pipes and NO_COLOR terminals.
type PlainRenderer struct {
	out io.Writer
}

func (r *PlainRenderer) RenderHandler(v HandlerView) error {
	_, err := fmt.Fprintln(r.out, v.Display())
	return err
}

func (r *PlainRenderer) RenderList(v ListView) error {
	if len(v.Rules) == 0 && len(v.Associations) == 0 {
		_, err := fmt.Fprintln(r.out, "No rules or associations configured")
		return err
	}

	if len(v.Rules) > 0 {
		fmt.Fprintln(r.out, "Pattern rules:")
		for i, rule := range v.Rules {
			terminal := ""
			if rule.Terminal {
				terminal = " (terminal)"
			}
			fmt.Fprintf(r.out, "  %d. %s -> %s%s\n",
				i+1, strings.Join(rule.Regexes, ", "), rule.Exec, terminal)
		}
	}

	if len(v.Associations) > 0 {
		fmt.Fprintln(r.out, "Default applications:")
		for _, mime := range sortedKeys(v.Associations) {
			fmt.Fprintf(r.out, "  %s: %s\n", mime, strings.Join(v.Associations[mime], ", "))
		}
	}

	return nil
}

func (r *PlainRenderer) RenderMimes(v []MimeView) error {
	for _, m := range v {
		fmt.Fprintf(r.out, "%s: %s\n", m.Target, m.Mime)
	}
	return nil
}

func (r *PlainRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

func (r *PlainRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(r.out, "Error: %s\n", err.Error())
	return werr
}

// encoder is the narrow contract shared by the json and yaml renderers.
type encoder interface {
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// machineRenderer adapts the generic machine encoders to the Renderer
// interface by encoding view values directly.
type machineRenderer struct {
	enc encoder
}

func (r *machineRenderer) RenderHandler(v HandlerView) error { return r.enc.RenderResult(v) }
func (r *machineRenderer) RenderList(v ListView) error       { return r.enc.RenderResult(v) }
func (r *machineRenderer) RenderMimes(v []MimeView) error    { return r.enc.RenderResult(v) }
func (r *machineRenderer) RenderMessage(msg string) error    { return r.enc.RenderMessage(msg) }
func (r *machineRenderer) RenderError(err error) error       { return r.enc.RenderError(err) }

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
