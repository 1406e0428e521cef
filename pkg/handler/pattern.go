package handler

import (
	"fmt"

	"github.com/arthur-debert/resolvr/pkg/desktop"
)

// PatternHandler is a configured rule mapping a set of patterns to a
// command template. It is immutable after construction and safe to share;
// its launch entry is synthesized from the exec template and terminal
// flag alone, with no registry lookup.
type PatternHandler struct {
	exec     string
	terminal bool
	patterns PatternSet
}

// PatternRule is the serialized form of a PatternHandler, as it appears
// in configuration:
//
//	[[handlers]]
//	exec = "freetube %u"
//	terminal = false
//	regexes = ['(https://)?(www\.)?youtu(be\.com|\.be)/*']
type PatternRule struct {
	Exec     string   `koanf:"exec" toml:"exec" yaml:"exec" json:"exec"`
	Terminal bool     `koanf:"terminal" toml:"terminal" yaml:"terminal" json:"terminal"`
	Regexes  []string `koanf:"regexes" toml:"regexes" yaml:"regexes" json:"regexes"`
}

// Compile validates the rule's patterns and builds the handler. A rule
// with no patterns compiles fine and simply never matches.
func (r PatternRule) Compile() (*PatternHandler, error) {
	set, err := NewPatternSet(r.Regexes...)
	if err != nil {
		return nil, err
	}
	return &PatternHandler{
		exec:     r.Exec,
		terminal: r.Terminal,
		patterns: set,
	}, nil
}

// NewPatternHandler builds a handler directly from its parts, compiling
// the patterns.
func NewPatternHandler(exec string, terminal bool, patterns ...string) (*PatternHandler, error) {
	return PatternRule{Exec: exec, Terminal: terminal, Regexes: patterns}.Compile()
}

// Match reports whether candidate matches any of the handler's patterns.
func (h *PatternHandler) Match(candidate string) bool {
	return h.patterns.Matches(candidate)
}

// GetEntry synthesizes the handler's launch entry from its own exec
// template and terminal flag. It performs no I/O and never consults the
// registry.
func (h *PatternHandler) GetEntry() (*desktop.Entry, error) {
	return desktop.Synthetic(h.exec, h.terminal), nil
}

// Exec returns the unexpanded command template.
func (h *PatternHandler) Exec() string { return h.exec }

// Terminal reports whether execution needs a terminal.
func (h *PatternHandler) Terminal() bool { return h.terminal }

// Patterns returns the handler's pattern set.
func (h *PatternHandler) Patterns() PatternSet { return h.patterns }

// Rule maps the handler back to its serialized form. Compiling the
// returned rule yields an equal handler.
func (h *PatternHandler) Rule() PatternRule {
	return PatternRule{
		Exec:     h.exec,
		Terminal: h.terminal,
		Regexes:  h.patterns.Sources(),
	}
}

// String identifies the handler by its command template.
func (h *PatternHandler) String() string {
	return fmt.Sprintf("pattern handler %q", h.exec)
}

// equalTo compares identity fields; both handlers may be nil.
func (h *PatternHandler) equalTo(other *PatternHandler) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.exec == other.exec &&
		h.terminal == other.terminal &&
		h.patterns.Equal(other.patterns)
}
