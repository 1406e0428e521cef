package handler

import (
	"hash/fnv"

	"github.com/arthur-debert/resolvr/pkg/desktop"
)

// Handler is a resolved strategy for opening a target: either a named
// desktop application or a pattern rule. The two implementations are
// NamedHandler and *PatternHandler; the set is closed.
type Handler interface {
	// GetEntry resolves the handler to its launch entry. NamedHandler
	// consults the entry registry; PatternHandler synthesizes the entry
	// from its own fields without I/O.
	GetEntry() (*desktop.Entry, error)
}

// Registry is the narrow lookup contract named handlers resolve through.
type Registry interface {
	Lookup(name string) (*desktop.Entry, error)
}

// Entries is the registry named handlers resolve against. Tests swap it
// for a fixture implementation.
var Entries Registry = desktop.NewRegistry()

// Open resolves h's entry and executes it in open mode against args.
// Errors from either step propagate unchanged; there is no fallback from
// one handler to another.
func Open(h Handler, cfg desktop.ExecConfig, args []string) error {
	entry, err := h.GetEntry()
	if err != nil {
		return err
	}
	return entry.Run(cfg, desktop.ModeOpen, args)
}

// Launch resolves h's entry and executes it in launch mode, passing args
// through to the program.
func Launch(h Handler, cfg desktop.ExecConfig, args []string) error {
	entry, err := h.GetEntry()
	if err != nil {
		return err
	}
	return entry.Run(cfg, desktop.ModeLaunch, args)
}

// Equal reports structural equality between two handlers. Handlers of
// different kinds are never equal; same-kind handlers compare on their
// identity fields (name for named handlers, exec/terminal/pattern sources
// for pattern handlers).
func Equal(a, b Handler) bool {
	switch a := a.(type) {
	case NamedHandler:
		named, ok := b.(NamedHandler)
		return ok && a == named
	case *PatternHandler:
		pattern, ok := b.(*PatternHandler)
		return ok && a.equalTo(pattern)
	}
	return false
}

// Hash returns a stable identity hash for a handler, usable to group
// resolution results. Equal handlers hash identically.
func Hash(h Handler) uint64 {
	d := fnv.New64a()
	switch h := h.(type) {
	case NamedHandler:
		_, _ = d.Write([]byte("named\x00"))
		_, _ = d.Write([]byte(h.name))
	case *PatternHandler:
		_, _ = d.Write([]byte("pattern\x00"))
		_, _ = d.Write([]byte(h.exec))
		if h.terminal {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
		for _, src := range h.patterns.sources {
			_, _ = d.Write([]byte(src))
			_, _ = d.Write([]byte{0})
		}
	}
	return d.Sum64()
}
