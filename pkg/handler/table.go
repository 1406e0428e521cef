package handler

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/logging"
)

// Table is an ordered collection of pattern handlers, scanned first to
// last during resolution. Order is exactly declaration order from
// configuration; it is the only precedence mechanism. The table is
// read-only after construction, so concurrent resolution is safe.
type Table struct {
	handlers []*PatternHandler
}

// NewTable builds a table over the given handlers, preserving order.
func NewTable(handlers ...*PatternHandler) Table {
	return Table{handlers: handlers}
}

// CompileTable compiles configuration rules into a table. All rules are
// checked so a config with several bad patterns reports every one of
// them, keyed by rule index.
func CompileTable(rules []PatternRule) (Table, error) {
	handlers := make([]*PatternHandler, 0, len(rules))
	var problems []string

	for i, rule := range rules {
		h, err := rule.Compile()
		if err != nil {
			problems = append(problems, fmt.Sprintf("rule %d (exec %q): %v", i, rule.Exec, err))
			continue
		}
		handlers = append(handlers, h)
	}

	if len(problems) > 0 {
		return Table{}, errors.Newf(errors.ErrInvalidPattern,
			"cannot compile handler rules: %s", strings.Join(problems, "; "))
	}
	return NewTable(handlers...), nil
}

// Resolve returns the first handler whose patterns match candidate.
// First match wins: when several rules match, the earliest declared one
// applies and the rest are never consulted. Fails with a NOT_FOUND error
// when nothing matches, including on an empty table.
func (t Table) Resolve(candidate string) (*PatternHandler, error) {
	logger := logging.GetLogger("handler.table")

	for i, h := range t.handlers {
		if h.Match(candidate) {
			logger.Debug().
				Str("candidate", candidate).
				Int("rule", i).
				Str("exec", h.Exec()).
				Msg("Pattern handler matched")
			return h, nil
		}
	}

	return nil, errors.Newf(errors.ErrNotFound, "no handler matched %q", candidate).
		WithDetail("candidate", candidate)
}

// Handlers returns the handlers in table order. The slice is a copy; the
// handlers themselves are shared and immutable.
func (t Table) Handlers() []*PatternHandler {
	out := make([]*PatternHandler, len(t.handlers))
	copy(out, t.handlers)
	return out
}

// Len returns the number of handlers in the table.
func (t Table) Len() int {
	return len(t.handlers)
}
