package core

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/resolvr/pkg/apps"
	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/desktop"
	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/logging"
	"github.com/arthur-debert/resolvr/pkg/mimetype"
	"github.com/arthur-debert/resolvr/pkg/target"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

// Resolver decides which handler opens a target. It is immutable after
// construction and safe for concurrent use.
type Resolver struct {
	cfg      *config.Config
	apps     *apps.Associations
	registry *desktop.Registry
	selector ui.Selector
	logger   zerolog.Logger
}

// Options wires a Resolver's collaborators. Nil fields get production
// defaults from Config and the XDG directories.
type Options struct {
	Config   *config.Config
	Apps     *apps.Associations
	Registry *desktop.Registry
	Selector ui.Selector
}

// New builds a Resolver. Only Config is required.
func New(opts Options) *Resolver {
	r := &Resolver{
		cfg:      opts.Config,
		apps:     opts.Apps,
		registry: opts.Registry,
		selector: opts.Selector,
		logger:   logging.GetLogger("core.resolver"),
	}
	if r.apps == nil {
		r.apps = apps.New()
	}
	if r.registry == nil {
		r.registry = desktop.NewRegistry()
	}
	if r.selector == nil {
		r.selector = defaultSelector(r.cfg)
	}
	return r
}

// defaultSelector picks the selector implementation: the configured
// external command when set, the terminal prompt when resolvr itself is
// interactive, nothing otherwise.
func defaultSelector(cfg *config.Config) ui.Selector {
	if cfg.Selector != "" {
		return ui.CommandSelector{Command: cfg.Selector}
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return ui.InteractiveSelector{}
	}
	return nil
}

// Resolve finds the handler for a target: pattern rules first, then MIME
// associations.
func (r *Resolver) Resolve(t target.Target) (handler.Handler, error) {
	h, err := r.cfg.Table().Resolve(t.String())
	if err == nil {
		return h, nil
	}
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		return nil, err
	}

	mime := mimetype.ForTarget(t)
	r.logger.Debug().
		Str("target", t.String()).
		Str("mime", mime).
		Msg("No pattern rule matched, trying MIME associations")

	return r.ResolveMime(mime)
}

// ResolveMime finds the handler for a bare MIME type: the default
// association when one exists, otherwise the selector over all known
// candidates.
func (r *Resolver) ResolveMime(mime string) (handler.Handler, error) {
	if h, ok := r.apps.DefaultFor(mime); ok {
		r.logger.Debug().
			Str("mime", mime).
			Str("handler", h.Name()).
			Msg("Resolved via default association")
		return h, nil
	}

	if r.cfg.EnableSelector && r.selector != nil {
		if candidates := r.candidatesFor(mime); len(candidates) > 0 {
			choice, err := r.selector.Select("Open "+mime+" with", candidates)
			if err != nil {
				return nil, err
			}
			// The choice came out of the registry or the association
			// lists, so the trusted constructor is appropriate here.
			return handler.AssumeValid(choice), nil
		}
	}

	return nil, errors.Newf(errors.ErrNotFound, "no handler for %s", mime).
		WithDetail("mime", mime)
}

// candidatesFor gathers selector candidates for a MIME type: associated
// names first, then installed desktop entries claiming the type.
func (r *Resolver) candidatesFor(mime string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, h := range r.apps.AllFor(mime) {
		if !seen[h.Name()] {
			seen[h.Name()] = true
			out = append(out, h.Name())
		}
	}

	entries, err := r.registry.FindByMime(mime)
	if err != nil {
		r.logger.Debug().Err(err).Str("mime", mime).Msg("Cannot scan desktop entries")
		return out
	}
	for _, e := range entries {
		name := e.FileName()
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	return out
}

// LooksLikeMime reports whether an argument is a literal MIME type rather
// than a target, e.g. "text/html" as opposed to "notes/summary.txt". An
// existing file of the same name takes precedence.
func LooksLikeMime(s string) bool {
	if !mimetype.Valid(s) {
		return false
	}
	if _, err := os.Stat(s); err == nil {
		return false
	}
	return true
}
