// Package apps manages MIME associations: the mapping from MIME types to
// the desktop entries that handle them, persisted in the freedesktop
// mimeapps.list format. The store keeps the three association groups
// (defaults, added, removed) and answers precedence queries over them.
package apps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/logging"
)

// mimeapps.list group headers, per the freedesktop MIME associations spec
const (
	groupDefaults = "Default Applications"
	groupAdded    = "Added Associations"
	groupRemoved  = "Removed Associations"
)

// Associations is the in-memory form of a mimeapps.list file. Values are
// desktop entry names in precedence order, stored byte-exact as read.
type Associations struct {
	defaults map[string][]string
	added    map[string][]string
	removed  map[string][]string
}

// New returns an empty association store.
func New() *Associations {
	return &Associations{
		defaults: make(map[string][]string),
		added:    make(map[string][]string),
		removed:  make(map[string][]string),
	}
}

// DefaultPath returns the user mimeapps.list location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "mimeapps.list")
}

// LoadDefault loads the user's mimeapps.list. A missing file yields an
// empty store, same as Load.
func LoadDefault() (*Associations, error) {
	return Load(DefaultPath())
}

// Load reads a mimeapps.list file. A missing file is not an error: the
// store starts empty and Save creates the file. Lines outside the three
// association groups are ignored, as are malformed lines; user-edited
// files should not make the whole resolver unusable.
func Load(path string) (*Associations, error) {
	a := New()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	logger := logging.GetLogger("apps")

	var group map[string][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.Trim(line, "[]") {
			case groupDefaults:
				group = a.defaults
			case groupAdded:
				group = a.added
			case groupRemoved:
				group = a.removed
			default:
				group = nil
			}
			continue
		}
		if group == nil {
			continue
		}

		mime, value, found := strings.Cut(line, "=")
		if !found {
			logger.Debug().Str("line", line).Msg("Skipping malformed association line")
			continue
		}
		mime = strings.TrimSpace(mime)
		group[mime] = append(group[mime], splitNames(value)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "%s: read failed", path)
	}

	logger.Debug().
		Str("path", path).
		Int("defaults", len(a.defaults)).
		Int("added", len(a.added)).
		Int("removed", len(a.removed)).
		Msg("Loaded MIME associations")

	return a, nil
}

// DefaultFor returns the default handler for a MIME type: the first name
// in the defaults list that has not been removed.
func (a *Associations) DefaultFor(mime string) (handler.NamedHandler, bool) {
	for _, name := range a.defaults[mime] {
		if !contains(a.removed[mime], name) {
			return handler.AssumeValid(name), true
		}
	}
	return handler.NamedHandler{}, false
}

// AllFor returns every candidate handler for a MIME type in precedence
// order: defaults first, then added associations, de-duplicated, with
// removed names filtered out.
func (a *Associations) AllFor(mime string) []handler.NamedHandler {
	var out []handler.NamedHandler
	seen := make(map[string]bool)
	for _, name := range append(append([]string{}, a.defaults[mime]...), a.added[mime]...) {
		if seen[name] || contains(a.removed[mime], name) {
			continue
		}
		seen[name] = true
		out = append(out, handler.AssumeValid(name))
	}
	return out
}

// SetDefault makes name the sole default handler for mime, clearing any
// removal so the assignment always takes effect.
func (a *Associations) SetDefault(mime, name string) {
	a.defaults[mime] = []string{name}
	a.removed[mime] = without(a.removed[mime], name)
	if len(a.removed[mime]) == 0 {
		delete(a.removed, mime)
	}
}

// Add appends name to the added associations for mime. Setting the
// default is a separate operation; added names only surface through
// AllFor.
func (a *Associations) Add(mime, name string) {
	if contains(a.added[mime], name) {
		return
	}
	a.added[mime] = append(a.added[mime], name)
	a.removed[mime] = without(a.removed[mime], name)
	if len(a.removed[mime]) == 0 {
		delete(a.removed, mime)
	}
}

// Remove blocks name from handling mime: it is dropped from the default
// and added lists and recorded in the removed group so system-wide
// associations stay suppressed too.
func (a *Associations) Remove(mime, name string) {
	a.defaults[mime] = without(a.defaults[mime], name)
	if len(a.defaults[mime]) == 0 {
		delete(a.defaults, mime)
	}
	a.added[mime] = without(a.added[mime], name)
	if len(a.added[mime]) == 0 {
		delete(a.added, mime)
	}
	if !contains(a.removed[mime], name) {
		a.removed[mime] = append(a.removed[mime], name)
	}
}

// Unset drops the default association for mime entirely.
func (a *Associations) Unset(mime string) {
	delete(a.defaults, mime)
}

// Defaults returns a copy of the default associations for display.
func (a *Associations) Defaults() map[string][]string {
	out := make(map[string][]string, len(a.defaults))
	for mime, names := range a.defaults {
		out[mime] = append([]string{}, names...)
	}
	return out
}

// Save writes the store to path in mimeapps.list form. Groups are written
// in fixed order with MIME keys sorted, so saving is deterministic and
// diffs stay readable. Parent directories are created as needed.
func (a *Associations) Save(path string) error {
	var b strings.Builder
	writeGroup(&b, groupDefaults, a.defaults)
	writeGroup(&b, groupAdded, a.added)
	writeGroup(&b, groupRemoved, a.removed)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot write %s", path)
	}

	logger := logging.GetLogger("apps")
	logger.Debug().Str("path", path).Msg("Saved MIME associations")
	return nil
}

func writeGroup(b *strings.Builder, name string, group map[string][]string) {
	mimes := make([]string, 0, len(group))
	for mime, names := range group {
		if len(names) > 0 {
			mimes = append(mimes, mime)
		}
	}
	if len(mimes) == 0 {
		return
	}
	sort.Strings(mimes)

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "[%s]\n", name)
	for _, mime := range mimes {
		fmt.Fprintf(b, "%s=%s;\n", mime, strings.Join(group[mime], ";"))
	}
}

// splitNames splits a ;-separated name list, tolerating the conventional
// trailing semicolon.
func splitNames(value string) []string {
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func without(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
