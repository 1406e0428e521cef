package desktop

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/logging"
	"github.com/arthur-debert/resolvr/pkg/registry"
)

// Registry resolves application names to desktop entries by searching the
// applications/ subdirectory of each XDG data directory, in precedence
// order. Parsed entries are cached; repeated lookups of the same name do
// not re-read the file.
type Registry struct {
	// dirs is the explicit search list; nil means the XDG data
	// directories, re-read from the environment on every search.
	dirs   []string
	cache  registry.Store[*Entry]
	logger zerolog.Logger
}

// NewRegistry builds a registry over the standard XDG data directories
// ($XDG_DATA_HOME first, then $XDG_DATA_DIRS), resolved at search time.
func NewRegistry() *Registry {
	return NewRegistryWithDirs(nil)
}

// NewRegistryWithDirs builds a registry over an explicit search list,
// earlier directories taking precedence.
func NewRegistryWithDirs(dirs []string) *Registry {
	return &Registry{
		dirs:   dirs,
		cache:  registry.New[*Entry](),
		logger: logging.GetLogger("desktop.registry"),
	}
}

// searchDirs returns the directories to scan, falling back to the XDG
// data directories when none were given explicitly.
func (r *Registry) searchDirs() []string {
	if r.dirs != nil {
		return r.dirs
	}
	dataDirs := append([]string{xdg.DataHome}, xdg.DataDirs...)
	dirs := make([]string, 0, len(dataDirs))
	for _, d := range dataDirs {
		dirs = append(dirs, filepath.Join(d, "applications"))
	}
	return dirs
}

// entryFileName normalizes a handler name to its desktop file name. Names
// are otherwise opaque; the .desktop suffix is the only structure assumed,
// and only so that "firefox" and "firefox.desktop" land on the same file.
func entryFileName(name string) string {
	if strings.HasSuffix(name, ".desktop") {
		return name
	}
	return name + ".desktop"
}

// Lookup resolves a registered application name to its entry. It fails
// with a NOT_FOUND error when no data directory has a matching file and
// with ENTRY_LOOKUP when a directory cannot be read at all.
func (r *Registry) Lookup(name string) (*Entry, error) {
	fileName := entryFileName(name)

	if entry, err := r.cache.Get(fileName); err == nil {
		return entry, nil
	}

	for _, dir := range r.searchDirs() {
		path := filepath.Join(dir, fileName)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrEntryLookup,
				"cannot search %s", dir)
		}

		entry, err := ParseFile(path)
		if err != nil {
			return nil, err
		}

		_ = r.cache.Put(fileName, entry)
		r.logger.Debug().Str("name", name).Str("path", path).Msg("Resolved desktop entry")
		return entry, nil
	}

	return nil, errors.Newf(errors.ErrNotFound, "no desktop entry for %q", name).
		WithDetail("name", name)
}

// Entries returns every desktop entry visible in the search path. When the
// same file name occurs in several directories only the first is kept,
// matching XDG precedence. Files that fail to parse are skipped.
func (r *Registry) Entries() ([]*Entry, error) {
	seen := make(map[string]bool)
	var entries []*Entry

	for _, dir := range r.searchDirs() {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrEntryLookup,
				"cannot list %s", dir)
		}

		names := make([]string, 0, len(dirEntries))
		for _, de := range dirEntries {
			if de.IsDir() || filepath.Ext(de.Name()) != ".desktop" {
				continue
			}
			names = append(names, de.Name())
		}
		sort.Strings(names)

		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true

			entry, err := r.parseCached(name, filepath.Join(dir, name))
			if err != nil {
				r.logger.Debug().Err(err).Str("file", name).Msg("Skipping unparsable desktop entry")
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// FindByMime returns the entries advertising support for a MIME type,
// skipping entries marked NoDisplay or Hidden.
func (r *Registry) FindByMime(mime string) ([]*Entry, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, err
	}

	var matching []*Entry
	for _, entry := range entries {
		if entry.NoDisplay || entry.Hidden {
			continue
		}
		for _, mt := range entry.MimeTypes {
			if mt == mime {
				matching = append(matching, entry)
				break
			}
		}
	}
	return matching, nil
}

// parseCached parses path unless the cache already holds its entry.
func (r *Registry) parseCached(fileName, path string) (*Entry, error) {
	if entry, err := r.cache.Get(fileName); err == nil {
		return entry, nil
	}
	entry, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Put(fileName, entry)
	return entry, nil
}
