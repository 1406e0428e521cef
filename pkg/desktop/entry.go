// Package desktop realizes launch entries: the executable representation of
// "how to run a program". Entries come from two places, freedesktop .desktop
// files found in the XDG data directories and synthetic in-memory entries
// built from a pattern rule's exec template. Both kinds execute the same way
// through Entry.Run.
package desktop

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/resolvr/pkg/errors"
)

// Entry is a launch entry: enough of a desktop entry to decide how to run
// the program it describes. Path is the source file; synthetic entries
// leave it empty.
type Entry struct {
	Name        string   `json:"name" yaml:"name"`
	GenericName string   `json:"genericName,omitempty" yaml:"genericName,omitempty"`
	Exec        string   `json:"exec" yaml:"exec"`
	Terminal    bool     `json:"terminal" yaml:"terminal"`
	NoDisplay   bool     `json:"noDisplay,omitempty" yaml:"noDisplay,omitempty"`
	Hidden      bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	MimeTypes   []string `json:"mimeTypes,omitempty" yaml:"mimeTypes,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
}

// Synthetic builds an in-memory entry from a bare exec template. Pattern
// handlers use this instead of a file lookup; the entry's name is derived
// from the first word of the template.
func Synthetic(exec string, terminal bool) *Entry {
	name := exec
	if fields := strings.Fields(exec); len(fields) > 0 {
		name = fields[0]
	}
	return &Entry{
		Name:     name,
		Exec:     exec,
		Terminal: terminal,
	}
}

// FileName returns the entry's registry name, the base name of its source
// file. Synthetic entries have no file and return "".
func (e *Entry) FileName() string {
	if e.Path == "" {
		return ""
	}
	return filepath.Base(e.Path)
}

// Parse reads a desktop entry from r. Only the [Desktop Entry] group is
// consulted; other groups (actions, translations used by full desktop
// environments) are skipped. path is recorded as the entry's source and
// used in error messages.
func Parse(r io.Reader, path string) (*Entry, error) {
	entry := &Entry{Path: path}

	scanner := bufio.NewScanner(r)
	inDesktopEntry := false
	sawGroup := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sawGroup = true
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}

		if !sawGroup {
			return nil, errors.Newf(errors.ErrEntryParse,
				"%s: content before group header", path)
		}
		if !inDesktopEntry {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, errors.Newf(errors.ErrEntryParse,
				"%s: malformed line %q", path, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Locale-suffixed keys like Name[pt_BR] are skipped; resolvr only
		// needs the untranslated values.
		if strings.Contains(key, "[") {
			continue
		}

		switch key {
		case "Name":
			entry.Name = value
		case "GenericName":
			entry.GenericName = value
		case "Exec":
			entry.Exec = value
		case "Terminal":
			entry.Terminal = value == "true"
		case "NoDisplay":
			entry.NoDisplay = value == "true"
		case "Hidden":
			entry.Hidden = value == "true"
		case "MimeType":
			entry.MimeTypes = splitList(value)
		case "Categories":
			entry.Categories = splitList(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEntryParse, "%s: read failed", path)
	}

	if !sawGroup {
		return nil, errors.Newf(errors.ErrEntryParse,
			"%s: missing [Desktop Entry] group", path)
	}

	return entry, nil
}

// ParseFile reads a desktop entry from disk.
func ParseFile(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEntryLookup, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// splitList splits a ;-separated desktop entry list, tolerating the
// conventional trailing semicolon.
func splitList(value string) []string {
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
