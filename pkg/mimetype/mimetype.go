// Package mimetype infers MIME types for the things resolvr is asked to
// open. URLs map to x-scheme-handler types, directories to inode/directory,
// and files are matched by name against the shared-mime-info glob database
// when one is installed, falling back to Go's extension table.
package mimetype

import (
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Well-known types returned by detection
const (
	// Directory is the MIME type of directories
	Directory = "inode/directory"

	// Unknown is the fallback type when nothing matches
	Unknown = "application/octet-stream"
)

// schemePrefix is the freedesktop convention for URL scheme handlers
const schemePrefix = "x-scheme-handler/"

// ForURL returns the scheme-handler type for a URL (e.g. x-scheme-handler/https)
func ForURL(u *url.URL) string {
	return schemePrefix + strings.ToLower(u.Scheme)
}

// ForPath detects the MIME type of a filesystem path. The path does not
// need to exist; detection then relies on the file name alone.
func ForPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Directory
	}

	name := filepath.Base(path)
	if t := globTable().typeForName(name); t != "" {
		return t
	}

	if ext := filepath.Ext(name); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return stripParams(t)
		}
	}

	return Unknown
}

var mimeShape = regexp.MustCompile(`^[a-zA-Z0-9._+-]+/[a-zA-Z0-9._+*-]+$`)

// Valid reports whether s has the type/subtype shape of a MIME type.
// Wildcard subtypes such as "image/*" are accepted.
func Valid(s string) bool {
	return mimeShape.MatchString(s)
}

// stripParams drops media type parameters such as "; charset=utf-8"
func stripParams(mediaType string) string {
	if base, _, found := strings.Cut(mediaType, ";"); found {
		return strings.TrimSpace(base)
	}
	return mediaType
}
