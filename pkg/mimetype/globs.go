package mimetype

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/beevik/etree"

	"github.com/arthur-debert/resolvr/pkg/logging"
)

// sharedMimePackage is the canonical shared-mime-info source file, relative
// to the XDG data directories.
var sharedMimePackage = filepath.Join("mime", "packages", "freedesktop.org.xml")

// globs indexes shared-mime-info glob patterns. Plain *.ext patterns are
// kept in a suffix map; anything fancier is matched with filepath.Match.
type globs struct {
	bySuffix map[string]string
	patterns []globPattern
}

type globPattern struct {
	pattern string
	mime    string
}

var (
	globsMu  sync.Mutex
	globsTbl *globs
)

// globTable returns the lazily-loaded glob index. A missing or broken
// database is not an error; detection then uses the stdlib table only.
func globTable() *globs {
	globsMu.Lock()
	defer globsMu.Unlock()

	if globsTbl == nil {
		globsTbl = loadSharedMimeGlobs()
	}
	return globsTbl
}

// resetGlobTable drops the cached index so the next lookup reloads it.
// Used by tests that point XDG_DATA_DIRS at a fixture tree.
func resetGlobTable() {
	globsMu.Lock()
	defer globsMu.Unlock()
	globsTbl = nil
}

func loadSharedMimeGlobs() *globs {
	logger := logging.GetLogger("mimetype")

	path, err := xdg.SearchDataFile(sharedMimePackage)
	if err != nil {
		logger.Debug().Err(err).Msg("No shared-mime-info database, using built-in table")
		return &globs{bySuffix: map[string]string{}}
	}

	g, err := parseGlobsFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Failed to parse shared-mime-info database")
		return &globs{bySuffix: map[string]string{}}
	}

	logger.Debug().
		Str("path", path).
		Int("suffixes", len(g.bySuffix)).
		Int("patterns", len(g.patterns)).
		Msg("Loaded shared-mime-info globs")
	return g
}

// parseGlobsFile reads <mime-type type=...><glob pattern=...> pairs from a
// shared-mime-info package file.
func parseGlobsFile(path string) (*globs, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}

	g := &globs{bySuffix: map[string]string{}}

	root := doc.SelectElement("mime-info")
	if root == nil {
		return g, nil
	}

	for _, mt := range root.SelectElements("mime-type") {
		typ := mt.SelectAttrValue("type", "")
		if typ == "" {
			continue
		}
		for _, gl := range mt.SelectElements("glob") {
			pattern := gl.SelectAttrValue("pattern", "")
			switch {
			case pattern == "":
				continue
			case strings.HasPrefix(pattern, "*.") && !strings.ContainsAny(pattern[2:], "*?["):
				// Suffix kept with its leading dot, lowercased: globs in
				// the database are case-insensitive for practical purposes.
				suffix := strings.ToLower(pattern[1:])
				if _, dup := g.bySuffix[suffix]; !dup {
					g.bySuffix[suffix] = typ
				}
			default:
				g.patterns = append(g.patterns, globPattern{pattern: pattern, mime: typ})
			}
		}
	}

	return g, nil
}

// typeForName resolves a bare file name against the glob index. Longer
// suffixes win (.tar.gz before .gz) because dots are scanned left to right.
func (g *globs) typeForName(name string) string {
	lower := strings.ToLower(name)
	for i := 0; i < len(lower); i++ {
		if lower[i] != '.' {
			continue
		}
		if t, ok := g.bySuffix[lower[i:]]; ok {
			return t
		}
	}

	for _, p := range g.patterns {
		if ok, err := filepath.Match(p.pattern, name); err == nil && ok {
			return p.mime
		}
	}

	return ""
}
