package mimetype

import "github.com/arthur-debert/resolvr/pkg/target"

// ForTarget detects the MIME type of a classified target: scheme handler
// types for URLs, filesystem detection for paths.
func ForTarget(t target.Target) string {
	if t.IsURL() {
		return ForURL(t.URL())
	}
	return ForPath(t.Path())
}
