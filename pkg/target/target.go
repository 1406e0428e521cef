// Package target classifies raw command-line arguments as file paths or
// URLs. Classification happens once, up front; the rest of the system
// works with the resulting Target value.
package target

import "net/url"

// Target is a classified open argument. The zero value is an empty path
// target.
type Target struct {
	raw string
	url *url.URL
}

// New classifies raw. An argument is a URL when it parses as one and
// carries a scheme longer than one character; single-letter schemes are
// treated as paths so Windows-style drive prefixes like C:\tmp never
// classify as URLs. file:// URLs are reduced to their path form.
func New(raw string) Target {
	u, err := url.Parse(raw)
	if err != nil || len(u.Scheme) <= 1 {
		return Target{raw: raw}
	}
	if u.Scheme == "file" {
		return Target{raw: u.Path}
	}
	return Target{raw: raw, url: u}
}

// String returns the text form of the target: the raw argument for URLs,
// the reduced path for file:// URLs. Pattern matching runs against this.
func (t Target) String() string { return t.raw }

// IsURL reports whether the target classified as a URL.
func (t Target) IsURL() bool { return t.url != nil }

// URL returns the parsed URL, or nil for path targets.
func (t Target) URL() *url.URL { return t.url }

// Path returns the file path for path targets and "" for URLs.
func (t Target) Path() string {
	if t.url != nil {
		return ""
	}
	return t.raw
}
