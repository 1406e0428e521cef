// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Resolution ladder ordering across rules, associations and selector

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resolvr/pkg/apps"
	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/core"
	"github.com/arthur-debert/resolvr/pkg/desktop"
	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/target"
)

type fakeSelector struct {
	choice     string
	err        error
	prompt     string
	candidates []string
}

func (s *fakeSelector) Select(prompt string, candidates []string) (string, error) {
	s.prompt = prompt
	s.candidates = candidates
	if s.err != nil {
		return "", s.err
	}
	return s.choice, nil
}

func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolvr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	return cfg
}

func loadApps(t *testing.T, content string) *apps.Associations {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mimeapps.list")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	a, err := apps.Load(path)
	require.NoError(t, err)
	return a
}

func entryDir(t *testing.T, entries map[string]string) *desktop.Registry {
	t.Helper()
	dir := t.TempDir()
	for name, content := range entries {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return desktop.NewRegistryWithDirs([]string{dir})
}

func TestResolve(t *testing.T) {
	t.Run("pattern_rule_beats_association", func(t *testing.T) {
		cfg := loadConfig(t, `
[[handlers]]
exec = "freetube %u"
regexes = ["youtu[.]be"]
`)
		a := loadApps(t, `[Default Applications]
x-scheme-handler/https=firefox.desktop;
`)
		r := core.New(core.Options{Config: cfg, Apps: a})

		h, err := r.Resolve(target.New("https://youtu.be/dQw4w9WgXcQ"))
		require.NoError(t, err)

		pattern, ok := h.(*handler.PatternHandler)
		require.True(t, ok, "pattern rule should win over the association")
		assert.Equal(t, "freetube %u", pattern.Exec())
	})

	t.Run("association_when_no_rule_matches", func(t *testing.T) {
		cfg := loadConfig(t, `
[[handlers]]
exec = "freetube %u"
regexes = ["youtu[.]be"]
`)
		a := loadApps(t, `[Default Applications]
x-scheme-handler/https=firefox.desktop;
`)
		r := core.New(core.Options{Config: cfg, Apps: a})

		h, err := r.Resolve(target.New("https://en.wikipedia.org"))
		require.NoError(t, err)

		named, ok := h.(handler.NamedHandler)
		require.True(t, ok)
		assert.Equal(t, "firefox.desktop", named.Name())
	})

	t.Run("not_found_when_nothing_applies", func(t *testing.T) {
		cfg := loadConfig(t, "")
		r := core.New(core.Options{Config: cfg, Apps: apps.New(), Selector: &fakeSelector{choice: "never.desktop"}})

		_, err := r.Resolve(target.New("gopher://example.org"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Contains(t, err.Error(), "x-scheme-handler/gopher")
		assert.Equal(t, "x-scheme-handler/gopher", errors.GetErrorDetails(err)["mime"])
	})
}

func TestResolveMimeSelector(t *testing.T) {
	const httpsEntry = `[Desktop Entry]
Name=Browser
Exec=browser %u
MimeType=x-scheme-handler/https;
`

	t.Run("selector_picks_candidate", func(t *testing.T) {
		cfg := loadConfig(t, "enable_selector = true")
		a := loadApps(t, `[Added Associations]
x-scheme-handler/https=lynx.desktop;
`)
		reg := entryDir(t, map[string]string{
			"chromium.desktop": httpsEntry,
			"firefox.desktop":  httpsEntry,
		})
		sel := &fakeSelector{choice: "chromium.desktop"}
		r := core.New(core.Options{Config: cfg, Apps: a, Registry: reg, Selector: sel})

		h, err := r.ResolveMime("x-scheme-handler/https")
		require.NoError(t, err)

		named, ok := h.(handler.NamedHandler)
		require.True(t, ok)
		assert.Equal(t, "chromium.desktop", named.Name())

		// Association candidates come first, then registry entries in
		// file name order.
		assert.Equal(t, []string{"lynx.desktop", "chromium.desktop", "firefox.desktop"}, sel.candidates)
		assert.Contains(t, sel.prompt, "x-scheme-handler/https")
	})

	t.Run("selector_disabled_by_default", func(t *testing.T) {
		cfg := loadConfig(t, "")
		reg := entryDir(t, map[string]string{"firefox.desktop": httpsEntry})
		sel := &fakeSelector{choice: "firefox.desktop"}
		r := core.New(core.Options{Config: cfg, Apps: apps.New(), Registry: reg, Selector: sel})

		_, err := r.ResolveMime("x-scheme-handler/https")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Empty(t, sel.candidates, "selector must not run when disabled")
	})

	t.Run("selector_error_propagates", func(t *testing.T) {
		cfg := loadConfig(t, "enable_selector = true")
		reg := entryDir(t, map[string]string{"firefox.desktop": httpsEntry})
		sel := &fakeSelector{err: errors.New(errors.ErrSelector, "selection cancelled")}
		r := core.New(core.Options{Config: cfg, Apps: apps.New(), Registry: reg, Selector: sel})

		_, err := r.ResolveMime("x-scheme-handler/https")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSelector))
	})

	t.Run("no_candidates_is_not_found", func(t *testing.T) {
		cfg := loadConfig(t, "enable_selector = true")
		sel := &fakeSelector{choice: "anything.desktop"}
		r := core.New(core.Options{Config: cfg, Apps: apps.New(), Registry: entryDir(t, nil), Selector: sel})

		_, err := r.ResolveMime("x-scheme-handler/https")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("default_association_skips_selector", func(t *testing.T) {
		cfg := loadConfig(t, "enable_selector = true")
		a := loadApps(t, `[Default Applications]
x-scheme-handler/https=firefox.desktop;
`)
		sel := &fakeSelector{choice: "chromium.desktop"}
		r := core.New(core.Options{Config: cfg, Apps: a, Selector: sel})

		h, err := r.ResolveMime("x-scheme-handler/https")
		require.NoError(t, err)
		assert.Equal(t, "firefox.desktop", h.(handler.NamedHandler).Name())
		assert.Empty(t, sel.candidates)
	})
}

func TestLooksLikeMime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain_mime", "text/html", true},
		{"scheme_handler", "x-scheme-handler/https", true},
		{"wildcard_subtype", "video/*", true},
		{"url", "https://example.org/page", false},
		{"absolute_path", "/etc/hosts", false},
		{"bare_file", "notes.txt", false},
		{"nested_path", "a/b/c", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.LooksLikeMime(tt.in))
		})
	}

	t.Run("existing_relative_path_wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "text"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "text", "html"), []byte("x"), 0644))

		prev, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(prev) })

		assert.False(t, core.LooksLikeMime("text/html"))
	})
}
