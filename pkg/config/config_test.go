// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Configuration layering, rule compilation, and TOML round-trips

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolvr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolvr.toml")
		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)

		assert.False(t, cfg.EnableSelector)
		assert.Equal(t, "rofi -dmenu -i -p 'Open with'", cfg.Selector)
		assert.Equal(t, "xterm -e", cfg.TermCmd)
		assert.Empty(t, cfg.Handlers)
		assert.Equal(t, 0, cfg.Table().Len())
		assert.Equal(t, path, cfg.Path())
	})

	t.Run("file_overrides_defaults", func(t *testing.T) {
		cfg, err := config.LoadFrom(writeConfig(t, `
enable_selector = true
selector = "fzf"
term_command = "alacritty -e"

[[handlers]]
exec = "freetube %u"
regexes = ["youtu[.]be"]

[[handlers]]
exec = "hx %f"
terminal = true
regexes = ["[.]md$"]
`))
		require.NoError(t, err)

		assert.True(t, cfg.EnableSelector)
		assert.Equal(t, "fzf", cfg.Selector)
		assert.Equal(t, []string{"alacritty", "-e"}, cfg.TerminalCommand())
		require.Len(t, cfg.Handlers, 2)
		assert.Equal(t, "freetube %u", cfg.Handlers[0].Exec)
		assert.True(t, cfg.Handlers[1].Terminal)
	})

	t.Run("table_compiled_at_load", func(t *testing.T) {
		cfg, err := config.LoadFrom(writeConfig(t, `
[[handlers]]
exec = "freetube %u"
regexes = ["youtu[.]be"]
`))
		require.NoError(t, err)

		h, err := cfg.Table().Resolve("https://youtu.be/dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, "freetube %u", h.Exec())
	})

	t.Run("invalid_pattern_fails_load", func(t *testing.T) {
		_, err := config.LoadFrom(writeConfig(t, `
[[handlers]]
exec = "broken %u"
regexes = ["(unclosed"]
`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
		assert.Contains(t, err.Error(), "broken %u")
	})

	t.Run("malformed_toml_fails_load", func(t *testing.T) {
		_, err := config.LoadFrom(writeConfig(t, `selector = "unterminated`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Run("env_beats_file", func(t *testing.T) {
		path := writeConfig(t, `selector = "fzf"`)
		t.Setenv("RESOLVR_SELECTOR", "dmenu")

		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "dmenu", cfg.Selector)
	})

	t.Run("env_beats_defaults", func(t *testing.T) {
		t.Setenv("RESOLVR_TERM_COMMAND", "kitty")

		cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "resolvr.toml"))
		require.NoError(t, err)
		assert.Equal(t, []string{"kitty"}, cfg.TerminalCommand())
	})

	t.Run("env_bool_coerced", func(t *testing.T) {
		t.Setenv("RESOLVR_ENABLE_SELECTOR", "true")

		cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "resolvr.toml"))
		require.NoError(t, err)
		assert.True(t, cfg.EnableSelector)
	})
}

func TestSave(t *testing.T) {
	t.Run("round_trip_preserves_handlers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "resolvr.toml")
		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)

		cfg.Selector = "fzf"
		cfg.Handlers = []handler.PatternRule{
			{Exec: "freetube %u", Regexes: []string{`youtu[.]be`}},
			{Exec: "hx %f", Terminal: true, Regexes: []string{`[.]md$`, `[.]txt$`}},
		}
		require.NoError(t, cfg.Save())

		loaded, err := config.LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "fzf", loaded.Selector)
		assert.Equal(t, cfg.Handlers, loaded.Handlers)
	})

	t.Run("creates_parent_directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "resolvr.toml")
		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)

		require.NoError(t, cfg.Save())
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join(dir, "resolvr", "resolvr.toml"), config.DefaultPath())
}

func TestTerminalCommand(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "resolvr.toml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"xterm", "-e"}, cfg.TerminalCommand())

	cfg.TermCmd = ""
	assert.Empty(t, cfg.TerminalCommand())
}
