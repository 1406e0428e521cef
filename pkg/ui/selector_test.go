// TEST TYPE: Unit Test
// DEPENDENCIES: sh
// PURPOSE: External selector command wiring

package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

func TestCommandSelector(t *testing.T) {
	candidates := []string{"firefox.desktop", "chromium.desktop", "lynx.desktop"}

	t.Run("candidates_piped_on_stdin", func(t *testing.T) {
		s := ui.CommandSelector{Command: "head -n 1"}
		choice, err := s.Select("Open with", candidates)
		require.NoError(t, err)
		assert.Equal(t, "firefox.desktop", choice)
	})

	t.Run("selection_read_from_stdout", func(t *testing.T) {
		s := ui.CommandSelector{Command: "grep lynx"}
		choice, err := s.Select("Open with", candidates)
		require.NoError(t, err)
		assert.Equal(t, "lynx.desktop", choice)
	})

	t.Run("empty_selection_is_cancelled", func(t *testing.T) {
		s := ui.CommandSelector{Command: "true"}
		_, err := s.Select("Open with", candidates)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSelector))
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("failing_command", func(t *testing.T) {
		s := ui.CommandSelector{Command: "false"}
		_, err := s.Select("Open with", candidates)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSelector))
	})

	t.Run("trailing_newline_trimmed", func(t *testing.T) {
		s := ui.CommandSelector{Command: "tail -n 1"}
		choice, err := s.Select("Open with", candidates)
		require.NoError(t, err)
		assert.Equal(t, "lynx.desktop", choice)
	})
}
