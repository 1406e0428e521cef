// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Dispatch grouping and launch argument passing

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/desktop"
	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
)

type dispatchCall struct {
	handler handler.Handler
	args    []string
}

// captureDispatch swaps the launch seams so tests observe dispatch
// without spawning processes.
func captureDispatch(t *testing.T, fail error) *[]dispatchCall {
	t.Helper()
	var calls []dispatchCall

	record := func(h handler.Handler, cfg desktop.ExecConfig, args []string) error {
		calls = append(calls, dispatchCall{handler: h, args: args})
		return fail
	}

	origOpen, origLaunch := openHandler, launchHandler
	openHandler, launchHandler = record, record
	t.Cleanup(func() { openHandler, launchHandler = origOpen, origLaunch })

	return &calls
}

func ruleConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolvr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[handlers]]
exec = "mpv %u"
regexes = ["[.]mkv$"]

[[handlers]]
exec = "zathura %f"
regexes = ["[.]pdf$"]
`), 0644))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	return cfg
}

func TestOpenGroupsByHandler(t *testing.T) {
	calls := captureDispatch(t, nil)
	r := New(Options{Config: ruleConfig(t)})

	err := r.Open([]string{"a.mkv", "b.pdf", "c.mkv"})
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	first, second := (*calls)[0], (*calls)[1]

	// Groups run in first-appearance order, each handler once with all
	// the targets it claimed.
	assert.Equal(t, "mpv %u", first.handler.(*handler.PatternHandler).Exec())
	assert.Equal(t, []string{"a.mkv", "c.mkv"}, first.args)
	assert.Equal(t, "zathura %f", second.handler.(*handler.PatternHandler).Exec())
	assert.Equal(t, []string{"b.pdf"}, second.args)
}

func TestOpenResolvesBeforeLaunching(t *testing.T) {
	calls := captureDispatch(t, nil)
	r := New(Options{Config: ruleConfig(t)})

	err := r.Open([]string{"a.mkv", "mystery.zzz"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Empty(t, *calls, "nothing may launch when any target fails to resolve")
}

func TestOpenAbortsOnLaunchFailure(t *testing.T) {
	calls := captureDispatch(t, errors.New(errors.ErrExecFailure, "spawn failed"))
	r := New(Options{Config: ruleConfig(t)})

	err := r.Open([]string{"a.mkv", "b.pdf"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExecFailure))
	assert.Len(t, *calls, 1, "the failing group aborts the rest")
}

type mapRegistry map[string]*desktop.Entry

func (m mapRegistry) Lookup(name string) (*desktop.Entry, error) {
	if e, ok := m[name]; ok {
		return e, nil
	}
	return nil, errors.Newf(errors.ErrNotFound, "no desktop entry for %q", name)
}

func TestLaunch(t *testing.T) {
	t.Run("passes_args_through", func(t *testing.T) {
		prev := handler.Entries
		handler.Entries = mapRegistry{
			"kitty.desktop": {Name: "kitty", Exec: "kitty"},
		}
		t.Cleanup(func() { handler.Entries = prev })

		calls := captureDispatch(t, nil)
		r := New(Options{Config: ruleConfig(t)})

		require.NoError(t, r.Launch("kitty.desktop", []string{"-e", "htop"}))
		require.Len(t, *calls, 1)
		assert.Equal(t, "kitty.desktop", (*calls)[0].handler.(handler.NamedHandler).Name())
		assert.Equal(t, []string{"-e", "htop"}, (*calls)[0].args)
	})

	t.Run("unknown_name_fails_before_launch", func(t *testing.T) {
		prev := handler.Entries
		handler.Entries = mapRegistry{}
		t.Cleanup(func() { handler.Entries = prev })

		calls := captureDispatch(t, nil)
		r := New(Options{Config: ruleConfig(t)})

		err := r.Launch("ghost.desktop", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Empty(t, *calls)
	})
}
