package ui

import (
	"os"
	"os/exec"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/resolvr/pkg/errors"
)

// Selector picks one candidate out of several when resolution is
// ambiguous.
type Selector interface {
	Select(prompt string, candidates []string) (string, error)
}

// CommandSelector drives an external chooser such as rofi, dmenu or fzf.
// The command runs through the shell with the candidates piped
// newline-separated on stdin; the selection is read from stdout.
type CommandSelector struct {
	Command string
}

func (s CommandSelector) Select(prompt string, candidates []string) (string, error) {
	cmd := exec.Command("sh", "-c", s.Command)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSelector, "selector command %q failed", s.Command)
	}

	choice := strings.TrimSpace(string(out))
	if choice == "" {
		return "", errors.New(errors.ErrSelector, "selection cancelled")
	}
	return choice, nil
}

// InteractiveSelector prompts in the terminal. It is the fallback when no
// external selector command is configured.
type InteractiveSelector struct{}

func (InteractiveSelector) Select(prompt string, candidates []string) (string, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(candidates).
		WithDefaultText(prompt).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSelector, "interactive selection failed")
	}
	return choice, nil
}
