package desktop

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/logging"
)

// Mode is the execution intent: opening specific targets versus launching
// the program with no implied target.
type Mode int

const (
	// ModeOpen runs the entry against one or more targets
	ModeOpen Mode = iota
	// ModeLaunch runs the entry directly, passing targets through as-is
	ModeLaunch
)

// String returns the mode name for logging.
func (m Mode) String() string {
	if m == ModeLaunch {
		return "launch"
	}
	return "open"
}

// ExecConfig is the narrow slice of configuration execution needs: the
// terminal emulator command used to wrap terminal entries when stdout is
// not a tty.
type ExecConfig interface {
	TerminalCommand() []string
}

// runCommand starts the composed command. Tests swap this out to capture
// the invocation instead of spawning a process.
var runCommand = func(cmd *exec.Cmd, attach bool) error {
	if attach {
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// stdoutIsTerminal is swappable for tests that exercise terminal handling.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Run expands the entry's command template for the given targets and runs
// it. Open mode with a single-target template (%u/%f or no field code at
// all) runs one invocation per target; launch mode and multi-target
// templates (%U/%F) run a single invocation with everything.
//
// Terminal entries run attached when stdout is a terminal, otherwise they
// are wrapped in the configured terminal emulator and detached. Everything
// else detaches with output discarded.
func (e *Entry) Run(cfg ExecConfig, mode Mode, args []string) error {
	logger := logging.GetLogger("desktop.exec")

	for _, cmdline := range e.invocations(mode, args) {
		argv := e.wrap(cfg, cmdline)
		attach := e.Terminal && stdoutIsTerminal()

		logger.Debug().
			Str("entry", e.Name).
			Str("mode", mode.String()).
			Strs("argv", argv).
			Bool("attach", attach).
			Msg("Running entry")

		cmd := exec.Command(argv[0], argv[1:]...)
		if attach {
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}

		if err := runCommand(cmd, attach); err != nil {
			return errors.Wrapf(err, errors.ErrExecFailure,
				"running %q failed", cmdline)
		}
	}
	return nil
}

// invocations expands the template into one command line per process to
// spawn.
func (e *Entry) invocations(mode Mode, args []string) []string {
	single := len(args) == 0 || mode == ModeLaunch || hasMultiCode(e.Exec)
	if single {
		return []string{expandTemplate(e.Exec, args)}
	}

	lines := make([]string, 0, len(args))
	for _, arg := range args {
		lines = append(lines, expandTemplate(e.Exec, []string{arg}))
	}
	return lines
}

// wrap turns an expanded command line into the argv to spawn, routing
// through sh and prepending the terminal emulator when the entry needs a
// terminal but none is attached.
func (e *Entry) wrap(cfg ExecConfig, cmdline string) []string {
	argv := []string{"sh", "-c", cmdline}
	if e.Terminal && !stdoutIsTerminal() {
		if term := cfg.TerminalCommand(); len(term) > 0 {
			argv = append(append([]string{}, term...), argv...)
		}
	}
	return argv
}

// hasMultiCode reports whether the template consumes all targets in one
// invocation.
func hasMultiCode(template string) bool {
	for i := 0; i+1 < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		switch template[i+1] {
		case 'U', 'F':
			return true
		case '%':
			i++ // skip the escaped percent
		}
	}
	return false
}

// expandTemplate substitutes desktop entry field codes for one invocation:
// %u and %f take the first target, %U and %F take all of them, %% is a
// literal percent and any other code drops. Targets are shell-quoted. A
// template without field codes gets unclaimed targets appended at the end.
func expandTemplate(template string, targets []string) string {
	var b strings.Builder
	substituted := false

	for i := 0; i < len(template); i++ {
		if template[i] != '%' || i+1 >= len(template) {
			b.WriteByte(template[i])
			continue
		}

		i++
		switch template[i] {
		case 'u', 'f':
			if len(targets) > 0 {
				b.WriteString(shellQuote(targets[0]))
			}
			substituted = true
		case 'U', 'F':
			b.WriteString(quoteAll(targets))
			substituted = true
		case '%':
			b.WriteByte('%')
		default:
			// Unsupported codes (%i, %c, %k, deprecated ones) drop.
		}
	}

	if !substituted && len(targets) > 0 {
		b.WriteByte(' ')
		b.WriteString(quoteAll(targets))
	}

	// Codes that expanded to nothing can leave dangling whitespace.
	return strings.TrimSpace(b.String())
}

// quoteAll shell-quotes every target and joins them with spaces.
func quoteAll(targets []string) string {
	quoted := make([]string, len(targets))
	for i, t := range targets {
		quoted[i] = shellQuote(t)
	}
	return strings.Join(quoted, " ")
}

// shellQuote wraps s in single quotes so sh treats it as one literal word.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
