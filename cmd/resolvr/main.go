package main

import (
	"os"

	"github.com/arthur-debert/resolvr/cmd/resolvr/commands"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors are silenced inside cobra so they print exactly once,
		// styled when stderr is a terminal.
		format := ui.FormatAuto.Resolve(os.Stderr)
		_ = ui.NewRenderer(format, os.Stderr).RenderError(err)
		os.Exit(1)
	}
}
