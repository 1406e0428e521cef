// Package cmdutil holds the wiring shared by the resolvr subcommands:
// loading configuration and associations into a resolver, and picking the
// output renderer from the persistent flags.
package cmdutil

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/pkg/apps"
	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/core"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

// NewResolver loads the configuration and the MIME associations and wires
// a resolver over them.
func NewResolver() (*core.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := apps.LoadDefault()
	if err != nil {
		return nil, err
	}

	return core.New(core.Options{Config: cfg, Apps: store}), nil
}

// Renderer builds the renderer selected by the persistent --output flag.
// "auto" resolves against the real stdout, so piped output degrades to
// plain text even when the command writes through cmd.OutOrStdout().
func Renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("output")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format.Resolve(os.Stdout), cmd.OutOrStdout()), nil
}
