package list

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
	"github.com/arthur-debert/resolvr/pkg/apps"
	"github.com/arthur-debert/resolvr/pkg/config"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

// NewCommand creates the list command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := cmdutil.Renderer(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := apps.LoadDefault()
			if err != nil {
				return err
			}

			return renderer.RenderList(ui.ListView{
				Rules:        cfg.Handlers,
				Associations: store.Defaults(),
			})
		},
	}
}
