package get

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
	"github.com/arthur-debert/resolvr/pkg/core"
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/target"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

// NewCommand creates the get command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <mime|target>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := cmdutil.Renderer(cmd)
			if err != nil {
				return err
			}
			resolver, err := cmdutil.NewResolver()
			if err != nil {
				return err
			}

			var h handler.Handler
			if core.LooksLikeMime(args[0]) {
				h, err = resolver.ResolveMime(args[0])
			} else {
				h, err = resolver.Resolve(target.New(args[0]))
			}
			if err != nil {
				return err
			}

			return renderer.RenderHandler(ui.ViewOf(h))
		},
	}
}
