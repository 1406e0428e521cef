package mime

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
	"github.com/arthur-debert/resolvr/pkg/mimetype"
	"github.com/arthur-debert/resolvr/pkg/target"
	"github.com/arthur-debert/resolvr/pkg/ui"
)

// NewCommand creates the mime command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mime <target>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := cmdutil.Renderer(cmd)
			if err != nil {
				return err
			}

			views := make([]ui.MimeView, 0, len(args))
			for _, raw := range args {
				t := target.New(raw)
				views = append(views, ui.MimeView{
					Target: t.String(),
					Mime:   mimetype.ForTarget(t),
				})
			}

			return renderer.RenderMimes(views)
		},
	}
}
