package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
	"github.com/arthur-debert/resolvr/pkg/apps"
	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/mimetype"
)

// NewCommand creates the add command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <mime> <application>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := cmdutil.Renderer(cmd)
			if err != nil {
				return err
			}
			mime, name := args[0], args[1]
			if !mimetype.Valid(mime) {
				return errors.Newf(errors.ErrInvalidInput, "not a MIME type: %s", mime)
			}

			store, err := apps.LoadDefault()
			if err != nil {
				return err
			}
			store.Add(mime, name)
			if err := store.Save(apps.DefaultPath()); err != nil {
				return err
			}

			return renderer.RenderMessage(fmt.Sprintf("Added %s for %s", name, mime))
		},
	}
}
