package open

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
)

// NewCommand creates the open command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "open <target>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := cmdutil.NewResolver()
			if err != nil {
				return err
			}
			return resolver.Open(args)
		},
	}
}
