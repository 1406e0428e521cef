package launch

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/internal/cmdutil"
)

// NewCommand creates the launch command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "launch <application> [args...]",
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
			return resolver.Launch(args[0], args[1:])
		},
	}
}
