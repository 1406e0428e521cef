package commands

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/add"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/get"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/launch"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/list"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/mime"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/open"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/set"
	"github.com/arthur-debert/resolvr/cmd/resolvr/commands/unset"
	"github.com/arthur-debert/resolvr/internal/version"
	"github.com/arthur-debert/resolvr/pkg/cobrax/topics"
	"github.com/arthur-debert/resolvr/pkg/logging"
)

//go:embed topics/*.md
var helpTopics embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		output    string
	)

	rootCmd := &cobra.Command{
		Use:     "resolvr",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(open.NewCommand())
	rootCmd.AddCommand(launch.NewCommand())
	rootCmd.AddCommand(get.NewCommand())
	rootCmd.AddCommand(mime.NewCommand())
	rootCmd.AddCommand(set.NewCommand())
	rootCmd.AddCommand(add.NewCommand())
	rootCmd.AddCommand(unset.NewCommand())
	rootCmd.AddCommand(list.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help served from the embedded docs, rendered with
	// glamour when printed to a terminal.
	if sub, err := fs.Sub(helpTopics, "topics"); err == nil {
		_ = topics.Initialize(rootCmd, sub, topics.Options{
			Renderer: topics.GlamourRenderer{},
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("resolvr version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
