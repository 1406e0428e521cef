package commands

// Message constants
const (
	MsgRootShort = "Resolve and launch handlers for files and URLs"
	MsgRootLong  = `resolvr picks the right application for a file or URL and runs it.

Resolution tries the regex rules from resolvr.toml first, in order. When
none matches, the target's MIME type is looked up in mimeapps.list and the
default application wins; with the selector enabled, a missing default
turns into an interactive choice instead of an error.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(resolvr completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ resolvr completion bash > /etc/bash_completion.d/resolvr
  # macOS:
  $ resolvr completion bash > /usr/local/etc/bash_completion.d/resolvr

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ resolvr completion zsh > "${fpath[1]}/_resolvr"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ resolvr completion fish | source
  # To load completions for each session, execute once:
  $ resolvr completion fish > ~/.config/fish/completions/resolvr.fish

PowerShell:
  PS> resolvr completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> resolvr completion powershell > resolvr.ps1
  # and source this file from your PowerShell profile.
`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format (auto, term, text, json, yaml)"
)
