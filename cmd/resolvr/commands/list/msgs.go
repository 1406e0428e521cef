package list

// Message constants
const (
	MsgShort = "Show configured regex rules and default applications"
	MsgLong  = `The 'list' command prints everything resolution can draw on: the regex
rules from resolvr.toml in match order, and the default applications from
mimeapps.list.`

	MsgExample = `  # Human-readable tables
  resolvr list

  # Feed the configuration to a script
  resolvr list -o json`
)
