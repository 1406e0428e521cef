package open

// Message constants
const (
	MsgShort = "Open file(s) or URL(s) with their resolved handler"
	MsgLong  = `The 'open' command resolves each target and launches the matching
application. Resolution tries the regex rules from resolvr.toml first, in
order; when none matches, the default application for the target's MIME
type is used.

Every target is resolved before anything launches, so a target with no
handler aborts the whole invocation. Targets that resolve to the same
handler are passed to it in a single launch.`

	MsgExample = `  # Open a file with its default application
  resolvr open report.pdf

  # Open a URL
  resolvr open https://example.org

  # Several targets: same handler, one launch
  resolvr open one.mkv two.mkv`
)
