package unset

// Message constants
const (
	MsgShort = "Drop the default application for a MIME type"
	MsgLong  = `The 'unset' command removes a MIME type's default association from
mimeapps.list. Added candidates are kept; only the default entry goes.

Unsetting a type that has no default is not an error.`

	MsgExample = `  # Stop forcing a browser for web pages
  resolvr unset text/html`
)
