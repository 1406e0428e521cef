package add

// Message constants
const (
	MsgShort = "Add an application as a candidate for a MIME type"
	MsgLong  = `The 'add' command associates an application with a MIME type without
making it the default. Added applications show up as selector candidates
and in other tools' "open with" menus.

Use 'set' instead to make the application the default handler.`

	MsgExample = `  # Offer mpv for matroska videos without changing the default
  resolvr add video/x-matroska mpv.desktop`
)
