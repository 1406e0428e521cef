package set

// Message constants
const (
	MsgShort = "Set the default application for a MIME type"
	MsgLong  = `The 'set' command makes an application the default handler for a MIME
type, replacing any previous defaults. The change is written to
mimeapps.list and picked up by other freedesktop-aware tools.

The application is recorded as given; it does not need to be installed
yet, but resolution will fail later if its desktop entry never appears.`

	MsgExample = `  # Open web pages with Firefox
  resolvr set text/html firefox.desktop

  # Claim a URL scheme
  resolvr set x-scheme-handler/magnet transmission-gtk.desktop`
)
