package launch

// Message constants
const (
	MsgShort = "Launch an application by its desktop entry name"
	MsgLong  = `The 'launch' command skips resolution and starts a named application
directly. The name must refer to an installed desktop entry; an unknown
name fails before anything is spawned.

Arguments after the name are handed to the application in place of the
field codes in its Exec line.`

	MsgExample = `  # Start an application with no arguments
  resolvr launch firefox.desktop

  # Pass arguments through
  resolvr launch mpv.desktop -- --fullscreen video.mkv`
)
