package mime

// Message constants
const (
	MsgShort = "Show the detected MIME type of target(s)"
	MsgLong  = `The 'mime' command prints the MIME type each target would resolve
under. URLs map to x-scheme-handler types, directories to inode/directory,
and files are matched by name against the shared MIME database.

Files do not need to exist; detection then relies on the name alone.`

	MsgExample = `  # What type is this file?
  resolvr mime archive.tar.gz

  # URLs resolve by scheme
  resolvr mime https://example.org mailto:someone@example.org`
)
