package get

// Message constants
const (
	MsgShort = "Show the handler a target or MIME type resolves to"
	MsgLong  = `The 'get' command runs resolution without launching anything and prints
the result.

The argument is treated as a MIME type when it has the type/subtype shape
(like text/html) and no file of that name exists; otherwise it is treated
as a path or URL. Bare MIME types resolve through the associations only,
since regex rules match targets, not types.`

	MsgExample = `  # Which handler opens this file?
  resolvr get notes.txt

  # Which handler is associated with a MIME type?
  resolvr get text/html

  # Machine-readable resolution
  resolvr get -o json https://example.org`
)
