// Package handler implements resolvr's resolution model: deciding which
// program handles a path or URL, and turning that decision into an
// executable action.
//
// # Handler Kinds
//
// A Handler is one of exactly two things:
//
//   - NamedHandler - a registered desktop application, identified by name
//     and resolved through the entry registry (an XDG data directory
//     search).
//   - PatternHandler - a rule from configuration pairing a set of regular
//     expressions with a command template; it synthesizes its launch entry
//     in memory and never touches the registry.
//
// Both kinds expose GetEntry; Open and Launch are free functions over the
// interface so the mode composition (resolve the entry, then execute it)
// exists in one place. The set is closed - nothing registers new kinds at
// runtime.
//
// # Pattern Routing
//
// Pattern handlers live in a Table, scanned in declaration order. The
// first handler whose pattern set matches the candidate wins; when two
// patterns overlap the earlier rule applies silently. Users control
// precedence by ordering their rules:
//
//	[[handlers]]
//	exec = "freetube %u"
//	regexes = ['(https://)?(www\.)?youtu(be\.com|\.be)/*']
//
//	[[handlers]]
//	exec = "mpv %u"
//	regexes = ['\.mkv$', '\.mp4$']
//
// # Identity
//
// Handlers compare and hash structurally. Pattern sets define identity
// over their ordered pattern source strings, never over the compiled
// form, so two sets built from the same text are equal no matter how they
// were constructed.
package handler
