// Package core implements resolvr's resolution pipeline: deciding which
// handler opens a target, then dispatching the launches.
//
// # Resolution Order
//
// For every target the resolver walks a fixed ladder and stops at the
// first hit:
//
//  1. Pattern rules from the configuration, in declaration order. The
//     first rule whose regex matches the target's text form wins. Rules
//     see the raw argument (URL or path), never a MIME type.
//
//  2. The MIME association store (mimeapps.list). The target's MIME type
//     is detected and the default application for it, if any, answers.
//
//  3. The selector, when enabled. Candidates are gathered from the
//     association lists and from installed desktop entries claiming the
//     MIME type, and the user picks one interactively.
//
// When the ladder is exhausted resolution fails with NOT_FOUND naming
// the MIME type. There is no fallback after a choice: if the chosen
// handler's desktop entry is missing, that error surfaces as-is rather
// than silently trying the next candidate.
//
// # Dispatch
//
// Open resolves every target before launching anything, then groups the
// targets by handler identity so an application claiming several of them
// is launched once with all its arguments. Groups run in first-appearance
// order and a failed launch aborts the remainder.
package core
