// Package markup turns one line of tab-delimited free text into a
// well-formed tag string.
//
// The pipeline is: split the raw bytes on the tab delimiter, sanitize
// the first token into the tag name, classify the remaining tokens
// into boolean and value-bearing attributes, then render the result
// twice — a compact form for the clipboard and a 42-column wrapped
// display form for on-screen preview.
//
// Every boundary condition degrades silently instead of failing:
// oversized input is truncated, surplus tokens are dropped, surplus
// attributes are demoted, and a nearly-full output buffer stops
// accepting bytes. Callers depend on these exact policies.
package markup
