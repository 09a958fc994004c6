// Package output delivers a rendered document to its destination.
//
// Rendering itself only appends to an io.Writer. This package holds what
// happens around it: writing the result to a file atomically, deciding
// whether a trailing newline belongs after it, and optionally checking
// that the result parses as XML before anything is written.
package output
