// Package output renders HTTP responses for human readers on a
// terminal: colored status line and headers, with JSON bodies
// pretty-printed according to the response content type.
package output
