// Package parser validates the raw strings gurl receives on the
// command line: request URLs and key=value body fields.
//
// Both entry points are pure functions that return explicit errors, so
// every call site handles the failure path before any request is built.
package parser
