// Package request defines the typed descriptor for the single HTTP
// request an invocation of gurl will perform.
package request

import "github.com/abdul-hamid-achik/gurl/packages/core/parser"

// Descriptor is an immutable, fully validated description of one
// request to make. The set of variants is closed: only Get and Post
// satisfy it, and the executor dispatches on them exhaustively, so a
// new method can only be added by extending that dispatch.
type Descriptor interface {
	descriptor()
}

// Get describes a GET request with no body. URL is always a valid
// absolute URL by construction.
type Get struct {
	URL string
}

// Post describes a POST request whose JSON body is built from
// key=value fields, in the order they appeared on the command line.
type Post struct {
	URL    string
	Fields []parser.Pair
}

func (Get) descriptor()  {}
func (Post) descriptor() {}
