package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPair is returned when a body token contains no '='.
var ErrMalformedPair = errors.New("malformed key=value pair")

// Pair is a single body field parsed from a key=value token.
type Pair struct {
	Key   string
	Value string
}

// ParsePair splits token on the first '='. The value is everything
// after that '=', so values may themselves contain '=' characters.
func ParsePair(token string) (Pair, error) {
	parts := strings.SplitN(token, "=", 2)
	if len(parts) < 2 {
		return Pair{}, fmt.Errorf("%w: %q (expected key=value)", ErrMalformedPair, token)
	}
	return Pair{Key: parts[0], Value: parts[1]}, nil
}
