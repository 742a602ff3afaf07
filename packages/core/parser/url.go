package parser

import (
	"errors"
	"fmt"
	neturl "net/url"
)

// ErrInvalidURL is returned when a request URL fails validation.
var ErrInvalidURL = errors.New("invalid URL")

// ValidateURL checks that raw is an absolute http or https URL and
// returns it unchanged on success. Validation is a gate, not a
// normalization step; downstream consumers re-parse as needed.
func ValidateURL(raw string) (string, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q (an http:// or https:// scheme is required)", ErrInvalidURL, raw)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: %q (URL must have a host)", ErrInvalidURL, raw)
	}

	return raw, nil
}
