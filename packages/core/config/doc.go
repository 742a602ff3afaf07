// Package config loads gurl configuration from JSON config files.
//
// Configuration covers client defaults only (timeouts, redirects, TLS
// validation, proxy, extra default headers, color). Command-line flags
// take precedence over config file values, which take precedence over
// the built-in defaults. Nothing is ever written back.
package config
