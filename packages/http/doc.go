// Package http provides the HTTP client gurl executes requests with.
//
// It wraps the standard library's http package with additional features:
//   - Default headers attached to every outbound request
//   - Configurable timeouts, redirect handling, TLS validation and proxy
//   - Descriptor-driven request execution (GET, POST with JSON body)
//   - Response capture with deterministic header ordering
package http
