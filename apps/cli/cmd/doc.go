// Package cmd implements the gurl CLI commands using Cobra.
//
// Available commands:
//   - get: Issue a GET request and render the response
//   - post: Issue a POST request with a JSON body built from key=value fields
//   - version: Show gurl version information
//
// Arguments are validated before any network activity: the URL must be
// an absolute http(s) URL, and every body token must match key=value.
package cmd
