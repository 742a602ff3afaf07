package cmd

import (
	"github.com/abdul-hamid-achik/gurl/packages/core/parser"
	"github.com/abdul-hamid-achik/gurl/packages/core/request"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Issue a GET request and render the response",
	Long: `Issue a GET request to the given URL and render the response:
status line, headers, and the body (pretty-printed when the response
declares an application/json content type).

Examples:
  gurl get https://httpbin.org/get
  gurl get https://api.example.com/users -H "Authorization: Bearer token"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := parser.ValidateURL(args[0])
		if err != nil {
			return err
		}
		return executeAndRender(cmd, request.Get{URL: url})
	},
}
