package cmd

import (
	"github.com/abdul-hamid-achik/gurl/packages/core/parser"
	"github.com/abdul-hamid-achik/gurl/packages/core/request"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <url> [key=value ...]",
	Short: "Issue a POST request with a JSON body built from key=value fields",
	Long: `Issue a POST request to the given URL. Every additional argument
must be a key=value field; the fields are folded into a single JSON
object sent as the request body with a Content-Type of
application/json. With no fields the body is an empty object.

Examples:
  gurl post https://httpbin.org/post name=alice role=admin
  gurl post https://api.example.com/login user=bob pass=s3cret`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := parser.ValidateURL(args[0])
		if err != nil {
			return err
		}

		// All fields parse before any network activity.
		fields := make([]parser.Pair, 0, len(args)-1)
		for _, token := range args[1:] {
			pair, err := parser.ParsePair(token)
			if err != nil {
				return err
			}
			fields = append(fields, pair)
		}

		return executeAndRender(cmd, request.Post{URL: url, Fields: fields})
	},
}
