package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abdul-hamid-achik/gurl/packages/core/parser"
	"github.com/abdul-hamid-achik/gurl/packages/core/request"
)

// Execute performs the single round trip described by d and returns
// the captured response. Errors surface immediately; there are no
// retries.
func (c *Client) Execute(ctx context.Context, d request.Descriptor) (*Response, error) {
	switch desc := d.(type) {
	case request.Get:
		return c.send(ctx, http.MethodGet, desc.URL, nil, nil)
	case request.Post:
		body, err := encodeFields(desc.Fields)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		headers := map[string]string{"Content-Type": "application/json"}
		return c.send(ctx, http.MethodPost, desc.URL, bytes.NewReader(body), headers)
	default:
		// The descriptor set is closed; reaching this is a bug in the
		// caller, not a user error.
		return nil, fmt.Errorf("unhandled request descriptor %T", d)
	}
}

// encodeFields folds the ordered pairs into a JSON object. Later
// duplicate keys overwrite earlier ones.
func encodeFields(fields []parser.Pair) ([]byte, error) {
	object := make(map[string]string, len(fields))
	for _, f := range fields {
		object[f.Key] = f.Value
	}
	return json.Marshal(object)
}
