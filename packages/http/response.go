package http

import (
	"mime"
	"net/http"
	"sort"
	"strings"
)

// Header is one response header entry. Repeated header names stay as
// distinct entries rather than being collapsed into a map.
type Header struct {
	Key   string
	Value string
}

type Response struct {
	Proto      string // e.g. "HTTP/1.1"
	StatusCode int
	Status     string // e.g. "200 OK"
	Headers    []Header
	Body       []byte
}

// headersFromStdlib flattens a stdlib header map into entries ordered
// by canonical name, keeping duplicate values in their received order.
func headersFromStdlib(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]Header, 0, len(h))
	for _, name := range names {
		for _, value := range h[name] {
			headers = append(headers, Header{Key: name, Value: value})
		}
	}
	return headers
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

// Header returns the first value for the given header name, or "".
func (r *Response) Header(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

// ContentType returns the media type of the response body with any
// parameters (charset etc.) stripped, or "" when the header is absent
// or unparseable.
func (r *Response) ContentType() string {
	ct := r.Header("Content-Type")
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mediaType
}

func (r *Response) IsJSON() bool {
	return r.ContentType() == "application/json"
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
