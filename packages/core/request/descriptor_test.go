package request

import (
	"testing"

	"github.com/abdul-hamid-achik/gurl/packages/core/parser"
	"github.com/stretchr/testify/assert"
)

func TestDescriptorVariants(t *testing.T) {
	var d Descriptor = Get{URL: "https://example.com"}
	assert.IsType(t, Get{}, d)

	d = Post{
		URL:    "https://example.com",
		Fields: []parser.Pair{{Key: "a", Value: "1"}},
	}

	post, ok := d.(Post)
	assert.True(t, ok)
	assert.Len(t, post.Fields, 1)
	assert.Equal(t, "a", post.Fields[0].Key)
}
