package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	pair, err := ParsePair("name=alice")

	require.NoError(t, err)
	assert.Equal(t, "name", pair.Key)
	assert.Equal(t, "alice", pair.Value)
}

func TestParsePair_ValueContainsEquals(t *testing.T) {
	// Only the first '=' delimits; the rest of the token is the value.
	pair, err := ParsePair("token=a=b=c")

	require.NoError(t, err)
	assert.Equal(t, "token", pair.Key)
	assert.Equal(t, "a=b=c", pair.Value)
}

func TestParsePair_EmptyValue(t *testing.T) {
	pair, err := ParsePair("key=")

	require.NoError(t, err)
	assert.Equal(t, "key", pair.Key)
	assert.Equal(t, "", pair.Value)
}

func TestParsePair_EmptyKey(t *testing.T) {
	pair, err := ParsePair("=value")

	require.NoError(t, err)
	assert.Equal(t, "", pair.Key)
	assert.Equal(t, "value", pair.Value)
}

func TestParsePair_NoEquals(t *testing.T) {
	_, err := ParsePair("justakey")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPair)
	assert.Contains(t, err.Error(), "justakey")
}

func TestParsePair_EmptyToken(t *testing.T) {
	_, err := ParsePair("")

	assert.ErrorIs(t, err, ErrMalformedPair)
}
