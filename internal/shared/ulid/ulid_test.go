package ulid

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID(t *testing.T) {
	t.Parallel()

	first := NewRequestID()
	second := NewRequestID()

	assert.Len(t, first, ulid.EncodedSize)
	_, err := ulid.ParseStrict(first)
	require.NoError(t, err)
	assert.Less(t, first, second, "ids should sort in generation order")
}
