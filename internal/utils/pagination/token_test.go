package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 6, 12, 9, 30, 15, 123456789, time.UTC)
	id := "4f6c1d2e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"

	token := EncodeToken(createdAt, id)
	require.NotEmpty(t, token)

	gotCreatedAt, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotCreatedAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeTokenInvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeTokenMissingSeparator(t *testing.T) {
	// Valid base64 but no separator inside
	_, _, err := DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeTokenBadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("Z2FyYmFnZXxzb21lLWlk") // "garbage|some-id"
	assert.Error(t, err)
}
