package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pa55word")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pa55word", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pa55word"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("", "s3cret-pa55word"))
}

func TestUserIDContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithUserID(t.Context(), "usr-abc123")

		userID, ok := UserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "usr-abc123", userID)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := UserIDFromContext(t.Context())
		assert.False(t, ok)
	})

	t.Run("blank id treated as absent", func(t *testing.T) {
		_, ok := UserIDFromContext(WithUserID(t.Context(), ""))
		assert.False(t, ok)
	})
}
