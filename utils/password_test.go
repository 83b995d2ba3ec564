package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("changeme123")
	require.NoError(t, err)
	require.NotEqual(t, "changeme123", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, CheckPasswordHash("changeme123", hash))
	require.False(t, CheckPasswordHash("wrong-password", hash))
	require.False(t, CheckPasswordHash("changeme123", "not-a-hash"))
}
