package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSecretIsSalted(t *testing.T) {
	a, err := HashSecret("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashSecret("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", a)
	assert.NotEqual(t, a, b)
	assert.True(t, VerifySecret(a, "s3cret"))
	assert.False(t, VerifySecret(a, "wrong"))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "manager", "key", time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "key")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "manager", claims.Role)

	_, err = ParseJWT(token, "other-key")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(7, "customer", "key", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(token, "key")
	assert.Error(t, err)
}

func TestCacheDisabledWithoutClient(t *testing.T) {
	ctx := context.Background()
	c := NewCache[[]string](nil, time.Minute)

	assert.False(t, c.Enabled())
	got, found, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "rooms:all", []string{"101"}))
	assert.NoError(t, c.Delete(ctx, "rooms:all"))
}
