package auth

import (
	"context"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Sign(&models.User{ID: "u1", IsAdmin: true})
	require.NoError(t, err)

	requester, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", requester.ID)
	assert.True(t, requester.IsAdmin)
}

func TestParseRejectsBadTokens(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	_, err := tm.Parse("garbage")
	assert.Equal(t, ErrInvalidToken, err)

	forged, err := NewTokenManager("other-secret", time.Hour).Sign(&models.User{ID: "u1"})
	require.NoError(t, err)
	_, err = tm.Parse(forged)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)

	token, err := tm.Sign(&models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestRequesterContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, RequesterFrom(ctx))

	requester := &models.Requester{ID: "u1"}
	ctx = WithRequester(ctx, requester)
	assert.Equal(t, requester, RequesterFrom(ctx))
}
