package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBeforeCreate(t *testing.T) {
	user := &User{
		Username:     "sam",
		Email:        "sam@example.com",
		PasswordHash: "hash",
	}
	user.BeforeCreate()

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, DefaultProfilePicture, user.ProfilePicture)
}

func TestUserValidate(t *testing.T) {
	user := &User{
		ID:           "u1",
		Username:     "sam",
		Email:        "sam@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	assert.NoError(t, user.Validate())

	user.Email = "not-an-email"
	assert.Error(t, user.Validate())
}

func TestUserPublicStripsPasswordHash(t *testing.T) {
	user := &User{
		ID:           "u1",
		Username:     "sam",
		Email:        "sam@example.com",
		PasswordHash: "secret-hash",
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")

	// The original record keeps its hash.
	assert.Equal(t, "secret-hash", user.PasswordHash)
}
