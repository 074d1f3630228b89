package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(username, email string) *models.User {
	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewBadgerUserRepository(setupTestDB(t))

	user := testUser("sam", "sam@example.com")
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam", byID.Username)

	byEmail, err := repo.GetByEmail("sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.Equal(t, ErrNotFound, err)
}

func TestUserRepositoryUniqueness(t *testing.T) {
	repo := NewBadgerUserRepository(setupTestDB(t))

	require.NoError(t, repo.Create(testUser("sam", "sam@example.com")))

	assert.Equal(t, ErrDuplicate, repo.Create(testUser("other", "sam@example.com")))
	assert.Equal(t, ErrDuplicate, repo.Create(testUser("sam", "other@example.com")))
}

func TestUserRepositoryUpdateMovesIndexes(t *testing.T) {
	repo := NewBadgerUserRepository(setupTestDB(t))

	user := testUser("sam", "sam@example.com")
	require.NoError(t, repo.Create(user))

	user.Email = "sam.new@example.com"
	user.Username = "samuel"
	require.NoError(t, repo.Update(user))

	_, err := repo.GetByEmail("sam@example.com")
	assert.Equal(t, ErrNotFound, err)

	byEmail, err := repo.GetByEmail("sam.new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "samuel", byEmail.Username)

	// Released names are reusable.
	require.NoError(t, repo.Create(testUser("sam", "sam@example.com")))
}

func TestUserRepositoryDelete(t *testing.T) {
	repo := NewBadgerUserRepository(setupTestDB(t))

	user := testUser("sam", "sam@example.com")
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.GetByID(user.ID)
	assert.Equal(t, ErrNotFound, err)
	_, err = repo.GetByEmail("sam@example.com")
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, ErrNotFound, repo.Delete("missing"))
}
