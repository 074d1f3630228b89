package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testPost(title, userID string) *models.Post {
	return &models.Post{
		UserID:  userID,
		Title:   title,
		Content: "content of " + title,
		Slug:    models.Slugify(title),
	}
}

func TestPostRepositoryCreate(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := testPost("First Post", "u1")
	require.NoError(t, repo.Create(post))

	assert.NotEmpty(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, models.DefaultCategory, post.Category)
	assert.Equal(t, models.DefaultPostImage, post.Image)

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, stored.Title)
	assert.Equal(t, "first-post", stored.Slug)
}

func TestPostRepositoryCreateDuplicateTitle(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	require.NoError(t, repo.Create(testPost("Same Title", "u1")))

	err := repo.Create(testPost("Same Title", "u2"))
	assert.Equal(t, ErrDuplicate, err)
}

func TestPostRepositoryCreateDuplicateSlug(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	// Distinct titles, identical slug after normalization.
	require.NoError(t, repo.Create(testPost("Hello World", "u1")))

	err := repo.Create(testPost("Hello, World!", "u1"))
	assert.Equal(t, ErrDuplicate, err)
}

func TestPostRepositoryEmptySlugTitles(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	// All-symbol titles normalize to an empty slug; the first is storable,
	// the second collides on slug uniqueness.
	require.NoError(t, repo.Create(testPost("!!!", "u1")))
	assert.Equal(t, ErrDuplicate, repo.Create(testPost("@@@", "u1")))
}

func TestPostRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	_, err := repo.GetByID("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestPostRepositoryUpdate(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := testPost("Original Title", "u1")
	require.NoError(t, repo.Create(post))
	originalSlug := post.Slug

	post.Title = "Edited Title"
	post.Content = "edited"
	require.NoError(t, repo.Update(post))

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited Title", stored.Title)
	assert.Equal(t, originalSlug, stored.Slug)

	// The old title is free again (the original slug is still held, so the
	// new post needs its own), and the new title is taken.
	require.NoError(t, repo.Create(&models.Post{
		UserID:  "u2",
		Title:   "Original Title",
		Content: "x",
		Slug:    "a-fresh-slug",
	}))
	assert.Equal(t, ErrDuplicate, repo.Create(&models.Post{
		UserID:  "u3",
		Title:   "Edited Title",
		Content: "x",
		Slug:    "something-unique",
	}))
}

func TestPostRepositoryUpdateMissing(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := testPost("Ghost", "u1")
	post.ID = "missing"
	assert.Equal(t, ErrNotFound, repo.Update(post))
}

func TestPostRepositoryDelete(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := testPost("Doomed", "u1")
	require.NoError(t, repo.Create(post))
	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.Equal(t, ErrNotFound, err)

	// Title and slug are released for reuse.
	require.NoError(t, repo.Create(testPost("Doomed", "u2")))

	assert.Equal(t, ErrNotFound, repo.Delete("missing"))
}

func TestPostRepositoryListSortAndPagination(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	titles := []string{"Post A", "Post B", "Post C", "Post D"}
	for i, title := range titles {
		post := testPost(title, "u1")
		post.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		post.UpdatedAt = post.CreatedAt
		require.NoError(t, repo.Create(post))
	}

	// Default order: most recently modified first.
	posts, err := repo.List(PostFilter{}, 10, 0, false)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	assert.Equal(t, "Post D", posts[0].Title)
	assert.Equal(t, "Post A", posts[3].Title)

	// Ascending.
	posts, err = repo.List(PostFilter{}, 10, 0, true)
	require.NoError(t, err)
	assert.Equal(t, "Post A", posts[0].Title)

	// Pagination after sorting.
	posts, err = repo.List(PostFilter{}, 2, 1, false)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Post C", posts[0].Title)
	assert.Equal(t, "Post B", posts[1].Title)

	// Offset past the end yields an empty page.
	posts, err = repo.List(PostFilter{}, 2, 10, false)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepositoryListFiltered(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	p1 := testPost("Visa Renewal Steps", "u1")
	require.NoError(t, repo.Create(p1))
	p2 := testPost("Travel Tips", "u2")
	p2.Content = "Remember to check your VISA requirements."
	require.NoError(t, repo.Create(p2))
	p3 := testPost("Cooking Pasta", "u2")
	require.NoError(t, repo.Create(p3))

	posts, err := repo.List(PostFilter{UserID: "u1"}, 10, 0, false)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Visa Renewal Steps", posts[0].Title)

	posts, err = repo.List(PostFilter{SearchTerm: "visa"}, 10, 0, false)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// Filters compose conjunctively.
	posts, err = repo.List(PostFilter{SearchTerm: "visa", UserID: "u2"}, 10, 0, false)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Travel Tips", posts[0].Title)
}

func TestPostRepositoryCounts(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	now := time.Now()
	recent := testPost("Recent Post", "u1")
	require.NoError(t, repo.Create(recent))

	old := testPost("Old Post", "u1")
	old.CreatedAt = now.AddDate(0, -2, 0)
	old.UpdatedAt = old.CreatedAt
	require.NoError(t, repo.Create(old))

	total, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	count, err := repo.CountCreatedSince(now.AddDate(0, -1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
