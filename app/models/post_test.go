package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World! 2024", "hello-world-2024"},
		{"already slug", "my-post", "my-post"},
		{"mixed case", "Visa Renewal Steps", "visa-renewal-steps"},
		{"multiple spaces keep hyphens", "a  b", "a--b"},
		{"only symbols", "!@#$%", ""},
		{"empty", "", ""},
		{"unicode dropped", "café au lait", "caf-au-lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Some Title With 42 Things!"
	first := Slugify(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify(title))
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		UserID:  "u1",
		Title:   "Test",
		Content: "Content",
		Slug:    "test",
	}
	post.BeforeCreate()

	assert.NotEmpty(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
	assert.Equal(t, DefaultPostImage, post.Image)
	assert.Equal(t, DefaultCategory, post.Category)
}

func TestPostBeforeCreateKeepsExplicitFields(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	post := &Post{
		ID:        "fixed",
		UserID:    "u1",
		Title:     "Test",
		Content:   "Content",
		Image:     "https://example.com/pic.png",
		Category:  "go",
		Slug:      "test",
		CreatedAt: created,
		UpdatedAt: created,
	}
	post.BeforeCreate()

	assert.Equal(t, "fixed", post.ID)
	assert.Equal(t, created, post.CreatedAt)
	assert.Equal(t, "https://example.com/pic.png", post.Image)
	assert.Equal(t, "go", post.Category)
}

func TestPostValidate(t *testing.T) {
	post := &Post{
		ID:        "p1",
		UserID:    "u1",
		Title:     "Test",
		Content:   "Content",
		Slug:      "test",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, post.Validate())

	post.Title = ""
	assert.Error(t, post.Validate())
}

func TestPostRecordView(t *testing.T) {
	post := &Post{}
	at := time.Now()

	post.RecordView("u1", at)
	post.RecordView("", at.Add(time.Second))

	assert.Equal(t, 2, post.Views)
	assert.Len(t, post.ViewHistory, 2)
	assert.Equal(t, "u1", post.ViewHistory[0].UserID)
	assert.Equal(t, "", post.ViewHistory[1].UserID)
}
