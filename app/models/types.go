package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DefaultPostImage is used when a post is created without an image URL.
const DefaultPostImage = "https://www.hostinger.com/tutorials/wp-content/uploads/sites/2/2021/09/how-to-write-a-blog-post.png"

// DefaultCategory is assigned when a post is created without a category.
const DefaultCategory = "uncategorized"

// Post represents a published blog post.
type Post struct {
	ID          string     `json:"id" validate:"required"`
	UserID      string     `json:"userId" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Image       string     `json:"image"`
	Video       string     `json:"video,omitempty"`
	Category    string     `json:"category"`
	Slug        string     `json:"slug"`
	Views       int        `json:"views"`
	ViewHistory []PostView `json:"viewHistory,omitempty" validate:"-"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PostView records a single view of a post. The history is append-only.
type PostView struct {
	UserID   string    `json:"userId"`
	ViewedAt time.Time `json:"viewedAt"`
}

// User represents a registered account.
type User struct {
	ID             string    `json:"id" validate:"required"`
	Username       string    `json:"username" validate:"required,min=3,max=30"`
	Email          string    `json:"email" validate:"required,email"`
	PasswordHash   string    `json:"passwordHash,omitempty" validate:"required"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt" validate:"required"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Requester is the authenticated identity attached to a request.
// A nil *Requester means the request is unauthenticated.
type Requester struct {
	ID      string
	IsAdmin bool
}
