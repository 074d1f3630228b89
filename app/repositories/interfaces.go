package repositories

import (
	"time"

	"inkwell/app/models"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(filter PostFilter, limit, offset int, ascending bool) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	CountAll() (int, error)
	CountCreatedSince(since time.Time) (int, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
