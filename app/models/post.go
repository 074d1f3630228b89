package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slugify derives the URL identifier for a post from its title: lower-case,
// spaces become hyphens, everything outside [a-z0-9-] is dropped. The result
// is deterministic and may be empty. Collisions are not resolved here; the
// store rejects them as uniqueness violations.
func Slugify(title string) string {
	lowered := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if p.Image == "" {
		p.Image = DefaultPostImage
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
}

// RecordView appends a view to the post's history and bumps the counter.
func (p *Post) RecordView(viewerID string, at time.Time) {
	p.Views++
	p.ViewHistory = append(p.ViewHistory, PostView{UserID: viewerID, ViewedAt: at})
}
