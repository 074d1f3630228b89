package repositories

import (
	"strings"

	"inkwell/app/models"
)

// PostFilter is a conjunction of optional predicates over posts. Zero-value
// fields contribute nothing; the zero filter matches every post.
type PostFilter struct {
	UserID     string
	Category   string
	Slug       string
	PostID     string
	SearchTerm string
}

// Matches reports whether p satisfies every provided predicate. The search
// term is a case-insensitive substring match over title or content; all other
// fields are exact matches.
func (f PostFilter) Matches(p *models.Post) bool {
	if f.UserID != "" && p.UserID != f.UserID {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Slug != "" && p.Slug != f.Slug {
		return false
	}
	if f.PostID != "" && p.ID != f.PostID {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Content), term) {
			return false
		}
	}
	return true
}
