package services

import (
	"time"

	"inkwell/app/apperr"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// Defaults for list pagination.
const (
	DefaultListLimit = 9
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo, now: time.Now}
}

// CreatePostInput is the caller-supplied part of a new post.
type CreatePostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Video    string `json:"video"`
	Category string `json:"category"`
}

// UpdatePostInput is a partial patch; empty fields are left unchanged.
type UpdatePostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// ListPostsQuery bundles the filter, pagination and sort order of a list call.
type ListPostsQuery struct {
	Filter     repositories.PostFilter
	StartIndex int
	Limit      int
	Ascending  bool
}

// ListPostsResult is the page of posts plus the two store-wide counters.
// TotalPosts deliberately ignores the active filter.
type ListPostsResult struct {
	Posts          []*models.Post `json:"posts"`
	TotalPosts     int            `json:"totalPosts"`
	LastMonthPosts int            `json:"lastMonthPosts"`
}

// CreatePost validates the input, derives the slug from the title once, and
// persists a new post owned by the requester.
func (s *PostService) CreatePost(requester *models.Requester, input CreatePostInput) (*models.Post, error) {
	if requester == nil {
		return nil, apperr.Unauthorized("Unauthorized: Please log in")
	}
	if input.Title == "" || input.Content == "" {
		return nil, apperr.BadRequest("Title and content are required")
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	post := &models.Post{
		UserID:   requester.ID,
		Title:    input.Title,
		Content:  input.Content,
		Image:    input.Image,
		Video:    input.Video,
		Category: category,
		Slug:     models.Slugify(input.Title),
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the filtered, sorted page of posts together with the
// unfiltered total and the count of posts created within the last calendar
// month. No authorization is required.
func (s *PostService) ListPosts(query ListPostsQuery) (*ListPostsResult, error) {
	if query.StartIndex < 0 {
		query.StartIndex = 0
	}
	if query.Limit <= 0 {
		query.Limit = DefaultListLimit
	}

	posts, err := s.postRepo.List(query.Filter, query.Limit, query.StartIndex, query.Ascending)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	oneMonthAgo := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
	lastMonth, err := s.postRepo.CountCreatedSince(oneMonthAgo)
	if err != nil {
		return nil, err
	}

	return &ListPostsResult{
		Posts:          posts,
		TotalPosts:     total,
		LastMonthPosts: lastMonth,
	}, nil
}

// DeletePost removes a post permanently. Allowed for administrators and the
// post's owner.
func (s *PostService) DeletePost(requester *models.Requester, postID string) (string, error) {
	if requester == nil {
		return "", apperr.Unauthorized("Unauthorized: Please log in")
	}

	post, err := s.postRepo.GetByID(postID)
	if err == repositories.ErrNotFound {
		return "", apperr.NotFound("Post not found")
	}
	if err != nil {
		return "", err
	}

	if !requester.IsAdmin && requester.ID != post.UserID {
		return "", apperr.Forbidden("You are not allowed to delete this post")
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return "", err
	}
	return "The post has been deleted", nil
}

// UpdatePost applies a partial patch to a post. Only administrators updating
// under their own user id may do this; the rule is intentionally stricter
// than delete's owner-or-admin check. The slug is never recomputed, so title
// and slug can drift apart after an edit.
func (s *PostService) UpdatePost(requester *models.Requester, postID, pathUserID string, input UpdatePostInput) (*models.Post, error) {
	if requester == nil {
		return nil, apperr.Unauthorized("Unauthorized: Please log in")
	}
	if !requester.IsAdmin || requester.ID != pathUserID {
		return nil, apperr.Forbidden("You are not allowed to update this post")
	}

	post, err := s.postRepo.GetByID(postID)
	if err == repositories.ErrNotFound {
		return nil, apperr.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Category != "" {
		post.Category = input.Category
	}
	if input.Image != "" {
		post.Image = input.Image
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// RecordView bumps a post's view counter and appends to its view history.
// The viewer id may be empty for anonymous views.
func (s *PostService) RecordView(postID, viewerID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err == repositories.ErrNotFound {
		return nil, apperr.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}

	post.RecordView(viewerID, s.now())

	// The view is persisted through the same write path as an edit, so a
	// viewed post also bumps its UpdatedAt and moves up the recency sort.
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}
