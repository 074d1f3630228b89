package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"inkwell/app/auth"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create handles POST /api/post/create
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePostInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, err)
		return
	}

	post, err := pc.postService.CreatePost(auth.RequesterFrom(r.Context()), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// GetPosts handles GET /api/post/getPosts. The endpoint is public.
func (pc *PostController) GetPosts(w http.ResponseWriter, r *http.Request) {
	result, err := pc.postService.ListPosts(listQueryFromValues(r.URL.Query()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/post/deletepost/{postId}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	confirmation, err := pc.postService.DeletePost(auth.RequesterFrom(r.Context()), postID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, confirmation)
}

// Update handles PUT /api/post/updatepost/{postId}/{userId}
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input services.UpdatePostInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, err)
		return
	}

	post, err := pc.postService.UpdatePost(auth.RequesterFrom(r.Context()), vars["postId"], vars["userId"], input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// View handles POST /api/post/view/{postId}. The viewer identity is taken
// from the auth context when present; anonymous views are recorded with an
// empty viewer id.
func (pc *PostController) View(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	viewerID := ""
	if requester := auth.RequesterFrom(r.Context()); requester != nil {
		viewerID = requester.ID
	}

	post, err := pc.postService.RecordView(postID, viewerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// listQueryFromValues maps the query string of a list request onto the
// service query: every provided filter field becomes a predicate, absent
// fields contribute nothing.
func listQueryFromValues(values url.Values) services.ListPostsQuery {
	query := services.ListPostsQuery{
		Filter: repositories.PostFilter{
			UserID:     values.Get("userId"),
			Category:   values.Get("category"),
			Slug:       values.Get("slug"),
			PostID:     values.Get("postId"),
			SearchTerm: values.Get("searchTerm"),
		},
		Limit:     services.DefaultListLimit,
		Ascending: values.Get("order") == "asc",
	}
	if v, err := strconv.Atoi(values.Get("startIndex")); err == nil && v > 0 {
		query.StartIndex = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		query.Limit = v
	}
	return query
}
