package controllers

import (
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user profiles
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Get handles GET /api/user/{userId}
func (uc *UserController) Get(w http.ResponseWriter, r *http.Request) {
	user, err := uc.userService.GetUser(mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user.Public())
}

// Update handles PUT /api/user/update/{userId}
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, err)
		return
	}

	user, err := uc.userService.UpdateUser(auth.RequesterFrom(r.Context()), mux.Vars(r)["userId"], input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user.Public())
}

// Delete handles DELETE /api/user/delete/{userId}
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	confirmation, err := uc.userService.DeleteUser(auth.RequesterFrom(r.Context()), mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, confirmation)
}
