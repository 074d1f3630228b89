package controllers

import (
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/middleware"
	"inkwell/app/services"
)

// AuthController handles registration and session endpoints.
type AuthController struct {
	userService *services.UserService
	tokens      *auth.TokenManager
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, tokens *auth.TokenManager) *AuthController {
	return &AuthController{userService: userService, tokens: tokens}
}

// SignUp handles POST /api/auth/signup
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var input services.SignUpInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, err)
		return
	}

	user, err := ac.userService.SignUp(input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user.Public())
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles POST /api/auth/signin. On success the token is both set as
// an http-only cookie for browser clients and returned in the body for API
// clients.
func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := ac.userService.SignIn(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := ac.tokens.Sign(user)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user.Public(),
		"token": token,
	})
}

// SignOut handles POST /api/auth/signout
func (ac *AuthController) SignOut(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, "User has been signed out")
}
