// Package auth issues and verifies the signed tokens that identify
// requesters, and carries the verified identity through request contexts.
package auth

import (
	"context"
	"errors"
	"time"

	"inkwell/app/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and parses HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token for the given user.
func (tm *TokenManager) Sign(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(tm.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse verifies a token and returns the requester it identifies.
func (tm *TokenManager) Parse(tokenString string) (*models.Requester, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, ok := claims["sub"].(string)
	if !ok || id == "" {
		return nil, ErrInvalidToken
	}
	isAdmin, _ := claims["isAdmin"].(bool)

	return &models.Requester{ID: id, IsAdmin: isAdmin}, nil
}

type contextKey struct{}

// WithRequester returns a context carrying the authenticated identity.
func WithRequester(ctx context.Context, requester *models.Requester) context.Context {
	return context.WithValue(ctx, contextKey{}, requester)
}

// RequesterFrom extracts the authenticated identity from ctx. It returns nil
// for unauthenticated requests.
func RequesterFrom(ctx context.Context) *models.Requester {
	requester, _ := ctx.Value(contextKey{}).(*models.Requester)
	return requester
}
