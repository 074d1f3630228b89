package middleware

import (
	"net/http"
	"strings"
	"time"

	"inkwell/app/auth"

	"github.com/rs/zerolog/log"
)

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("recovered")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// AccessTokenCookie is where browser clients carry the session token.
const AccessTokenCookie = "access_token"

// Authenticate resolves the requester identity from a Bearer header or the
// access_token cookie and stores it in the request context. Requests without
// a valid token pass through unauthenticated; handlers decide whether that
// is an error.
func Authenticate(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
					tokenString = cookie.Value
				}
			}
			if tokenString != "" {
				if requester, err := tm.Parse(tokenString); err == nil {
					r = r.WithContext(auth.WithRequester(r.Context(), requester))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
