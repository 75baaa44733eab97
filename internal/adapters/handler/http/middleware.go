package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
)

const accessTokenCookie = "access_token"

// Authenticator reads an HS256 token from the access_token cookie or a Bearer
// header. Requests without a valid token pass through anonymously.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" || len(a.secret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		email, name, ok := a.parse(token)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, email)
		ctx = context.WithValue(ctx, NameKey, name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) parse(tokenString string) (email, name string, ok bool) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", "", false
	}

	email, _ = claims["email"].(string)
	if email == "" {
		return "", "", false
	}
	name, _ = claims["name"].(string)
	return email, name, true
}

// RequireAuth rejects requests that Authenticate left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if emailFrom(r.Context()) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func emailFrom(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

func nameFrom(ctx context.Context) string {
	name, _ := ctx.Value(NameKey).(string)
	return name
}
