// internal/app/system/auth/auth.go

// Package auth verifies the bearer credential on admin API requests and
// exposes the caller's identity through the request context. Token
// issuance lives in the external auth service; this package only checks
// signatures and roles.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
)

// SessionUser is the identity extracted from a verified token and cached
// in the request context.
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the user carries an admin-grade role.
func (u *SessionUser) IsAdmin() bool {
	return u.Role == "admin" || u.Role == "superadmin"
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the verified caller, if any.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context, bypassing token
// verification. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// Verifier checks bearer tokens against a shared HMAC secret.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier for the configured signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

type tokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Parse verifies a raw token string and returns the identity it carries.
func (v *Verifier) Parse(raw string) (*SessionUser, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return &SessionUser{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// RequireAuth rejects requests without a valid bearer token (401) and
// loads the caller into the request context otherwise. A user already in
// context (placed by WithTestUser) is accepted as-is.
func (v *Verifier) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		raw := bearerToken(r)
		if raw == "" {
			httpapi.Unauthorized(w, "No token, authorization denied")
			return
		}

		u, err := v.Parse(raw)
		if err != nil {
			httpapi.Unauthorized(w, "Token is not valid")
			return
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireAdmin rejects authenticated callers without an admin role (403).
// Mount after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			httpapi.Unauthorized(w, "No token, authorization denied")
			return
		}
		if !u.IsAdmin() {
			httpapi.Forbidden(w, "Access denied. Admin privileges required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
