package middlewares

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"api/schemas"
	"api/utils"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const AdminContextKey = contextKey("admin")

// AdminClaims is the identity embedded in every issued token.
type AdminClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a time-limited HS256 token for a logged-in admin.
func GenerateToken(secret []byte, admin *schemas.Admin, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the embedded claims.
func ParseToken(secret []byte, tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// Auth rejects requests without a valid bearer token. The websocket feed
// cannot set headers, so a token query parameter is accepted as well.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				utils.SendResponse(w, http.StatusUnauthorized, "No authentication token provided", nil)
				return
			}

			claims, err := ParseToken(secret, tokenStr)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					utils.SendResponse(w, http.StatusUnauthorized, "Token has expired", nil)
					return
				}
				utils.SendResponse(w, http.StatusUnauthorized, "Invalid authentication token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize allows only the listed roles. It must be wrapped inside Auth.
func Authorize(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := AdminFromContext(r.Context())
			if !ok {
				utils.SendResponse(w, http.StatusUnauthorized, "Not authenticated", nil)
				return
			}

			if !slices.Contains(roles, claims.Role) {
				utils.SendResponse(w, http.StatusForbidden, "Not authorized to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminFromContext(ctx context.Context) (*AdminClaims, bool) {
	claims, ok := ctx.Value(AdminContextKey).(*AdminClaims)
	return claims, ok
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
