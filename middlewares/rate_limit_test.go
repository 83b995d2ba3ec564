package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitKeyBuckets(t *testing.T) {
	window := 15 * time.Minute
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	k1 := RateLimitKey("203.0.113.7", base, window)
	k2 := RateLimitKey("203.0.113.7", base.Add(time.Minute), window)
	require.Equal(t, k1, k2, "requests inside one window share a key")

	k3 := RateLimitKey("203.0.113.7", base.Add(window), window)
	require.NotEqual(t, k1, k3, "the next window gets a fresh counter")

	k4 := RateLimitKey("198.51.100.9", base, window)
	require.NotEqual(t, k1, k4, "clients are counted separately")
}

func TestRateLimitNilClientPassesThrough(t *testing.T) {
	handler := RateLimit(nil, 100, 15*time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

	for range 5 {
		r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}
