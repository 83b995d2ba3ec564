package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"api/utils"

	"github.com/redis/go-redis/v9"
)

// RateLimitKey buckets a client address into the current fixed window.
func RateLimitKey(ip string, now time.Time, window time.Duration) string {
	bucket := now.Unix() / int64(window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", ip, bucket)
}

// RateLimit enforces an approximate fixed-window ceiling per client IP,
// backed by Redis counters. When Redis is absent or errors, requests pass
// through so an outage of the limiter never takes down the API.
func RateLimit(rdb *redis.Client, max int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := RateLimitKey(utils.ClientIP(r), time.Now(), window)

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				utils.Logger.WithError(err).Warn("Rate limit check failed, allowing request")
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rdb.Expire(r.Context(), key, window).Err(); err != nil {
					utils.Logger.WithError(err).Warnf("Failed to set expiry on rate limit key %s", key)
				}
			}

			if count > max {
				utils.SendResponse(w, http.StatusTooManyRequests,
					"Too many requests from this IP, please try again later.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
