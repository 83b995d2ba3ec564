package database

import (
	"api/utils"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the client used by the rate limiter. Redis being
// unreachable is not fatal: the limiter fails open and only logs.
func ConnectRedis(cfg *utils.Config) *redis.Client {
	if cfg.RedisURI == "" {
		utils.Logger.Warn("REDIS_URI not set, rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURI)
	if err != nil {
		utils.Logger.WithError(err).Warn("Invalid REDIS_URI, rate limiting disabled")
		return nil
	}

	return redis.NewClient(opts)
}
