package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"rentify-api/config/common"
	"rentify-api/config/logger"
)

// NewRedis builds the client for the notification store. The store is a
// secondary engine: if the ping fails the server still starts, the feed
// degrades to message-derived entries only.
func NewRedis(cfg *common.Config, log *logger.AppLogger) *redis.Client {
	addr, password, db := cfg.GetRedisConfig()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Http.Warning.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, notification store degraded")
	} else {
		log.Http.Info.Info().Str("addr", addr).Msg("Connection opened to redis")
	}

	return client
}
