package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis creates the Redis client used for the cross-replica change
// feed. Returns nil when REDIS_ADDR is unset: a single replica runs fine
// without a feed.
func ConnectRedis(addr string, log *logrus.Logger) *redis.Client {
	if addr == "" {
		log.Infof("[shop][database] REDIS_ADDR not set, change feed disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("[shop][database] redis ping failed addr=%s err=%v", addr, err)
	}
	return client
}
