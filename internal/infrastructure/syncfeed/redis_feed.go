package syncfeed

import (
	"context"
	"strings"

	"kampung_chill/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultChannel = "kampung-chill-sync"

// RedisChangeFeed broadcasts record-key changes between replicas over a
// redis pub/sub channel, the service-side equivalent of the browser
// "storage" event the storefront used to rely on.
//
// Each feed instance carries a random origin id; messages are sent as
// "origin|key" and deliveries whose origin matches our own are dropped, so
// a replica never reacts to its own writes.

type RedisChangeFeed struct {
	client  *redis.Client
	channel string
	origin  string
	log     *logrus.Logger
}

var _ interfaces.IChangeFeed = (*RedisChangeFeed)(nil)

func NewRedisChangeFeed(client *redis.Client, channel string, log *logrus.Logger) *RedisChangeFeed {
	if channel == "" {
		channel = defaultChannel
	}
	return &RedisChangeFeed{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		log:     log,
	}
}

func (f *RedisChangeFeed) Publish(ctx context.Context, key string) error {
	return f.client.Publish(ctx, f.channel, f.origin+"|"+key).Err()
}

// Subscribe consumes the channel until ctx is cancelled. Malformed and
// same-origin messages are dropped.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, handler func(key string)) {
	sub := f.client.Subscribe(ctx, f.channel)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				origin, key, found := strings.Cut(msg.Payload, "|")
				if !found {
					f.log.Warnf("[shop][syncfeed] dropping malformed message %q", msg.Payload)
					continue
				}
				if origin == f.origin {
					continue
				}
				handler(key)
			}
		}
	}()
}
