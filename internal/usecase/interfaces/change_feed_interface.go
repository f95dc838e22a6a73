package interfaces

import "context"

// IChangeFeed broadcasts "key changed" events between replicas sharing the
// same state store.
//
// Publish announces that this replica just saved key. Subscribe registers a
// handler for keys changed by OTHER replicas; an implementation must
// suppress deliveries originating from its own Publish calls, so a replica
// never rehydrates in response to itself.

type IChangeFeed interface {
	Publish(ctx context.Context, key string) error
	Subscribe(ctx context.Context, handler func(key string))
}
