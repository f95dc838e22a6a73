package interfaces

import "context"

// IFlavorRecommender abstracts the AI flavour suggestion provider.
//
// Recommend always returns a non-empty display string: implementations must
// swallow every failure (missing credentials, network, quota) and fall back
// to a static suggestion instead of returning an error.

type IFlavorRecommender interface {
	Recommend(ctx context.Context, mood, weather string) string
}
