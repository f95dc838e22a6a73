package interfaces

import "context"

// IStateStore abstracts durable key-value persistence for the shop records.
//
// Values are opaque JSON documents; the engine owns encoding. Load returns
// found=false when the key has never been written. The store is a
// pass-through durability layer, never an independent owner of state.

type IStateStore interface {
	Load(ctx context.Context, key string) (raw []byte, found bool, err error)
	Save(ctx context.Context, key string, raw []byte) error
}
