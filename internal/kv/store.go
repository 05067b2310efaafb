package kv

import (
	"context"
	"encoding/json"
)

// Store is the persistence port for origin-scoped string blobs, the server-side
// counterpart of the browser's local storage. A missing key is not an error:
// Get returns ("", nil).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// DecodeOrDefault unmarshals raw as JSON into T. A blank, malformed, or
// wrong-shaped blob yields def instead of an error; corrupt local state always
// degrades to the default rather than blocking the caller.
func DecodeOrDefault[T any](raw string, def T) T {
	if raw == "" {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Namespaced wraps a Store so every key is prefixed with ns. Callers keep the
// canonical key names while deployments scope blobs per user or session.
func Namespaced(s Store, ns string) Store {
	if ns == "" {
		return s
	}
	return &namespaced{inner: s, prefix: ns + ":"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}
