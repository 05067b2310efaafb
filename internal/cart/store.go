package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
)

// Store owns the cart line-item collection. The whole collection is persisted
// as one JSON blob and rewritten on every mutation; expected size is tens of
// items, so read-modify-write on the full sequence is fine.
type Store struct {
	blobs kv.Store
}

func NewStore(blobs kv.Store) *Store {
	return &Store{blobs: blobs}
}

// Items returns the persisted cart in insertion order. A missing or corrupt
// blob counts as an empty cart, never an error; only the backing store's own
// failures surface.
func (s *Store) Items(ctx context.Context) ([]LineItem, error) {
	raw, err := s.blobs.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cart blob: %w", err)
	}
	return kv.DecodeOrDefault(raw, []LineItem{}), nil
}

// AddItem merges candidate into the cart by product identity. An existing
// line-item with the same id keeps all its fields and gains the candidate's
// quantity; otherwise the candidate is appended. The updated sequence is
// persisted and returned.
func (s *Store) AddItem(ctx context.Context, candidate LineItem) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ID == candidate.ID {
			items[i].Quantity += candidate.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, candidate)
	}

	if err := s.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart blob: %w", err)
	}
	if err := s.blobs.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("save cart blob: %w", err)
	}
	return nil
}

// Total is the order total over items: sum of price * quantity.
func Total(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
