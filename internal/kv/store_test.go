package kv

import (
	"context"
	"testing"
)

func TestDecodeOrDefault(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	tests := map[string]struct {
		raw  string
		want int
	}{
		"missing blob":   {raw: "", want: 0},
		"malformed json": {raw: "{not json", want: 0},
		"wrong shape":    {raw: `{"id":1}`, want: 0},
		"null":           {raw: "null", want: 0},
		"valid sequence": {raw: `[{"id":1},{"id":2}]`, want: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := DecodeOrDefault(tc.raw, []item{})
			if len(got) != tc.want {
				t.Fatalf("expected %d items, got %+v", tc.want, got)
			}
		})
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	val, err := store.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty value for missing key, got %q", val)
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	val, err = store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != "v2" {
		t.Fatalf("expected v2, got %q", val)
	}
}

func TestNamespacedIsolation(t *testing.T) {
	ctx := context.Background()
	base := NewMemory()

	a := Namespaced(base, "sess-a")
	b := Namespaced(base, "sess-b")

	if err := a.Set(ctx, "cart", "a-items"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := b.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Fatalf("namespaces leaked: got %q", got)
	}

	got, err = a.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "a-items" {
		t.Fatalf("expected a-items, got %q", got)
	}
}

func TestNamespacedEmptyPrefixIsPassthrough(t *testing.T) {
	base := NewMemory()
	if Namespaced(base, "") != Store(base) {
		t.Fatalf("expected empty namespace to return the inner store")
	}
}
