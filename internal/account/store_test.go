package account

import (
	"context"
	"errors"
	"testing"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
)

func TestAccountsCorruptBlob(t *testing.T) {
	ctx := context.Background()
	blobs := kv.NewMemory()
	if err := blobs.Set(ctx, StorageKey, "][not json"); err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	accounts, err := NewStore(blobs).Accounts(ctx)
	if err != nil {
		t.Fatalf("corrupt blob should not error: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty directory, got %+v", accounts)
	}
}

func TestRegisterCaseInsensitiveCollision(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	if err := store.Register(ctx, "Alice", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := store.Register(ctx, "alice", "p2")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	accounts, err := store.Accounts(ctx)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("collision must not append, got %+v", accounts)
	}
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	if err := store.Register(ctx, "Alice", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := map[string]struct {
		username string
		want     bool
	}{
		"exact":          {username: "Alice", want: true},
		"different case": {username: "ALICE", want: true},
		"unknown":        {username: "bob", want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := store.Exists(ctx, tc.username)
			if err != nil {
				t.Fatalf("exists: %v", err)
			}
			if got != tc.want {
				t.Fatalf("exists(%q) = %v, want %v", tc.username, got, tc.want)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	if err := store.Register(ctx, "alice", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("username case-insensitive", func(t *testing.T) {
		acc, err := store.Authenticate(ctx, "Alice", "p1")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if acc.Username != "alice" {
			t.Fatalf("unexpected account %+v", acc)
		}
	})

	t.Run("password case-sensitive", func(t *testing.T) {
		_, err := store.Authenticate(ctx, "alice", "P1")
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := store.Authenticate(ctx, "mallory", "p1")
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
	})
}

func TestRegisterPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := kv.NewMemory()

	if err := NewStore(blobs).Register(ctx, "alice", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	acc, err := NewStore(blobs).Authenticate(ctx, "alice", "p1")
	if err != nil {
		t.Fatalf("authenticate after reload: %v", err)
	}
	if acc.Password != "p1" {
		t.Fatalf("unexpected account %+v", acc)
	}
}
