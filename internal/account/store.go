package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
)

// StorageKey is the blob the registered accounts persist under.
const StorageKey = "nxt_trendz_users"

var (
	// ErrAlreadyExists is returned by Register on a case-insensitive
	// username collision.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNoMatch is returned by Authenticate when no stored account matches.
	ErrNoMatch = errors.New("no matching account")
)

// Account is a locally registered username/password pair. It simulates
// sign-up without a real backend: usernames are unique case-insensitively,
// passwords match case-sensitively. That asymmetry is deliberate and governs
// both Register and Authenticate.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store owns the local account directory, persisted as one JSON blob.
type Store struct {
	blobs kv.Store
}

func NewStore(blobs kv.Store) *Store {
	return &Store{blobs: blobs}
}

// Accounts returns all registered accounts in insertion order. Missing or
// corrupt state counts as an empty directory.
func (s *Store) Accounts(ctx context.Context) ([]Account, error) {
	raw, err := s.blobs.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load accounts blob: %w", err)
	}
	return kv.DecodeOrDefault(raw, []Account{}), nil
}

// Exists reports whether a username is already registered, compared
// case-insensitively.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return false, err
	}
	for _, acc := range accounts {
		if strings.EqualFold(acc.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

// Register appends a new account and persists the directory. It fails with
// ErrAlreadyExists when the username is taken under case-insensitive compare.
func (s *Store) Register(ctx context.Context, username, password string) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	for _, acc := range accounts {
		if strings.EqualFold(acc.Username, username) {
			return ErrAlreadyExists
		}
	}

	accounts = append(accounts, Account{Username: username, Password: password})
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts blob: %w", err)
	}
	if err := s.blobs.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("save accounts blob: %w", err)
	}
	return nil
}

// Authenticate returns the first account whose username matches
// case-insensitively and whose password matches exactly, or ErrNoMatch.
func (s *Store) Authenticate(ctx context.Context, username, password string) (Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return Account{}, err
	}
	for _, acc := range accounts {
		if strings.EqualFold(acc.Username, username) && acc.Password == password {
			return acc, nil
		}
	}
	return Account{}, ErrNoMatch
}
