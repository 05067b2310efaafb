package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/account"
)

// Mode is the sign-in/sign-up toggle on the login form. It is pure UI state,
// never persisted.
type Mode string

const (
	ModeSignIn Mode = "signin"
	ModeSignUp Mode = "signup"
)

// ParseMode maps a submitted mode string to a Mode; anything unrecognized
// falls back to sign-in, the form's initial state.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeSignUp)) {
		return ModeSignUp
	}
	return ModeSignIn
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Status is the outcome of one form submission.
type Status int

const (
	StatusEmptyField Status = iota
	StatusAlreadyExists
	StatusRegistered
	StatusInvalidCredentials
	StatusRemoteAuthFailed
	StatusAuthenticated
)

// Form messages, verbatim from the storefront frontend. The registered
// message renders through the same banner slot as the errors; it is a
// one-shot informational note, not a real failure.
const (
	msgEmptyField         = "Please enter username and password"
	msgAlreadyExists      = "Account already exists. Please sign in."
	msgRegistered         = "Sign-up successful. Please sign in."
	msgInvalidCredentials = "Invalid username or password"
)

// Result describes what the form should do next: the outcome, the banner
// message, the session token when authenticated, and the mode the form
// switches to (sign-up success flips back to sign-in).
type Result struct {
	Status   Status
	Message  string
	Token    string
	NextMode Mode
}

// RemoteError is a rejection from the remote auth collaborator. Its message
// is surfaced to the user verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// TokenIssuer is the remote auth collaborator: it either yields an opaque
// token or rejects with a message. The token's structure is never inspected.
type TokenIssuer interface {
	Issue(ctx context.Context) (string, error)
}

// Flow runs the login form's submission against the local account directory
// and the remote token issuer.
type Flow struct {
	accounts *account.Store
	issuer   TokenIssuer
}

func NewFlow(accounts *account.Store, issuer TokenIssuer) *Flow {
	return &Flow{accounts: accounts, issuer: issuer}
}

// Submit validates and executes one form submission. All credential and
// validation failures come back as a Result; the returned error is reserved
// for backing-store and transport faults.
func (f *Flow) Submit(ctx context.Context, mode Mode, creds Credentials) (Result, error) {
	if strings.TrimSpace(creds.Username) == "" || strings.TrimSpace(creds.Password) == "" {
		return Result{Status: StatusEmptyField, Message: msgEmptyField, NextMode: mode}, nil
	}

	if mode == ModeSignUp {
		return f.signUp(ctx, creds)
	}
	return f.signIn(ctx, creds)
}

func (f *Flow) signUp(ctx context.Context, creds Credentials) (Result, error) {
	err := f.accounts.Register(ctx, creds.Username, creds.Password)
	if errors.Is(err, account.ErrAlreadyExists) {
		return Result{Status: StatusAlreadyExists, Message: msgAlreadyExists, NextMode: ModeSignUp}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Status: StatusRegistered, Message: msgRegistered, NextMode: ModeSignIn}, nil
}

func (f *Flow) signIn(ctx context.Context, creds Credentials) (Result, error) {
	_, err := f.accounts.Authenticate(ctx, creds.Username, creds.Password)
	if errors.Is(err, account.ErrNoMatch) {
		return Result{Status: StatusInvalidCredentials, Message: msgInvalidCredentials, NextMode: ModeSignIn}, nil
	}
	if err != nil {
		return Result{}, err
	}

	token, err := f.issuer.Issue(ctx)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) {
			return Result{Status: StatusRemoteAuthFailed, Message: remote.Message, NextMode: ModeSignIn}, nil
		}
		return Result{}, err
	}

	return Result{Status: StatusAuthenticated, Token: token, NextMode: ModeSignIn}, nil
}
