package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/auth"
)

// AuthClient talks to the remote auth service. The storefront signs users in
// against its local directory and then exchanges a fixed service-account
// credential for the session token, so the client carries that credential
// rather than the submitted one.
type AuthClient struct {
	c        *Client
	username string
	password string
}

func NewAuthClient(c *Client, username, password string) *AuthClient {
	return &AuthClient{c: c, username: username, password: password}
}

// Issue requests a token. A rejection comes back as auth.RemoteError with the
// service's message untouched; anything else is a transport failure.
func (a *AuthClient) Issue(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": a.username,
		"password": a.password,
	})
	if err != nil {
		return "", fmt.Errorf("encode login payload: %w", err)
	}

	resp, err := a.c.Do(ctx, http.MethodPost, "/login", "", bytes.NewReader(payload), nil)
	if err != nil {
		return "", fmt.Errorf("auth-service request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		JWTToken string `json:"jwt_token"`
		ErrorMsg string `json:"error_msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode auth-service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &auth.RemoteError{Message: body.ErrorMsg}
	}
	return body.JWTToken, nil
}
