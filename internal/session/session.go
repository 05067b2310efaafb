package session

import (
	"net/http"
	"time"
)

// CookieName matches the cookie the storefront frontend reads.
const CookieName = "jwt_token"

// TTL is the marker lifetime: 30 days from creation.
const TTL = 30 * 24 * time.Hour

// Cookie builds the session marker cookie: opaque token, whole-origin path,
// 30-day expiry.
func Cookie(token string, now time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(TTL),
		HttpOnly: true,
	}
}

// Write sets the session marker on the response.
func Write(w http.ResponseWriter, token string, now time.Time) {
	http.SetCookie(w, Cookie(token, now))
}

// Token reads the session marker from the request. The token is opaque; its
// structure is never validated here.
func Token(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
