// Package session carries the caller's credentials from the HTTP/CLI boundary down to the
// backend transport. Credentials are built once per request and travel in the request's
// context; nothing reads them from global state.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrMissingToken = errors.New("missing bearer token")

// Credentials identify the portal user on whose behalf backend calls are made.
type Credentials struct {
	Token  string
	UserID int64
}

func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.Token) != ""
}

// Fingerprint identifies the token without exposing it, for use in cache keys.
func (c Credentials) Fingerprint() string {
	sum := sha256.Sum256([]byte(c.Token))
	return hex.EncodeToString(sum[:])
}

type credentialsKey struct{}

func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

func FromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok
}

// ParseBearer extracts the token of an "Authorization: Bearer <token>" header value.
func ParseBearer(header string) (string, error) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
