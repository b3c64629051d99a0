// Package auth provides request authenticators for the Security Advisor API.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// ErrNoToken is returned when a token source yields an empty access token.
var ErrNoToken = errors.New("auth: token source returned no access token")

// Authenticator adds credentials to outgoing requests.
//
//go:generate mockgen -destination=../mocks/mock_authenticator.go -package=mocks github.com/tphakala/go-secadvisor/internal/auth Authenticator
type Authenticator interface {
	// Authenticate adds credentials to req.
	Authenticate(req *http.Request) error

	// Validate reports whether the authenticator is usable.
	Validate() error
}

// Bearer authenticates with an OAuth2 access token.
type Bearer struct {
	Source oauth2.TokenSource
}

// NewBearer returns a Bearer authenticator for a fixed access token.
func NewBearer(token string) *Bearer {
	return &Bearer{Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})}
}

// Authenticate sets the Authorization header from the current token.
func (b *Bearer) Authenticate(req *http.Request) error {
	tok, err := b.Source.Token()
	if err != nil {
		return fmt.Errorf("auth: fetching token: %w", err)
	}
	if tok.AccessToken == "" {
		return ErrNoToken
	}
	tok.SetAuthHeader(req)
	return nil
}

// Validate reports whether a token source is configured.
func (b *Bearer) Validate() error {
	if b == nil || b.Source == nil {
		return errors.New("auth: bearer authenticator has no token source")
	}
	return nil
}

// Basic authenticates with a username and password.
type Basic struct {
	Username string
	Password string
}

// Authenticate sets HTTP basic credentials.
func (b *Basic) Authenticate(req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

// Validate reports whether both username and password are set.
func (b *Basic) Validate() error {
	if b == nil || b.Username == "" || b.Password == "" {
		return errors.New("auth: basic authenticator needs username and password")
	}
	return nil
}

// None sends requests without credentials.
type None struct{}

// Authenticate does nothing.
func (None) Authenticate(*http.Request) error { return nil }

// Validate always succeeds.
func (None) Validate() error { return nil }
