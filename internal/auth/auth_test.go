package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type failingSource struct{}

func (failingSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("iam unavailable")
}

func TestBearer(t *testing.T) {
	t.Run("sets authorization header", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		b := NewBearer("tok")
		require.NoError(t, b.Validate())
		require.NoError(t, b.Authenticate(req))
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	})

	t.Run("empty token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		err = NewBearer("").Authenticate(req)
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("token source failure", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		err = (&Bearer{Source: failingSource{}}).Authenticate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iam unavailable")
	})

	t.Run("nil source is invalid", func(t *testing.T) {
		assert.Error(t, (&Bearer{}).Validate())
	})
}

func TestBasic(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	require.NoError(t, err)

	b := &Basic{Username: "u", Password: "p"}
	require.NoError(t, b.Validate())
	require.NoError(t, b.Authenticate(req))

	user, pass, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "u", user)
	assert.Equal(t, "p", pass)

	assert.Error(t, (&Basic{Username: "u"}).Validate())
}

func TestNone(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	require.NoError(t, err)

	require.NoError(t, None{}.Validate())
	require.NoError(t, None{}.Authenticate(req))
	assert.Empty(t, req.Header.Get("Authorization"))
}
