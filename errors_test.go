package secadvisor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-secadvisor"
)

func TestInvalidArgumentError(t *testing.T) {
	err := &secadvisor.InvalidArgumentError{Param: "account_id"}
	assert.Equal(t, "secadvisor: account_id must be provided", err.Error())
	assert.ErrorIs(t, err, secadvisor.ErrInvalidArgument)
	assert.NotErrorIs(t, err, secadvisor.ErrNoCredentials)

	wrapped := fmt.Errorf("listing notes: %w", err)
	var argErr *secadvisor.InvalidArgumentError
	require.ErrorAs(t, wrapped, &argErr)
	assert.Equal(t, "account_id", argErr.Param)
	assert.ErrorIs(t, wrapped, secadvisor.ErrInvalidArgument)
}

func TestAPIErrorTypes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"AuthenticationError",
			&secadvisor.AuthenticationError{APIError: secadvisor.APIError{StatusCode: 401, Message: "invalid token"}},
			"secadvisor: authentication failed: invalid token",
		},
		{
			"NotFoundError",
			&secadvisor.NotFoundError{APIError: secadvisor.APIError{StatusCode: 404}, ResourceType: "note", ResourceID: "n1"},
			"secadvisor: note not found: n1",
		},
		{
			"ValidationError",
			&secadvisor.ValidationError{APIError: secadvisor.APIError{StatusCode: 400, Message: "bad request"}},
			"secadvisor: validation error: bad request",
		},
		{
			"ConflictError",
			&secadvisor.ConflictError{APIError: secadvisor.APIError{StatusCode: 409, Message: "exists"}},
			"secadvisor: conflict: exists",
		},
		{
			"RateLimitError",
			&secadvisor.RateLimitError{APIError: secadvisor.APIError{StatusCode: 429}},
			"secadvisor: rate limit exceeded",
		},
		{
			"ServerError",
			&secadvisor.ServerError{APIError: secadvisor.APIError{StatusCode: 503, Message: "unavailable"}},
			"secadvisor: server error 503: unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())

			var apiErr *secadvisor.APIError
			require.ErrorAs(t, tt.err, &apiErr, "should be detectable as APIError")
			assert.NotZero(t, apiErr.StatusCode)
		})
	}
}

func TestDecodeError(t *testing.T) {
	t.Run("unrecognized keys", func(t *testing.T) {
		err := &secadvisor.DecodeError{Model: "Note", Unrecognized: []string{"a", "b"}}
		assert.Equal(t, "secadvisor: decoding Note: unrecognized keys: a, b", err.Error())
	})

	t.Run("malformed value", func(t *testing.T) {
		cause := errors.New("bad number")
		err := &secadvisor.DecodeError{Model: "Kpi", Path: "kpi.value", Err: cause}
		assert.Equal(t, "secadvisor: decoding Kpi at kpi.value: bad number", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}
