package secadvisor

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-secadvisor/internal/api"
	"github.com/tphakala/go-secadvisor/internal/codec"
)

// Sentinel errors for common failure modes.
var (
	ErrNoCredentials   = errors.New("secadvisor: no credentials configured")
	ErrNoBaseURL       = errors.New("secadvisor: no base URL configured")
	ErrInvalidArgument = errors.New("secadvisor: invalid argument")
)

// InvalidArgumentError reports a required parameter that was not provided.
// No request is sent when it is returned.
type InvalidArgumentError struct {
	Param string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("secadvisor: %s must be provided", e.Param)
}

// Is matches ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Errors returned by the transport for non-2xx responses. They can be
// matched with errors.As; every type also matches *APIError.
type (
	APIError            = api.APIError
	AuthenticationError = api.AuthenticationError
	NotFoundError       = api.NotFoundError
	ValidationError     = api.ValidationError
	ConflictError       = api.ConflictError
	RateLimitError      = api.RateLimitError
	ServerError         = api.ServerError
)

// DecodeError reports a JSON object that does not match a model: a key
// outside the model's fields, a missing required field, or a malformed value.
type DecodeError = codec.DecodeError
