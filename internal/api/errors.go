package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// APIError represents a general Security Advisor API error.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	RequestID  string `json:"requestId,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("secadvisor: API error %d: %s (request_id=%s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("secadvisor: API error %d: %s", e.StatusCode, e.Message)
}

// As lets errors.As reach the embedded APIError of every typed error below.
func (e *APIError) As(target any) bool {
	t, ok := target.(**APIError)
	if ok {
		*t = e
	}
	return ok
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("secadvisor: authentication failed: %s", e.Message)
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("secadvisor: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("secadvisor: resource not found: %s", e.Message)
}

// ValidationError indicates the server rejected the request data (400).
type ValidationError struct {
	APIError
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("secadvisor: validation error: %s (fields: %v)", e.Message, e.Fields)
	}
	return fmt.Sprintf("secadvisor: validation error: %s", e.Message)
}

// ConflictError indicates the resource already exists (409).
type ConflictError struct {
	APIError
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("secadvisor: conflict: %s", e.Message)
}

// RateLimitError indicates the API rate limit was exceeded (429).
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("secadvisor: rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "secadvisor: rate limit exceeded"
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("secadvisor: server error %d: %s", e.StatusCode, e.Message)
}

// errorBody covers the error shapes the service returns: a flat message, an
// "error" string, or an "errors" array with code/message pairs.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Trace   string            `json:"trace"`
	Fields  map[string]string `json:"fields"`
	Errors  []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ParseError converts an HTTP error response into the appropriate error type.
func ParseError(statusCode int, body []byte, headers http.Header, res Resource) error {
	base := APIError{
		StatusCode: statusCode,
		RequestID:  headers.Get("X-Request-ID"),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Fallback to raw body if not valid JSON
		base.Message = string(body)
	} else {
		base.Code = parsed.Code
		base.Trace = parsed.Trace
		switch {
		case parsed.Message != "":
			base.Message = parsed.Message
		case parsed.Error != "":
			base.Message = parsed.Error
		case len(parsed.Errors) > 0:
			base.Message = parsed.Errors[0].Message
			if base.Code == "" {
				base.Code = parsed.Errors[0].Code
			}
		}
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{
			APIError:     base,
			ResourceType: res.Type,
			ResourceID:   res.ID,
		}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base, Fields: parsed.Fields}
	case statusCode == http.StatusConflict:
		return &ConflictError{APIError: base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			APIError:   base,
			RetryAfter: parseRetryAfter(headers.Get("Retry-After")),
		}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// parseRetryAfter parses the Retry-After header value.
// It handles both seconds (integer) and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	// Try parsing as seconds first
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 1123)
	if t, err := time.Parse(time.RFC1123, value); err == nil {
		duration := time.Until(t)
		if duration > 0 {
			return duration
		}
	}

	return 0
}
