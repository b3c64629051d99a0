// Package api provides low-level HTTP transport for Security Advisor API calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tphakala/go-secadvisor/internal/auth"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Transport handles HTTP communication with one Security Advisor service.
type Transport struct {
	BaseURL       *url.URL
	HTTPClient    *http.Client
	Authenticator auth.Authenticator
	UserAgent     string
	Logger        *slog.Logger

	// Limiter, when set, throttles outgoing requests.
	Limiter *rate.Limiter
}

// NewTransport creates a Transport with the given configuration.
func NewTransport(baseURL string, authenticator auth.Authenticator, httpClient *http.Client) (*Transport, error) {
	if authenticator == nil {
		return nil, errors.New("authenticator must be provided")
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	return &Transport{
		BaseURL:       u,
		HTTPClient:    httpClient,
		Authenticator: authenticator,
		UserAgent:     "go-secadvisor/1.0",
		Logger:        slog.New(slog.DiscardHandler),
	}, nil
}

// Resource names the entity a request addresses, used in NotFoundError.
type Resource struct {
	Type string
	ID   string
}

// Request represents an API request.
type Request struct {
	Method string

	// Path is a template such as "/v1/{account_id}/providers"; each
	// placeholder is replaced by the escaped value from PathParams.
	Path       string
	PathParams map[string]string

	Query   url.Values
	Headers http.Header

	// Body is JSON-encoded, except string and []byte which are sent as is.
	Body any

	Resource Resource
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do executes an API request and returns the raw response. A status code of
// 400 or above is returned as one of the APIError types.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		t.Logger.WarnContext(ctx, "api request failed",
			"method", req.Method, "path", req.Path, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(body)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	t.Logger.DebugContext(ctx, "api request",
		"method", req.Method,
		"path", req.Path,
		"status", httpResp.StatusCode,
		"duration", time.Since(start),
		"request_id", httpReq.Header.Get("X-Request-ID"))

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, ParseError(resp.StatusCode, resp.Body, resp.Headers, req.Resource)
	}

	return resp, nil
}

// DoJSON executes a request and unmarshals the JSON response into result.
func (t *Transport) DoJSON(ctx context.Context, req *Request, result any) (*Response, error) {
	resp, err := t.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if result != nil && len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return nil, fmt.Errorf("unmarshaling response: %w", err)
		}
	}

	return resp, nil
}

func (t *Transport) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	path, err := ExpandPath(req.Path, req.PathParams)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(t.BaseURL.String() + path)
	if err != nil {
		return nil, fmt.Errorf("building request URL: %w", err)
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var bodyReader io.Reader
	switch body := req.Body.(type) {
	case nil:
	case []byte:
		bodyReader = bytes.NewReader(body)
	case string:
		bodyReader = strings.NewReader(body)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Set default headers
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.UserAgent)

	// Apply authentication
	if err := t.Authenticator.Authenticate(httpReq); err != nil {
		return nil, err
	}

	// Apply operation and caller headers
	maps.Copy(httpReq.Header, req.Headers)

	return httpReq, nil
}
