package secadvisor

import (
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/tphakala/go-secadvisor/internal/auth"
	"github.com/tphakala/go-secadvisor/internal/sdkheaders"
)

// Authenticator adds credentials to outgoing requests. Validate is called
// once by NewClient.
type Authenticator = auth.Authenticator

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL          string
	findingsURL      string
	notificationsURL string
	authenticator    auth.Authenticator
	noAuth           bool
	httpClient       *http.Client
	timeout          time.Duration
	userAgent        string
	logger           *slog.Logger
	limiter          *rate.Limiter
}

// WithBaseURL sets the service host, e.g. "https://us-south.secadvisor.cloud.ibm.com".
// The findings and notifications services are reached under /findings and
// /notifications unless overridden.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithRegion sets the base URL for a Security Advisor region such as "us-south" or "eu-gb".
func WithRegion(region string) ClientOption {
	return WithBaseURL(fmt.Sprintf("https://%s.secadvisor.cloud.ibm.com", region))
}

// WithFindingsURL sets the full base URL of the findings service.
func WithFindingsURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.findingsURL = url
	}
}

// WithNotificationsURL sets the full base URL of the notifications service.
func WithNotificationsURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.notificationsURL = url
	}
}

// WithAuthenticator sets a custom request authenticator.
func WithAuthenticator(a Authenticator) ClientOption {
	return func(c *clientConfig) {
		c.authenticator = a
	}
}

// WithBearerToken authenticates with a fixed IAM access token.
func WithBearerToken(token string) ClientOption {
	return func(c *clientConfig) {
		if token == "" {
			c.authenticator = nil
			return
		}
		c.authenticator = auth.NewBearer(token)
	}
}

// WithTokenSource authenticates with tokens from ts, which may refresh them.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(c *clientConfig) {
		c.authenticator = &auth.Bearer{Source: ts}
	}
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) ClientOption {
	return func(c *clientConfig) {
		c.authenticator = &auth.Basic{Username: username, Password: password}
	}
}

// WithNoAuth sends requests without credentials, for local or proxied endpoints.
func WithNoAuth() ClientOption {
	return func(c *clientConfig) {
		c.noAuth = true
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger for request tracing. Requests are logged at
// debug level and transport failures at warn level.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimit limits outgoing requests to perSecond with the given burst,
// shared by both services.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// headersFor returns the identification headers for an operation with the
// caller's headers applied on top.
func (r *requestConfig) headersFor(service, operationID string) http.Header {
	h := sdkheaders.Build(sdkheaders.Operation{
		Service: service,
		Version: "V1",
		ID:      operationID,
	})
	maps.Copy(h, r.headers)
	return h
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithRequestID sets the X-Request-ID header for tracing.
func WithRequestID(id string) RequestOption {
	return WithHeader(sdkheaders.HeaderRequestID, id)
}
