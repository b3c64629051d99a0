package secadvisor

import (
	"cmp"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tphakala/go-secadvisor/internal/api"
	"github.com/tphakala/go-secadvisor/internal/auth"
	"github.com/tphakala/go-secadvisor/internal/sdkheaders"
)

// Default configuration values.
const (
	defaultTimeout = 30 * time.Second

	// DefaultBaseURL is the host of the us-south region.
	DefaultBaseURL = "https://us-south.secadvisor.cloud.ibm.com"
)

// Client is the Security Advisor API client. It holds read-only
// configuration and is safe for concurrent use.
type Client struct {
	// Findings provides access to notes, occurrences, providers and graph queries.
	Findings FindingsService

	// Notifications provides access to notification channels.
	Notifications NotificationService

	baseURL string
}

// NewClient creates a new Security Advisor client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := strings.TrimSuffix(cfg.baseURL, "/")
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}

	authenticator := cfg.authenticator
	switch {
	case authenticator != nil:
		if err := authenticator.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoCredentials, err)
		}
	case cfg.noAuth:
		authenticator = auth.None{}
	default:
		return nil, ErrNoCredentials
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	findings, err := cfg.newTransport(cmp.Or(cfg.findingsURL, baseURL+"/findings"), authenticator, httpClient)
	if err != nil {
		return nil, err
	}
	notifications, err := cfg.newTransport(cmp.Or(cfg.notificationsURL, baseURL+"/notifications"), authenticator, httpClient)
	if err != nil {
		return nil, err
	}

	return &Client{
		Findings:      newFindingsService(findings),
		Notifications: newNotificationService(notifications),
		baseURL:       baseURL,
	}, nil
}

func (cfg *clientConfig) newTransport(baseURL string, authenticator auth.Authenticator, httpClient *http.Client) (*api.Transport, error) {
	transport, err := api.NewTransport(baseURL, authenticator, httpClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoBaseURL, err)
	}

	transport.UserAgent = cmp.Or(cfg.userAgent, sdkheaders.UserAgent())
	transport.Limiter = cfg.limiter
	if cfg.logger != nil {
		transport.Logger = cfg.logger
	}

	return transport, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
