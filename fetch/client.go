// Package fetch retrieves x402 payment configurations over HTTP so
// they can be validated without copying documents around by hand. A
// 402 response is as good as a 200 here: its JSON body is the payment
// requirements document itself.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rawgroundbeef/x402check"
	"github.com/rawgroundbeef/x402check/retry"
)

const (
	// DefaultMaxBodySize caps how many bytes of a remote document are
	// read.
	DefaultMaxBodySize int64 = 1 << 20

	// DefaultTimeout bounds a single fetch attempt end to end.
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrInvalidURL indicates the URL failed syntax checks before any
	// request was made.
	ErrInvalidURL = errors.New("invalid url")

	// ErrRequestFailed indicates the request never produced a usable
	// response.
	ErrRequestFailed = errors.New("request failed")

	// ErrBodyTooLarge indicates the response exceeded the configured
	// size cap.
	ErrBodyTooLarge = errors.New("response body too large")
)

var urlCheck *validator.Validate

func init() {
	urlCheck = validator.New()
}

// StatusError reports a response status the fetcher cannot treat as a
// configuration document.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Client fetches payment configuration documents.
type Client struct {
	httpClient *http.Client
	retryCfg   retry.Config
	maxBody    int64
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client) error

// NewClient creates a fetch client. Defaults: a 15 second timeout,
// three attempts with backoff, and a 1 MiB body cap.
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		retryCfg:   retry.DefaultConfig,
		maxBody:    DefaultMaxBodySize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return errors.New("http client must not be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout bounds each fetch attempt. It applies to the client in
// place at the time the option runs.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithRetryConfig replaces the retry policy.
func WithRetryConfig(cfg retry.Config) ClientOption {
	return func(c *Client) error {
		if cfg.MaxAttempts < 1 {
			return errors.New("retry needs at least one attempt")
		}
		c.retryCfg = cfg
		return nil
	}
}

// WithMaxBodySize caps the accepted response size in bytes.
func WithMaxBodySize(n int64) ClientOption {
	return func(c *Client) error {
		if n <= 0 {
			return errors.New("max body size must be positive")
		}
		c.maxBody = n
		return nil
	}
}

// WithLogger routes the client's request logs to logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// Fetch retrieves the configuration document at rawURL. Responses with
// status 200 or 402 carry the document; 408, 429 and 5xx are retried
// under the client's retry policy, everything else fails immediately.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := urlCheck.Var(rawURL, "required,url"); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	c.logger.DebugContext(ctx, "fetching configuration", "url", rawURL)

	body, err := retry.Do(ctx, c.retryCfg, transient, func() ([]byte, error) {
		return c.fetchOnce(ctx, rawURL)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	c.logger.InfoContext(ctx, "fetched configuration", "url", rawURL, "bytes", len(body))
	return body, nil
}

// FetchAndValidate retrieves the document at rawURL and runs it
// through the validator. The error covers the fetch only; validation
// findings live in the result.
func (c *Client) FetchAndValidate(ctx context.Context, rawURL string, opts ...x402check.Option) (x402check.ValidationResult, error) {
	body, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return x402check.ValidationResult{}, err
	}
	return x402check.Validate(body, opts...), nil
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPaymentRequired {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, c.maxBody)
	}
	return body, nil
}

// transient reports whether another attempt could succeed. Network
// failures and gateway-side statuses qualify, client errors do not.
func transient(err error) bool {
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code == http.StatusRequestTimeout ||
			status.Code == http.StatusTooManyRequests ||
			status.Code >= http.StatusInternalServerError
	}
	return errors.Is(err, ErrRequestFailed)
}
