// Package client implements the Kalshi trade API client: a shared HTTP
// transport plus one resource client per API group (exchange, markets,
// portfolio).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jameson75/kalshix/apierr"
	"github.com/jameson75/kalshix/clock"
	"github.com/jameson75/kalshix/utils"
)

const (
	defaultBaseURL   = "https://api.elections.kalshi.com/trade-api/v2/"
	defaultUserAgent = "kalshix/0.1"
	defaultTimeout   = 30 * time.Second

	// cap on error bodies we slurp for diagnostics
	defaultErrCap = 8192
)

// Client is the shared transport. Resource clients (Exchange, Markets,
// Portfolio) hold a *Client and delegate every call to send. A Client is
// safe for concurrent use; it holds no per-call state.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	signer *signer
	clock  clock.Clock
}

// Option configures a Client during construction.
type Option func(*Client) error

// WithBaseURL overrides the API root. The URL is validated and a trailing
// slash is enforced.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", raw, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base URL %q must be absolute", raw)
		}
		if raw[len(raw)-1] != '/' {
			raw += "/"
		}
		c.BaseURL = raw
		return nil
	}
}

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithHTTPTimeout sets the timeout on the underlying *http.Client.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		c.HTTPClient.Timeout = d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.UserAgent = ua
		return nil
	}
}

// WithAPIKey configures authenticated access: keyID is the Kalshi API key
// identifier, pemBytes is the PEM-encoded RSA private key. Public
// market-data endpoints work without it; portfolio endpoints require it.
func WithAPIKey(keyID string, pemBytes []byte) Option {
	return func(c *Client) error {
		if keyID == "" {
			return fmt.Errorf("api key id must not be empty")
		}
		s, err := newSigner(keyID, pemBytes)
		if err != nil {
			return err
		}
		c.signer = s
		return nil
	}
}

// WithClock swaps the time source used for signing timestamps.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) error {
		if clk == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.clock = clk
		return nil
	}
}

// NewClient builds a Client with defaults, then applies options in order.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		BaseURL:    defaultBaseURL,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		clock:      clock.System(),
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// send performs one round trip described by r: encode the body, sign when
// credentials are configured, map non-2xx to *apierr.APIError, decode 2xx
// JSON into v (which may be nil). No retries; cancellation passes through
// the context untouched.
func (c *Client) send(ctx context.Context, r Request, v any) error {
	var body io.Reader
	if r.Body != nil {
		buf, err := utils.EncodeJSONBody(r.Body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		body = buf
	}

	u := c.BaseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.signer != nil {
		if err := c.signer.sign(req, c.clock.Now(), r.Method, c.signPath(r.Path)); err != nil {
			return fmt.Errorf("sign request: %w", err)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, defaultErrCap))
		return apierr.Parse(slurp, resp.StatusCode, resp.Header.Get("X-Request-Id"))
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// signPath is the absolute request path the signature covers: the base
// URL's path plus the endpoint suffix, query string excluded.
func (c *Client) signPath(suffix string) string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "/" + suffix
	}
	return u.Path + suffix
}
