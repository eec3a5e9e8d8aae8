package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps how much of an API response is read.
const maxBodyBytes = 1 << 20

// Observer receives one call per upstream exchange. outcome is "ok" or an
// ErrorKind name.
type Observer interface {
	ObserveUpstream(operation, outcome string, duration time.Duration)
}

// Client talks to the remote API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("component", "gateway").Logger() }
}

// WithObserver reports every upstream exchange to o.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one exchange with the API.
type call struct {
	op     string
	method string
	path   string
	token  string
	body   interface{}
}

// reply is a received HTTP response.
type reply struct {
	status int
	body   []byte
}

func (r *reply) ok() bool {
	return r.status >= 200 && r.status < 300
}

// serverMessage extracts the "message" field of a JSON error body.
func (r *reply) serverMessage() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

// send performs the exchange. A non-nil error means no response was received.
func (c *Client) send(ctx context.Context, cl call) (*reply, error) {
	var body io.Reader
	if cl.body != nil {
		buf, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", cl.op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", cl.op, err)
	}
	if cl.body != nil || cl.token != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", cl.op).Str("path", cl.path).Msg("API unreachable")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Warn().Err(err).Str("op", cl.op).Msg("Failed to read API response")
		return nil, fmt.Errorf("read %s response: %w", cl.op, err)
	}

	c.log.Debug().
		Str("op", cl.op).
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("API call")

	return &reply{status: resp.StatusCode, body: data}, nil
}

// observe forwards the outcome of op to the observer, if any.
func (c *Client) observe(op string, start time.Time, err *Error) {
	if c.observer == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = err.Kind.String()
	}
	c.observer.ObserveUpstream(op, outcome, time.Since(start))
}
