package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// Client owns one Config, the auth policy derived from it and the selected
// transport. All domain records issue their API calls through a Client.
type Client struct {
	cfg     *Config
	baseURL string

	once      sync.Once
	transport Transport
	initErr   error
}

// NewClient builds a Client around the given configuration. The transport is
// resolved lazily on the first call so that a misconfiguration surfaces as a
// ConfigurationError from the call site rather than a constructor panic.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg, baseURL: DefaultBaseURL}
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *Config {
	return c.cfg
}

// SetBaseURL overrides the API host, mainly for tests against a local server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// init resolves the auth policy and transport exactly once per client.
func (c *Client) init() error {
	c.once.Do(func() {
		policy, err := c.cfg.policy()
		if err != nil {
			c.initErr = err
			return
		}
		rt, err := policy.Authorize(http.DefaultTransport)
		if err != nil {
			c.initErr = err
			return
		}
		transport, err := selectTransport(c.cfg, rt)
		if err != nil {
			c.initErr = err
			return
		}
		c.transport = transport
	})
	return c.initErr
}

// Get issues a GET against the given relative API path.
func (c *Client) Get(ctx context.Context, path string, args Arguments) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, args)
}

// Post issues a POST; Trello accepts write parameters as query arguments.
func (c *Client) Post(ctx context.Context, path string, args Arguments) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, args)
}

// Put issues a PUT with the given arguments.
func (c *Client) Put(ctx context.Context, path string, args Arguments) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, args)
}

// Delete issues a DELETE for the given path.
func (c *Client) Delete(ctx context.Context, path string, args Arguments) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, args)
}

func (c *Client) do(ctx context.Context, method, path string, args Arguments) (json.RawMessage, error) {
	if method != http.MethodGet && !c.cfg.canWrite() {
		return nil, &ConfigurationError{
			Reason: "write calls require a member token or OAuth credentials",
		}
	}
	if err := c.init(); err != nil {
		return nil, err
	}

	req := &Request{
		Method: method,
		URL:    c.url(path),
		Args:   args,
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Printf("trello: %s %s args=%v", method, req.URL, args)
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Printf("trello: %s %s -> %d", method, req.URL, resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, bodyFragment(resp.Body))
	}
	if !resp.Success() {
		return nil, &APIError{Status: resp.StatusCode, Message: bodyFragment(resp.Body)}
	}
	return json.RawMessage(resp.Body), nil
}

// url resolves a relative API path against the base host and version segment.
// Absolute URLs pass through untouched.
func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + apiVersion + "/" + strings.TrimPrefix(path, "/")
}

// getObject fetches and decodes a single JSON object.
func (c *Client) getObject(ctx context.Context, path string, args Arguments) (map[string]interface{}, error) {
	raw, err := c.Get(ctx, path, args)
	if err != nil {
		return nil, err
	}
	return decodeObject(raw)
}

// getArray fetches and decodes a JSON array of objects.
func (c *Client) getArray(ctx context.Context, path string, args Arguments) ([]map[string]interface{}, error) {
	raw, err := c.Get(ctx, path, args)
	if err != nil {
		return nil, err
	}
	return decodeArray(raw)
}

func decodeObject(raw json.RawMessage) (map[string]interface{}, error) {
	resp := &Response{StatusCode: http.StatusOK, Body: raw}
	return resp.Object()
}

func decodeArray(raw json.RawMessage) ([]map[string]interface{}, error) {
	resp := &Response{StatusCode: http.StatusOK, Body: raw}
	return resp.Array()
}

// bodyFragment trims a response body down to a short, loggable message.
func bodyFragment(body []byte) string {
	const limit = 200
	msg := strings.TrimSpace(string(body))
	if len(msg) > limit {
		msg = msg[:limit]
	}
	return msg
}
