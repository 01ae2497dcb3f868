package trello

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Transport sends a fully built request and returns the raw response.
// Implementations must be behaviorally interchangeable: identical inputs
// produce identical (status, body) outputs modulo error wrapping.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFactory builds a Transport from a Config and the round tripper
// produced by the active auth policy.
type TransportFactory func(cfg *Config, rt http.RoundTripper) (Transport, error)

var (
	transportMu    sync.Mutex
	transportOrder []string
	transports     = map[string]TransportFactory{}
)

// RegisterTransport adds a named transport implementation to the selection
// registry. Registration order is the priority order: when no transport is
// named explicitly, the earliest registered one wins.
func RegisterTransport(name string, factory TransportFactory) {
	transportMu.Lock()
	defer transportMu.Unlock()
	if _, exists := transports[name]; !exists {
		transportOrder = append(transportOrder, name)
	}
	transports[name] = factory
}

// selectTransport resolves the transport for a config: an injected Transport
// wins, then a transport named in the config, then the registry in priority
// order. Zero usable transports is a configuration error raised before any
// network call.
func selectTransport(cfg *Config, rt http.RoundTripper) (Transport, error) {
	if cfg.Transport != nil {
		return cfg.Transport, nil
	}

	transportMu.Lock()
	defer transportMu.Unlock()

	if cfg.TransportName != "" {
		factory, ok := transports[cfg.TransportName]
		if !ok {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("no HTTP transport registered under %q", cfg.TransportName),
			}
		}
		return factory(cfg, rt)
	}

	for _, name := range transportOrder {
		transport, err := transports[name](cfg, rt)
		if err != nil {
			// An unavailable implementation means try the next one.
			continue
		}
		return transport, nil
	}
	return nil, &ConfigurationError{Reason: "no HTTP transport available"}
}

// httpTransport is the default Transport backed by net/http.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(cfg *Config, rt http.RoundTripper) (Transport, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &httpTransport{
		client: &http.Client{
			Transport: rt,
			Timeout:   timeout,
		},
	}, nil
}

func (t *httpTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if len(req.Args) > 0 {
		query := httpReq.URL.Query()
		for key, value := range req.Args {
			query.Set(key, value)
		}
		httpReq.URL.RawQuery = query.Encode()
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if len(req.Body) > 0 && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: req.Method + " " + req.URL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: req.Method + " " + req.URL, Err: err}
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func init() {
	RegisterTransport("net/http", newHTTPTransport)
}
