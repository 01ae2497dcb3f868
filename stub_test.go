package trello

import (
	"context"
	"net/http"
	"strings"
	"sync"
)

// stubTransport records every request and answers from a handler, so tests
// can count calls and inspect the arguments that would go over the wire.
type stubTransport struct {
	mu      sync.Mutex
	calls   []*Request
	handler func(req *Request) (*Response, error)
}

func (s *stubTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.handler == nil {
		return jsonResponse(http.StatusOK, `{}`), nil
	}
	return s.handler(req)
}

func (s *stubTransport) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubTransport) lastCall() *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

func jsonResponse(status int, body string) *Response {
	return &Response{StatusCode: status, Body: []byte(body)}
}

// routes maps "METHOD /1/path" to a JSON body.
type routes map[string]string

func (r routes) handle(req *Request) (*Response, error) {
	for key, body := range r {
		parts := strings.SplitN(key, " ", 2)
		if req.Method == parts[0] && strings.HasSuffix(req.URL, parts[1]) {
			return jsonResponse(http.StatusOK, body), nil
		}
	}
	return jsonResponse(http.StatusNotFound, `"not found"`), nil
}

// newStubClient builds a client with basic credentials and the given stub
// injected as its transport.
func newStubClient(handler func(req *Request) (*Response, error)) (*Client, *stubTransport) {
	stub := &stubTransport{handler: handler}
	cfg := &Config{
		DeveloperPublicKey: "pk",
		MemberToken:        "tok",
		Transport:          stub,
	}
	return NewClient(cfg), stub
}
