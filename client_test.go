package trello

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestBoardToCardsScenario(t *testing.T) {
	client, stub := newStubClient(routes{
		"GET /1/boards/b1":       `{"id":"b1","name":"Demo"}`,
		"GET /1/boards/b1/cards": `[{"id":"c1","name":"Task"}]`,
	}.handle)
	ctx := context.Background()

	board, err := client.GetBoard(ctx, "b1", Defaults())
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	if got := board.Name(); got != "Demo" {
		t.Fatalf("Name() = %q, want %q", got, "Demo")
	}

	cards, err := board.Cards(ctx)
	if err != nil {
		t.Fatalf("Cards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].ID() != "c1" {
		t.Fatalf("unexpected cards %v", cards)
	}

	before := stub.callCount()
	if _, err := board.Cards(ctx); err != nil {
		t.Fatalf("cached Cards failed: %v", err)
	}
	if after := stub.callCount(); after != before {
		t.Errorf("re-access issued %d additional calls, want 0", after-before)
	}
}

func TestWriteWithoutCredentialsFailsBeforeAnyRequest(t *testing.T) {
	stub := &stubTransport{}
	client := NewClient(&Config{
		DeveloperPublicKey: "pk",
		Transport:          stub,
	})

	_, err := client.Post(context.Background(), "cards", Arguments{"name": "x"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if n := stub.callCount(); n != 0 {
		t.Errorf("expected 0 requests to leave the process, got %d", n)
	}
}

func TestNoCredentialsAtAllIsConfigurationError(t *testing.T) {
	client := NewClient(&Config{Transport: &stubTransport{}})
	_, err := client.Get(context.Background(), "members/me", Defaults())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestUnauthorizedMapsToInvalidToken(t *testing.T) {
	client, _ := newStubClient(func(req *Request) (*Response, error) {
		return jsonResponse(http.StatusUnauthorized, "invalid token"), nil
	})
	_, err := client.Get(context.Background(), "members/me", Defaults())
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNonSuccessMapsToAPIError(t *testing.T) {
	client, _ := newStubClient(func(req *Request) (*Response, error) {
		return jsonResponse(http.StatusNotFound, "model not found"), nil
	})
	_, err := client.Get(context.Background(), "boards/nope", Defaults())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "model not found") {
		t.Errorf("Message = %q, want the server body fragment", apiErr.Message)
	}
}

func TestTransportFailurePropagates(t *testing.T) {
	cause := errors.New("connection refused")
	client, _ := newStubClient(func(req *Request) (*Response, error) {
		return nil, &TransportError{Op: "GET", Err: cause}
	})
	_, err := client.Get(context.Background(), "boards/b1", Defaults())
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the network cause to be wrapped")
	}
}

func TestURLBuilding(t *testing.T) {
	client := NewClient(&Config{DeveloperPublicKey: "pk"})

	if got := client.url("boards/b1"); got != "https://api.trello.com/1/boards/b1" {
		t.Errorf("url() = %q", got)
	}
	if got := client.url("/boards/b1"); got != "https://api.trello.com/1/boards/b1" {
		t.Errorf("url() with leading slash = %q", got)
	}
	if got := client.url("https://example.com/x"); got != "https://example.com/x" {
		t.Errorf("absolute url rewritten to %q", got)
	}

	client.SetBaseURL("http://127.0.0.1:8080/")
	if got := client.url("boards/b1"); got != "http://127.0.0.1:8080/1/boards/b1" {
		t.Errorf("url() after SetBaseURL = %q", got)
	}
}
