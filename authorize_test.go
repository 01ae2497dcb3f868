package trello

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizeURL(t *testing.T) {
	cfg := &Config{DeveloperPublicKey: "pk", AppName: "Demo App"}
	raw, err := AuthorizeURL(cfg, AuthorizeOptions{
		Scope:      "read,write",
		Expiration: "never",
		ReturnURL:  "https://example.com/callback",
	})
	if err != nil {
		t.Fatalf("AuthorizeURL failed: %v", err)
	}
	if !strings.HasPrefix(raw, "https://trello.com/1/authorize?") {
		t.Fatalf("unexpected prefix: %s", raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}
	query := parsed.Query()
	if query.Get("key") != "pk" {
		t.Errorf("key = %q, want pk", query.Get("key"))
	}
	if query.Get("scope") != "read,write" {
		t.Errorf("scope = %q, want read,write", query.Get("scope"))
	}
	if query.Get("expiration") != "never" {
		t.Errorf("expiration = %q, want never", query.Get("expiration"))
	}
	if query.Get("name") != "Demo App" {
		t.Errorf("name = %q, want the config AppName", query.Get("name"))
	}
	if query.Get("return_url") != "https://example.com/callback" {
		t.Errorf("return_url = %q", query.Get("return_url"))
	}
	if query.Get("response_type") != "token" {
		t.Errorf("response_type = %q, want token", query.Get("response_type"))
	}
}

func TestAuthorizeURLDefaults(t *testing.T) {
	cfg := &Config{DeveloperPublicKey: "pk"}
	raw, err := AuthorizeURL(cfg, AuthorizeOptions{})
	if err != nil {
		t.Fatalf("AuthorizeURL failed: %v", err)
	}
	parsed, _ := url.Parse(raw)
	query := parsed.Query()
	if query.Get("scope") != "read" {
		t.Errorf("default scope = %q, want read", query.Get("scope"))
	}
	if query.Get("expiration") != "30days" {
		t.Errorf("default expiration = %q, want 30days", query.Get("expiration"))
	}
	if query.Has("name") {
		t.Errorf("name should be absent without an AppName, got %q", query.Get("name"))
	}
}

func TestAuthorizeURLRequiresKey(t *testing.T) {
	_, err := AuthorizeURL(&Config{}, AuthorizeOptions{})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
