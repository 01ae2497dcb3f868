package trello

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// AuthPolicy turns a base round tripper into one that authorizes every
// outgoing request. The policy is derived from which Config fields are
// populated: an OAuth token selects OAuth1 signing, otherwise the static
// key+token pair is injected as query parameters.
type AuthPolicy interface {
	Authorize(base http.RoundTripper) (http.RoundTripper, error)
}

// BasicAuth injects the developer key and optional member token as query
// parameters on every request.
type BasicAuth struct {
	Key   string
	Token string
}

func (a BasicAuth) Authorize(base http.RoundTripper) (http.RoundTripper, error) {
	if a.Key == "" {
		return nil, &ConfigurationError{Reason: "developer public key is required"}
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		signed := req.Clone(req.Context())
		query := signed.URL.Query()
		query.Set("key", a.Key)
		if a.Token != "" {
			query.Set("token", a.Token)
		}
		signed.URL.RawQuery = query.Encode()
		return base.RoundTrip(signed)
	}), nil
}

// OAuth signs requests with OAuth1 HMAC-SHA1 using the consumer key/secret
// and access token/secret.
type OAuth struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

func (a OAuth) Authorize(base http.RoundTripper) (http.RoundTripper, error) {
	if a.ConsumerKey == "" || a.ConsumerSecret == "" {
		return nil, &ConfigurationError{Reason: "OAuth signing requires a consumer key and secret"}
	}
	if a.Token == "" || a.TokenSecret == "" {
		return nil, &ConfigurationError{Reason: "OAuth signing requires an access token and secret"}
	}
	config := oauth1.Config{
		ConsumerKey:    a.ConsumerKey,
		ConsumerSecret: a.ConsumerSecret,
	}
	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, &http.Client{Transport: base})
	}
	client := config.Client(ctx, oauth1.NewToken(a.Token, a.TokenSecret))
	return client.Transport, nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
