package trello

import "net/url"

// AuthorizeOptions control the user-facing authorization (consent) URL.
// Zero values get Trello's usual defaults.
type AuthorizeOptions struct {
	// Name is shown on the consent page; falls back to the Config AppName.
	Name string
	// Scope is a comma-separated permission list, default "read".
	Scope string
	// Expiration is e.g. "1hour", "30days" or "never"; default "30days".
	Expiration string
	// ReturnURL is where the browser is sent after consent.
	ReturnURL string
	// CallbackMethod is "postMessage" or "fragment"; default "fragment".
	CallbackMethod string
}

// AuthorizeURL builds the one-time human consent URL from the application
// key. It is a pure function and issues no request.
func AuthorizeURL(cfg *Config, opts AuthorizeOptions) (string, error) {
	if cfg == nil || cfg.DeveloperPublicKey == "" {
		return "", &ConfigurationError{Reason: "developer public key is required to build an authorize URL"}
	}

	name := opts.Name
	if name == "" {
		name = cfg.AppName
	}
	scope := opts.Scope
	if scope == "" {
		scope = "read"
	}
	expiration := opts.Expiration
	if expiration == "" {
		expiration = "30days"
	}

	query := url.Values{}
	query.Set("key", cfg.DeveloperPublicKey)
	query.Set("response_type", "token")
	query.Set("scope", scope)
	query.Set("expiration", expiration)
	if name != "" {
		query.Set("name", name)
	}
	if opts.ReturnURL != "" {
		query.Set("return_url", opts.ReturnURL)
	}
	if opts.CallbackMethod != "" {
		query.Set("callback_method", opts.CallbackMethod)
	}
	return "https://trello.com/" + apiVersion + "/authorize?" + query.Encode(), nil
}
