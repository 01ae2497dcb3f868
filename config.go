package trello

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the credentials and transport settings for one Client. It is
// built once and injected into NewClient; there is no process-wide singleton.
// Mutating a Config while requests are in flight is the caller's problem:
// configure before use.
type Config struct {
	// DeveloperPublicKey and DeveloperSecret are the application (consumer)
	// key pair issued by Trello.
	DeveloperPublicKey string `yaml:"developer_public_key"`
	DeveloperSecret    string `yaml:"developer_secret"`

	// MemberToken is a server token used with basic key+token auth.
	MemberToken string `yaml:"member_token"`

	// OAuthToken and OAuthTokenSecret select OAuth1 signing when present.
	OAuthToken       string `yaml:"oauth_token"`
	OAuthTokenSecret string `yaml:"oauth_token_secret"`

	// AppName is shown to the user on the authorization consent page.
	AppName string `yaml:"app_name"`

	// TransportName picks a registered transport implementation by name.
	// Empty means the registry's priority order decides.
	TransportName string `yaml:"transport"`

	// Timeout bounds each HTTP call made by the default transport.
	Timeout time.Duration `yaml:"timeout"`

	// Transport, when set, bypasses the registry entirely.
	Transport Transport `yaml:"-"`

	// Logger receives debug lines for every request when set.
	Logger *log.Logger `yaml:"-"`
}

// policy derives the auth policy from the populated credential fields.
func (c *Config) policy() (AuthPolicy, error) {
	switch {
	case c.OAuthToken != "":
		return OAuth{
			ConsumerKey:    c.DeveloperPublicKey,
			ConsumerSecret: c.DeveloperSecret,
			Token:          c.OAuthToken,
			TokenSecret:    c.OAuthTokenSecret,
		}, nil
	case c.DeveloperPublicKey != "":
		return BasicAuth{Key: c.DeveloperPublicKey, Token: c.MemberToken}, nil
	default:
		return nil, &ConfigurationError{Reason: "no credentials configured"}
	}
}

// canWrite reports whether the configured credentials are sufficient for a
// write call. Read-only calls may get by with just a public key.
func (c *Config) canWrite() bool {
	return c.OAuthToken != "" || c.MemberToken != ""
}

// ConfigProvider loads a Config from some source.
type ConfigProvider interface {
	LoadConfig() (*Config, error)
}

// FileConfigProvider is a ConfigProvider that reads YAML config files.
type FileConfigProvider struct {
	path string
}

// NewFileConfigProvider creates a provider for the given path and verifies
// the file parses during initialization.
func NewFileConfigProvider(path string) (*FileConfigProvider, error) {
	prov := &FileConfigProvider{path: path}
	if _, err := prov.LoadConfig(); err != nil {
		return nil, err
	}
	return prov, nil
}

// LoadConfig reads and unmarshals the YAML configuration file.
func (f *FileConfigProvider) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML config: %w", err)
	}
	return &cfg, nil
}

// EnvConfigProvider reads configuration from TRELLO_* environment variables,
// loading a .env file first when one is present. Real environment variables
// take precedence over .env entries.
type EnvConfigProvider struct{}

func (EnvConfigProvider) LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		DeveloperPublicKey: os.Getenv("TRELLO_DEVELOPER_PUBLIC_KEY"),
		DeveloperSecret:    os.Getenv("TRELLO_DEVELOPER_SECRET"),
		MemberToken:        os.Getenv("TRELLO_MEMBER_TOKEN"),
		OAuthToken:         os.Getenv("TRELLO_OAUTH_TOKEN"),
		OAuthTokenSecret:   os.Getenv("TRELLO_OAUTH_TOKEN_SECRET"),
		AppName:            os.Getenv("TRELLO_APP_NAME"),
		TransportName:      os.Getenv("TRELLO_TRANSPORT"),
	}
	return cfg, nil
}

// ConfigFromEnv is a convenience wrapper around EnvConfigProvider.
func ConfigFromEnv() (*Config, error) {
	return EnvConfigProvider{}.LoadConfig()
}
