package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything needed to talk to the Constant Contact API:
// base URLs, OAuth2 application credentials, and the endpoint registry.
// Build one explicitly (or via Load) and inject it into the client; there
// is no global configuration state.
type Config struct {
	// AuthBaseURL is the OAuth2 provider base, e.g. https://oauth2.constantcontact.com
	AuthBaseURL string
	// APIBaseURL is the resource API base, e.g. https://api.constantcontact.com
	APIBaseURL   string
	ClientID     string
	ClientSecret string
	RedirectURI  string

	Endpoints Endpoints
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		AuthBaseURL:  os.Getenv("CTCT_AUTH_BASE_URL"),
		APIBaseURL:   os.Getenv("CTCT_API_BASE_URL"),
		ClientID:     os.Getenv("CTCT_CLIENT_ID"),
		ClientSecret: os.Getenv("CTCT_CLIENT_SECRET"),
		RedirectURI:  os.Getenv("CTCT_REDIRECT_URI"),
		Endpoints:    DefaultEndpoints(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AuthBaseURL == "" {
		return fmt.Errorf("CTCT_AUTH_BASE_URL is required")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("CTCT_API_BASE_URL is required")
	}
	if c.ClientID == "" {
		return fmt.Errorf("CTCT_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("CTCT_CLIENT_SECRET is required")
	}
	// RedirectURI is only needed for the authorization-code flow, so it is
	// not validated here
	return nil
}
