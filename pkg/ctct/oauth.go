package ctct

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/constantcontact/go-sdk/pkg/config"
	httpclient "github.com/constantcontact/go-sdk/pkg/http"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	responseTypeCode  = "code"
	responseTypeToken = "token"

	grantTypeAuthorizationCode = "authorization_code"
)

// OAuth2Service implements the provider's authorization-code and implicit
// grant flows. The provider expects client credentials in the query string
// of the token endpoints, never in headers or a form body.
//
// Tokens are returned to the caller as-is; nothing is cached or refreshed.
type OAuth2Service struct {
	cfg    *config.Config
	rest   *restClient
	logger *zap.Logger
}

func newOAuth2Service(cfg *config.Config, rest *restClient, logger *zap.Logger) *OAuth2Service {
	return &OAuth2Service{
		cfg:    cfg,
		rest:   rest,
		logger: logger,
	}
}

// AuthorizationURL builds the URL to send the resource owner to. serverFlow
// selects the authorization-code grant ("code"); false selects the implicit
// grant ("token"). state is appended only when non-nil, so callers can
// distinguish "no state" from an empty state value. No network call is made.
func (s *OAuth2Service) AuthorizationURL(serverFlow bool, state *string) (string, error) {
	responseType := responseTypeToken
	if serverFlow {
		responseType = responseTypeCode
	}

	params := map[string]string{
		"response_type": responseType,
		"client_id":     s.cfg.ClientID,
		"redirect_uri":  s.cfg.RedirectURI,
	}
	if state != nil {
		params["state"] = *state
	}

	return httpclient.BuildURL(s.cfg.AuthBaseURL, s.cfg.Endpoints.Authorization, params)
}

// AccessToken exchanges an authorization code for an access token. The
// grant parameters ride in the query string per the provider's contract.
func (s *OAuth2Service) AccessToken(ctx context.Context, code string) (TokenResponse, error) {
	endpoint, err := httpclient.BuildURL(s.cfg.AuthBaseURL, s.cfg.Endpoints.Token, map[string]string{
		"grant_type":    grantTypeAuthorizationCode,
		"client_id":     s.cfg.ClientID,
		"client_secret": s.cfg.ClientSecret,
		"code":          code,
		"redirect_uri":  s.cfg.RedirectURI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	s.logger.Info("Exchanging authorization code for access token", zap.String("url", redact(endpoint)))
	return s.postToken(ctx, endpoint)
}

// TokenInfo fetches metadata about an access token from the introspection
// endpoint. The token is the sole query parameter.
func (s *OAuth2Service) TokenInfo(ctx context.Context, accessToken string) (TokenInfo, error) {
	endpoint, err := httpclient.BuildURL(s.cfg.AuthBaseURL, s.cfg.Endpoints.TokenInfo, map[string]string{
		"access_token": accessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	s.logger.Debug("Fetching token info")
	decoded, err := s.postToken(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return TokenInfo(decoded), nil
}

// GenerateState returns a random state value suitable for CSRF protection
// of the authorization redirect.
func GenerateState() string {
	return uuid.NewString()
}

func (s *OAuth2Service) postToken(ctx context.Context, endpoint string) (TokenResponse, error) {
	resp, err := s.rest.httpClient.Post(ctx, endpoint, nil, nil)
	if err != nil {
		s.logger.Error("Token request failed", zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if err := s.rest.checkStatus(http.MethodPost, endpoint, resp); err != nil {
		return nil, err
	}

	var decoded TokenResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		s.logger.Error("Failed to parse token response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	s.logger.Info("Token endpoint call succeeded", zap.String("token_type", decoded.TokenType()))
	return decoded, nil
}

// redact replaces credential values in a URL with a placeholder so it can
// be logged safely.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for _, key := range []string{"client_secret", "access_token", "code"} {
		if q.Has(key) {
			q.Set(key, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
