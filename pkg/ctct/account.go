package ctct

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// AccountService manages the account-owner profile and verified sender
// addresses.
type AccountService struct {
	rest   *restClient
	logger *zap.Logger
}

func newAccountService(rest *restClient, logger *zap.Logger) *AccountService {
	return &AccountService{rest: rest, logger: logger}
}

// GetAccountInfo retrieves the account-owner profile.
func (s *AccountService) GetAccountInfo(ctx context.Context, accessToken string) (*AccountInfo, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.AccountInfo, "", nil)
	if err != nil {
		return nil, err
	}

	var info AccountInfo
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &info); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved account info", zap.String("organization", info.OrganizationName))
	return &info, nil
}

// UpdateAccountInfo updates the account-owner profile and returns the
// stored result.
func (s *AccountService) UpdateAccountInfo(ctx context.Context, accessToken string, info *AccountInfo) (*AccountInfo, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.AccountInfo, "", nil)
	if err != nil {
		return nil, err
	}

	var updated AccountInfo
	if err := s.rest.do(ctx, accessToken, http.MethodPut, endpoint, info, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Updated account info")
	return &updated, nil
}

// GetVerifiedEmailAddresses lists the sender addresses verified for this
// account. status optionally filters (e.g. "CONFIRMED").
func (s *AccountService) GetVerifiedEmailAddresses(ctx context.Context, accessToken, status string) ([]VerifiedEmailAddress, error) {
	var params map[string]string
	if status != "" {
		params = map[string]string{"status": status}
	}
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.AccountVerifiedAddrs, "", params)
	if err != nil {
		return nil, err
	}

	var addresses []VerifiedEmailAddress
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &addresses); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved verified email addresses", zap.Int("count", len(addresses)))
	return addresses, nil
}
