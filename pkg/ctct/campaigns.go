package ctct

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// CampaignService manages email marketing campaigns.
type CampaignService struct {
	rest   *restClient
	logger *zap.Logger
}

func newCampaignService(rest *restClient, logger *zap.Logger) *CampaignService {
	return &CampaignService{rest: rest, logger: logger}
}

// CampaignListParams narrows a campaign listing. Zero values are omitted
// from the request.
type CampaignListParams struct {
	// ModifiedSince is an ISO-8601 date; only campaigns modified after it
	// are returned.
	ModifiedSince string
	// Status filters by campaign status (DRAFT, RUNNING, SENT, SCHEDULED).
	Status string
	// Limit caps the page size.
	Limit int
	// Next is the cursor from the previous page's pagination metadata.
	Next string
}

func (p CampaignListParams) query() map[string]string {
	params := map[string]string{}
	if p.ModifiedSince != "" {
		params["modified_since"] = p.ModifiedSince
	}
	if p.Status != "" {
		params["status"] = p.Status
	}
	if p.Limit > 0 {
		params["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Next != "" {
		params["next"] = p.Next
	}
	return params
}

// GetCampaigns retrieves one page of campaigns. Cursor traversal is the
// caller's job via ResultSet.NextCursor and CampaignListParams.Next.
func (s *CampaignService) GetCampaigns(ctx context.Context, accessToken string, params CampaignListParams) (*ResultSet[Campaign], error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Campaigns, "", params.query())
	if err != nil {
		return nil, err
	}

	var page ResultSet[Campaign]
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved campaigns", zap.Int("count", len(page.Results)))
	return &page, nil
}

// GetCampaign retrieves a single campaign by id.
func (s *CampaignService) GetCampaign(ctx context.Context, accessToken, campaignID string) (*Campaign, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Campaign, campaignID, nil)
	if err != nil {
		return nil, err
	}

	var campaign Campaign
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// AddCampaign creates a new campaign and returns it with server-assigned
// fields populated.
func (s *CampaignService) AddCampaign(ctx context.Context, accessToken string, campaign *Campaign) (*Campaign, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Campaigns, "", nil)
	if err != nil {
		return nil, err
	}

	var created Campaign
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, campaign, &created); err != nil {
		return nil, err
	}

	s.logger.Info("Created campaign", zap.String("campaign_id", created.ID), zap.String("name", created.Name))
	return &created, nil
}

// UpdateCampaign replaces an existing campaign.
func (s *CampaignService) UpdateCampaign(ctx context.Context, accessToken string, campaign *Campaign) (*Campaign, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Campaign, campaign.ID, nil)
	if err != nil {
		return nil, err
	}

	var updated Campaign
	if err := s.rest.do(ctx, accessToken, http.MethodPut, endpoint, campaign, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Updated campaign", zap.String("campaign_id", updated.ID))
	return &updated, nil
}

// DeleteCampaign deletes a campaign. The result is true exactly when the
// server answered 204 No Content; other 2xx statuses return false without
// an error, so callers must check the boolean.
func (s *CampaignService) DeleteCampaign(ctx context.Context, accessToken, campaignID string) (bool, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Campaign, campaignID, nil)
	if err != nil {
		return false, err
	}

	deleted, err := s.rest.doDelete(ctx, accessToken, endpoint)
	if err != nil {
		return false, err
	}

	s.logger.Info("Delete campaign finished", zap.String("campaign_id", campaignID), zap.Bool("deleted", deleted))
	return deleted, nil
}
