// Package ctct provides a client for the Constant Contact v2 REST API.
//
// Constant Contact is a marketing-automation platform for small businesses:
// email campaigns, contact and list management, and bulk import/export
// activities. This package maps each HTTP endpoint to a method call: a
// service method builds the request URL from the injected configuration,
// optionally serializes a domain object to JSON, issues the request, and
// decodes the JSON response into a typed value. Non-2xx responses become a
// typed *APIError carrying the status code, the exact request URL, and the
// decoded error body.
//
// Access tokens are supplied by the caller on every resource call; the
// client never stores or refreshes them. Every operation is a single
// synchronous request/response round trip with no retries by default.
package ctct

import (
	"github.com/constantcontact/go-sdk/pkg/config"
	httpclient "github.com/constantcontact/go-sdk/pkg/http"
	"go.uber.org/zap"
)

// Client is the root entry point. It holds the injected configuration, a
// single reusable HTTP transport, and one service per API resource group,
// all sharing the same request/error pipeline.
type Client struct {
	cfg    *config.Config
	logger *zap.Logger

	oauth2     *OAuth2Service
	account    *AccountService
	campaigns  *CampaignService
	contacts   *ContactService
	lists      *ListService
	activities *ActivityService
}

// NewClient creates a client with the default production logger.
func NewClient(cfg *config.Config) *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a client with a custom logger.
func NewClientWithLogger(cfg *config.Config, logger *zap.Logger) *Client {
	rest := newRestClient(cfg, httpclient.NewClientWithLogger(logger), logger)
	return &Client{
		cfg:        cfg,
		logger:     logger,
		oauth2:     newOAuth2Service(cfg, rest, logger),
		account:    newAccountService(rest, logger),
		campaigns:  newCampaignService(rest, logger),
		contacts:   newContactService(rest, logger),
		lists:      newListService(rest, logger),
		activities: newActivityService(rest, logger),
	}
}

func (c *Client) OAuth2() *OAuth2Service { return c.oauth2 }

func (c *Client) Account() *AccountService { return c.account }

func (c *Client) Campaigns() *CampaignService { return c.campaigns }

func (c *Client) Contacts() *ContactService { return c.contacts }

func (c *Client) Lists() *ListService { return c.lists }

func (c *Client) Activities() *ActivityService { return c.activities }
