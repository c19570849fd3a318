package ctct

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// ContactService manages individual subscriber records.
type ContactService struct {
	rest   *restClient
	logger *zap.Logger
}

func newContactService(rest *restClient, logger *zap.Logger) *ContactService {
	return &ContactService{rest: rest, logger: logger}
}

// ContactListParams narrows a contact listing. Zero values are omitted.
type ContactListParams struct {
	// Email looks up contacts by exact email address.
	Email         string
	Status        string
	ModifiedSince string
	Limit         int
	// Next is the cursor from the previous page's pagination metadata.
	Next string
}

func (p ContactListParams) query() map[string]string {
	params := map[string]string{}
	if p.Email != "" {
		params["email"] = p.Email
	}
	if p.Status != "" {
		params["status"] = p.Status
	}
	if p.ModifiedSince != "" {
		params["modified_since"] = p.ModifiedSince
	}
	if p.Limit > 0 {
		params["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Next != "" {
		params["next"] = p.Next
	}
	return params
}

// GetContacts retrieves one page of contacts.
func (s *ContactService) GetContacts(ctx context.Context, accessToken string, params ContactListParams) (*ResultSet[Contact], error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Contacts, "", params.query())
	if err != nil {
		return nil, err
	}

	var page ResultSet[Contact]
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved contacts", zap.Int("count", len(page.Results)))
	return &page, nil
}

// GetContact retrieves a single contact by id.
func (s *ContactService) GetContact(ctx context.Context, accessToken, contactID string) (*Contact, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Contact, contactID, nil)
	if err != nil {
		return nil, err
	}

	var contact Contact
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// actionBy reports who triggered a contact change; the upstream provider
// uses it to decide whether double-opt-in rules apply.
func actionBy(visitor bool) map[string]string {
	if visitor {
		return map[string]string{"action_by": "ACTION_BY_VISITOR"}
	}
	return map[string]string{"action_by": "ACTION_BY_OWNER"}
}

// AddContact creates a new contact. actionByVisitor marks the change as
// made by the contact themselves rather than the account owner.
func (s *ContactService) AddContact(ctx context.Context, accessToken string, contact *Contact, actionByVisitor bool) (*Contact, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Contacts, "", actionBy(actionByVisitor))
	if err != nil {
		return nil, err
	}

	var created Contact
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, contact, &created); err != nil {
		return nil, err
	}

	s.logger.Info("Created contact", zap.String("contact_id", created.ID))
	return &created, nil
}

// UpdateContact replaces an existing contact.
func (s *ContactService) UpdateContact(ctx context.Context, accessToken string, contact *Contact, actionByVisitor bool) (*Contact, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Contact, contact.ID, actionBy(actionByVisitor))
	if err != nil {
		return nil, err
	}

	var updated Contact
	if err := s.rest.do(ctx, accessToken, http.MethodPut, endpoint, contact, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Updated contact", zap.String("contact_id", updated.ID))
	return &updated, nil
}

// DeleteContact opts a contact out of all lists. True exactly when the
// server answered 204.
func (s *ContactService) DeleteContact(ctx context.Context, accessToken, contactID string) (bool, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Contact, contactID, nil)
	if err != nil {
		return false, err
	}

	deleted, err := s.rest.doDelete(ctx, accessToken, endpoint)
	if err != nil {
		return false, err
	}

	s.logger.Info("Delete contact finished", zap.String("contact_id", contactID), zap.Bool("deleted", deleted))
	return deleted, nil
}
