package ctct

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// ListService manages contact lists and their memberships.
type ListService struct {
	rest   *restClient
	logger *zap.Logger
}

func newListService(rest *restClient, logger *zap.Logger) *ListService {
	return &ListService{rest: rest, logger: logger}
}

// GetLists retrieves every contact list on the account. modifiedSince
// (ISO-8601, optional) restricts to lists changed after that instant.
func (s *ListService) GetLists(ctx context.Context, accessToken, modifiedSince string) ([]ContactList, error) {
	var params map[string]string
	if modifiedSince != "" {
		params = map[string]string{"modified_since": modifiedSince}
	}
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Lists, "", params)
	if err != nil {
		return nil, err
	}

	var lists []ContactList
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &lists); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved lists", zap.Int("count", len(lists)))
	return lists, nil
}

// GetList retrieves a single list by id.
func (s *ListService) GetList(ctx context.Context, accessToken, listID string) (*ContactList, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.List, listID, nil)
	if err != nil {
		return nil, err
	}

	var list ContactList
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddList creates a new contact list.
func (s *ListService) AddList(ctx context.Context, accessToken string, list *ContactList) (*ContactList, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Lists, "", nil)
	if err != nil {
		return nil, err
	}

	var created ContactList
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, list, &created); err != nil {
		return nil, err
	}

	s.logger.Info("Created list", zap.String("list_id", created.ID), zap.String("name", created.Name))
	return &created, nil
}

// UpdateList replaces an existing contact list.
func (s *ListService) UpdateList(ctx context.Context, accessToken string, list *ContactList) (*ContactList, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.List, list.ID, nil)
	if err != nil {
		return nil, err
	}

	var updated ContactList
	if err := s.rest.do(ctx, accessToken, http.MethodPut, endpoint, list, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Updated list", zap.String("list_id", updated.ID))
	return &updated, nil
}

// DeleteList deletes a contact list. True exactly when the server answered
// 204; contacts on the list are not removed from the account.
func (s *ListService) DeleteList(ctx context.Context, accessToken, listID string) (bool, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.List, listID, nil)
	if err != nil {
		return false, err
	}

	deleted, err := s.rest.doDelete(ctx, accessToken, endpoint)
	if err != nil {
		return false, err
	}

	s.logger.Info("Delete list finished", zap.String("list_id", listID), zap.Bool("deleted", deleted))
	return deleted, nil
}

// GetContactsFromList retrieves one page of the contacts belonging to a
// list. limit <= 0 lets the server pick the page size; next is the cursor
// from the previous page.
func (s *ListService) GetContactsFromList(ctx context.Context, accessToken, listID string, limit int, next string) (*ResultSet[Contact], error) {
	params := map[string]string{}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	if next != "" {
		params["next"] = next
	}

	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.ListContacts, listID, params)
	if err != nil {
		return nil, err
	}

	var page ResultSet[Contact]
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved contacts from list",
		zap.String("list_id", listID),
		zap.Int("count", len(page.Results)))
	return &page, nil
}
