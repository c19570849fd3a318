package ctct

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// ActivityService submits and queries asynchronous bulk jobs (add/remove
// contacts, clear lists, file imports). The upstream API tracks job
// completion itself; this service never polls, it only submits and reads
// back status on request.
type ActivityService struct {
	rest   *restClient
	logger *zap.Logger
}

func newActivityService(rest *restClient, logger *zap.Logger) *ActivityService {
	return &ActivityService{rest: rest, logger: logger}
}

// GetActivities retrieves the recent bulk activities on the account.
func (s *ActivityService) GetActivities(ctx context.Context, accessToken string) ([]Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Activities, "", nil)
	if err != nil {
		return nil, err
	}

	var activities []Activity
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &activities); err != nil {
		return nil, err
	}

	s.logger.Info("Retrieved activities", zap.Int("count", len(activities)))
	return activities, nil
}

// GetActivity retrieves the current status of a single bulk activity.
func (s *ActivityService) GetActivity(ctx context.Context, accessToken, activityID string) (*Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.Activity, activityID, nil)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := s.rest.do(ctx, accessToken, http.MethodGet, endpoint, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// AddContacts submits a bulk add-contacts job.
func (s *ActivityService) AddContacts(ctx context.Context, accessToken string, payload *AddContactsPayload) (*Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.AddContactsActivity, "", nil)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, payload, &activity); err != nil {
		return nil, err
	}

	s.logger.Info("Submitted add-contacts activity",
		zap.String("activity_id", activity.ID),
		zap.Int("contact_count", len(payload.ImportData)))
	return &activity, nil
}

// RemoveContactsFromLists submits a bulk job removing the given contacts
// from the given lists.
func (s *ActivityService) RemoveContactsFromLists(ctx context.Context, accessToken string, payload *RemoveFromListsPayload) (*Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.RemoveFromListsActivity, "", nil)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, payload, &activity); err != nil {
		return nil, err
	}

	s.logger.Info("Submitted remove-from-lists activity", zap.String("activity_id", activity.ID))
	return &activity, nil
}

// ClearLists submits a bulk job removing every contact from the given
// lists.
func (s *ActivityService) ClearLists(ctx context.Context, accessToken string, listIDs []string) (*Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.ClearListsActivity, "", nil)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := s.rest.do(ctx, accessToken, http.MethodPost, endpoint, &ClearListsPayload{Lists: listIDs}, &activity); err != nil {
		return nil, err
	}

	s.logger.Info("Submitted clear-lists activity",
		zap.String("activity_id", activity.ID),
		zap.Int("list_count", len(listIDs)))
	return &activity, nil
}

// AddContactsFromFile submits a file import as multipart/form-data. The
// file payload is streamed from the reader; lists names the target list
// ids.
func (s *ActivityService) AddContactsFromFile(ctx context.Context, accessToken, fileName string, file io.Reader, lists []string) (*Activity, error) {
	endpoint, err := s.rest.resourceURL(s.rest.cfg.Endpoints.AddContactsFromFile, "", nil)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := s.rest.postMultipart(ctx, accessToken, endpoint, fileName, file, lists, &activity); err != nil {
		return nil, err
	}

	s.logger.Info("Submitted file import activity",
		zap.String("activity_id", activity.ID),
		zap.String("file_name", fileName))
	return &activity, nil
}
