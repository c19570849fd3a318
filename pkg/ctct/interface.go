package ctct

import (
	"context"
	"io"
)

// AccountAPI defines the account administration operations.
type AccountAPI interface {
	GetAccountInfo(ctx context.Context, accessToken string) (*AccountInfo, error)
	UpdateAccountInfo(ctx context.Context, accessToken string, info *AccountInfo) (*AccountInfo, error)
	GetVerifiedEmailAddresses(ctx context.Context, accessToken, status string) ([]VerifiedEmailAddress, error)
}

// CampaignAPI defines the email marketing campaign operations.
type CampaignAPI interface {
	GetCampaigns(ctx context.Context, accessToken string, params CampaignListParams) (*ResultSet[Campaign], error)
	GetCampaign(ctx context.Context, accessToken, campaignID string) (*Campaign, error)
	AddCampaign(ctx context.Context, accessToken string, campaign *Campaign) (*Campaign, error)
	UpdateCampaign(ctx context.Context, accessToken string, campaign *Campaign) (*Campaign, error)
	DeleteCampaign(ctx context.Context, accessToken, campaignID string) (bool, error)
}

// ContactAPI defines the contact management operations.
type ContactAPI interface {
	GetContacts(ctx context.Context, accessToken string, params ContactListParams) (*ResultSet[Contact], error)
	GetContact(ctx context.Context, accessToken, contactID string) (*Contact, error)
	AddContact(ctx context.Context, accessToken string, contact *Contact, actionByVisitor bool) (*Contact, error)
	UpdateContact(ctx context.Context, accessToken string, contact *Contact, actionByVisitor bool) (*Contact, error)
	DeleteContact(ctx context.Context, accessToken, contactID string) (bool, error)
}

// ListAPI defines the contact list operations.
type ListAPI interface {
	GetLists(ctx context.Context, accessToken, modifiedSince string) ([]ContactList, error)
	GetList(ctx context.Context, accessToken, listID string) (*ContactList, error)
	AddList(ctx context.Context, accessToken string, list *ContactList) (*ContactList, error)
	UpdateList(ctx context.Context, accessToken string, list *ContactList) (*ContactList, error)
	DeleteList(ctx context.Context, accessToken, listID string) (bool, error)
	GetContactsFromList(ctx context.Context, accessToken, listID string, limit int, next string) (*ResultSet[Contact], error)
}

// ActivityAPI defines the bulk activity operations.
type ActivityAPI interface {
	GetActivities(ctx context.Context, accessToken string) ([]Activity, error)
	GetActivity(ctx context.Context, accessToken, activityID string) (*Activity, error)
	AddContacts(ctx context.Context, accessToken string, payload *AddContactsPayload) (*Activity, error)
	RemoveContactsFromLists(ctx context.Context, accessToken string, payload *RemoveFromListsPayload) (*Activity, error)
	ClearLists(ctx context.Context, accessToken string, listIDs []string) (*Activity, error)
	AddContactsFromFile(ctx context.Context, accessToken, fileName string, file io.Reader, lists []string) (*Activity, error)
}

var (
	_ AccountAPI  = (*AccountService)(nil)
	_ CampaignAPI = (*CampaignService)(nil)
	_ ContactAPI  = (*ContactService)(nil)
	_ ListAPI     = (*ListService)(nil)
	_ ActivityAPI = (*ActivityService)(nil)
)
