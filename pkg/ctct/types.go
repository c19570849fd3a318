package ctct

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// APITime is a custom time type that handles the API's date formats. Most
// dates come back as RFC3339 ("2013-01-23T13:48:44.108Z"), but some legacy
// endpoints omit the timezone.
type APITime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for APITime
func (t *APITime) UnmarshalJSON(data []byte) error {
	var timeStr string
	if err := json.Unmarshal(data, &timeStr); err != nil {
		return err
	}

	if timeStr == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, format := range []string{time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.Parse(format, timeStr); err == nil {
			t.Time = parsed
			return nil
		}
	}

	// No timezone. Strip fractional seconds if present and parse the rest.
	if idx := strings.Index(timeStr, "."); idx != -1 {
		if parsed, err := time.Parse("2006-01-02T15:04:05", timeStr[:idx]); err == nil {
			t.Time = parsed
			return nil
		}
	}
	if parsed, err := time.Parse("2006-01-02T15:04:05", timeStr); err == nil {
		t.Time = parsed
		return nil
	}

	return fmt.Errorf("unable to parse time string: %s", timeStr)
}

// MarshalJSON implements json.Marshaler for APITime
func (t APITime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// TokenResponse is the decoded JSON object returned by the token endpoint.
// The provider's schema is not enforced here beyond "valid JSON object";
// accessors cover the usual keys.
type TokenResponse map[string]interface{}

func (t TokenResponse) AccessToken() string { return stringValue(t, "access_token") }
func (t TokenResponse) TokenType() string   { return stringValue(t, "token_type") }

// TokenInfo is the decoded JSON object returned by the token introspection
// endpoint.
type TokenInfo map[string]interface{}

func (t TokenInfo) ClientID() string { return stringValue(t, "client_id") }
func (t TokenInfo) UserName() string { return stringValue(t, "user_name") }

func stringValue(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Pagination carries the cursor for the next page of a listing response.
// Cursor traversal is the caller's job.
type Pagination struct {
	Next     string `json:"next,omitempty"`
	NextLink string `json:"next_link,omitempty"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// ResultSet is one page of listing results plus its pagination metadata.
type ResultSet[T any] struct {
	Results []T  `json:"results"`
	Meta    Meta `json:"meta"`
}

// NextCursor returns the next-page cursor, or "" on the last page.
func (r *ResultSet[T]) NextCursor() string {
	if r.Meta.Pagination.Next != "" {
		return r.Meta.Pagination.Next
	}
	return r.Meta.Pagination.NextLink
}

// AccountAddress is an organization address on the account.
type AccountAddress struct {
	Line1       string `json:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"`
	Line3       string `json:"line3,omitempty"`
	City        string `json:"city,omitempty"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
}

// AccountInfo is the account-owner profile.
type AccountInfo struct {
	Website               string           `json:"website,omitempty"`
	OrganizationName      string           `json:"organization_name,omitempty"`
	TimeZone              string           `json:"time_zone,omitempty"`
	FirstName             string           `json:"first_name,omitempty"`
	LastName              string           `json:"last_name,omitempty"`
	Email                 string           `json:"email,omitempty"`
	Phone                 string           `json:"phone,omitempty"`
	CompanyLogo           string           `json:"company_logo,omitempty"`
	CountryCode           string           `json:"country_code,omitempty"`
	StateCode             string           `json:"state_code,omitempty"`
	OrganizationAddresses []AccountAddress `json:"organization_addresses,omitempty"`
}

type VerifiedEmailAddress struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status,omitempty"`
}

// ContactListRef names a list a campaign was sent to or a contact belongs to.
type ContactListRef struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

type ClickThroughDetail struct {
	URL        string `json:"url,omitempty"`
	URLUID     string `json:"url_uid,omitempty"`
	ClickCount int    `json:"click_count,omitempty"`
}

type TrackingSummary struct {
	Sends    int `json:"sends,omitempty"`
	Opens    int `json:"opens,omitempty"`
	Clicks   int `json:"clicks,omitempty"`
	Forwards int `json:"forwards,omitempty"`
	Unopened int `json:"unopened,omitempty"`
	Bounces  int `json:"bounces,omitempty"`
}

type MessageFooter struct {
	City                 string `json:"city,omitempty"`
	State                string `json:"state,omitempty"`
	Country              string `json:"country,omitempty"`
	OrganizationName     string `json:"organization_name,omitempty"`
	AddressLine1         string `json:"address_line_1,omitempty"`
	AddressLine2         string `json:"address_line_2,omitempty"`
	AddressLine3         string `json:"address_line_3,omitempty"`
	InternationalState   string `json:"international_state,omitempty"`
	PostalCode           string `json:"postal_code,omitempty"`
	IncludeForwardEmail  bool   `json:"include_forward_email,omitempty"`
	ForwardEmailLinkText string `json:"forward_email_link_text,omitempty"`
	IncludeSubscribeLink bool   `json:"include_subscribe_link,omitempty"`
	SubscribeLinkText    string `json:"subscribe_link_text,omitempty"`
}

// Campaign is an email marketing campaign.
type Campaign struct {
	ID                     string               `json:"id,omitempty"`
	Name                   string               `json:"name,omitempty"`
	Subject                string               `json:"subject,omitempty"`
	Status                 string               `json:"status,omitempty"`
	FromName               string               `json:"from_name,omitempty"`
	FromEmail              string               `json:"from_email,omitempty"`
	ReplyToEmail           string               `json:"reply_to_email,omitempty"`
	TemplateType           string               `json:"template_type,omitempty"`
	CreatedDate            *APITime             `json:"created_date,omitempty"`
	ModifiedDate           *APITime             `json:"modified_date,omitempty"`
	LastRunDate            *APITime             `json:"last_run_date,omitempty"`
	NextRunDate            *APITime             `json:"next_run_date,omitempty"`
	PermissionReminder     bool                 `json:"is_permission_reminder_enabled,omitempty"`
	PermissionReminderText string               `json:"permission_reminder_text,omitempty"`
	ViewAsWebpage          bool                 `json:"is_view_as_webpage_enabled,omitempty"`
	GreetingSalutations    string               `json:"greeting_salutations,omitempty"`
	GreetingName           string               `json:"greeting_name,omitempty"`
	GreetingString         string               `json:"greeting_string,omitempty"`
	EmailContent           string               `json:"email_content,omitempty"`
	EmailContentFormat     string               `json:"email_content_format,omitempty"`
	TextContent            string               `json:"text_content,omitempty"`
	StyleSheet             string               `json:"style_sheet,omitempty"`
	PermalinkURL           string               `json:"permalink_url,omitempty"`
	MessageFooter          *MessageFooter       `json:"message_footer,omitempty"`
	TrackingSummary        *TrackingSummary     `json:"tracking_summary,omitempty"`
	SentToContactLists     []ContactListRef     `json:"sent_to_contact_lists,omitempty"`
	ClickThroughDetails    []ClickThroughDetail `json:"click_through_details,omitempty"`
}

type EmailAddress struct {
	ID            string   `json:"id,omitempty"`
	Status        string   `json:"status,omitempty"`
	ConfirmStatus string   `json:"confirm_status,omitempty"`
	OptInSource   string   `json:"opt_in_source,omitempty"`
	OptInDate     *APITime `json:"opt_in_date,omitempty"`
	OptOutDate    *APITime `json:"opt_out_date,omitempty"`
	EmailAddress  string   `json:"email_address"`
}

type ContactAddress struct {
	ID            string `json:"id,omitempty"`
	AddressType   string `json:"address_type,omitempty"`
	Line1         string `json:"line1,omitempty"`
	Line2         string `json:"line2,omitempty"`
	Line3         string `json:"line3,omitempty"`
	City          string `json:"city,omitempty"`
	StateCode     string `json:"state_code,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	SubPostalCode string `json:"sub_postal_code,omitempty"`
}

type Note struct {
	ID          string   `json:"id,omitempty"`
	Note        string   `json:"note,omitempty"`
	CreatedDate *APITime `json:"created_date,omitempty"`
}

type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Contact is a subscriber record.
type Contact struct {
	ID             string           `json:"id,omitempty"`
	Status         string           `json:"status,omitempty"`
	FirstName      string           `json:"first_name,omitempty"`
	MiddleName     string           `json:"middle_name,omitempty"`
	LastName       string           `json:"last_name,omitempty"`
	PrefixName     string           `json:"prefix_name,omitempty"`
	JobTitle       string           `json:"job_title,omitempty"`
	CompanyName    string           `json:"company_name,omitempty"`
	HomePhone      string           `json:"home_phone,omitempty"`
	WorkPhone      string           `json:"work_phone,omitempty"`
	CellPhone      string           `json:"cell_phone,omitempty"`
	Fax            string           `json:"fax,omitempty"`
	Confirmed      bool             `json:"confirmed,omitempty"`
	Source         string           `json:"source,omitempty"`
	SourceDetails  string           `json:"source_details,omitempty"`
	EmailAddresses []EmailAddress   `json:"email_addresses,omitempty"`
	Addresses      []ContactAddress `json:"addresses,omitempty"`
	Notes          []Note           `json:"notes,omitempty"`
	Lists          []ContactListRef `json:"lists,omitempty"`
	CustomFields   []CustomField    `json:"custom_fields,omitempty"`
	CreatedDate    *APITime         `json:"created_date,omitempty"`
	ModifiedDate   *APITime         `json:"modified_date,omitempty"`
}

// ContactList is a named grouping of contacts.
type ContactList struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Status       string   `json:"status,omitempty"`
	ContactCount int      `json:"contact_count,omitempty"`
	CreatedDate  *APITime `json:"created_date,omitempty"`
	ModifiedDate *APITime `json:"modified_date,omitempty"`
}

type ActivityError struct {
	Message      string `json:"message,omitempty"`
	LineNumber   int    `json:"line_number,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// Activity is an asynchronous bulk job tracked by the API. The SDK submits
// and queries activities; it never polls for completion.
type Activity struct {
	ID           string          `json:"id,omitempty"`
	Type         string          `json:"type,omitempty"`
	Status       string          `json:"status,omitempty"`
	StartDate    *APITime        `json:"start_date,omitempty"`
	FinishDate   *APITime        `json:"finish_date,omitempty"`
	CreatedDate  *APITime        `json:"created_date,omitempty"`
	ErrorCount   int             `json:"error_count,omitempty"`
	ContactCount int             `json:"contact_count,omitempty"`
	Errors       []ActivityError `json:"errors,omitempty"`
	Warnings     []ActivityError `json:"warnings,omitempty"`
}

// ImportContact is one row of a bulk add-contacts submission.
type ImportContact struct {
	EmailAddresses []string `json:"email_addresses"`
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	JobTitle       string   `json:"job_title,omitempty"`
	WorkPhone      string   `json:"work_phone,omitempty"`
	HomePhone      string   `json:"home_phone,omitempty"`
}

// AddContactsPayload is the body for a bulk add-contacts activity.
type AddContactsPayload struct {
	ImportData  []ImportContact `json:"import_data"`
	Lists       []string        `json:"lists"`
	ColumnNames []string        `json:"column_names,omitempty"`
}

// RemoveFromListsPayload is the body for a bulk remove-contacts activity.
type RemoveFromListsPayload struct {
	ImportData []ImportContact `json:"import_data"`
	Lists      []string        `json:"lists"`
}

// ClearListsPayload is the body for a clear-lists activity.
type ClearListsPayload struct {
	Lists []string `json:"lists"`
}
