package ctct

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPITimeFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339 with millis", `"2013-01-23T13:48:44.108Z"`, time.Date(2013, 1, 23, 13, 48, 44, 108000000, time.UTC)},
		{"rfc3339", `"2013-01-23T13:48:44Z"`, time.Date(2013, 1, 23, 13, 48, 44, 0, time.UTC)},
		{"no timezone with millis", `"2020-09-09T04:04:02.257"`, time.Date(2020, 9, 9, 4, 4, 2, 0, time.UTC)},
		{"no timezone", `"2020-09-09T04:04:02"`, time.Date(2020, 9, 9, 4, 4, 2, 0, time.UTC)},
		{"empty", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got APITime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestAPITimeUnparseable(t *testing.T) {
	var got APITime
	assert.Error(t, json.Unmarshal([]byte(`"23/01/2013"`), &got))
}

func TestCampaignRoundTrip(t *testing.T) {
	created := APITime{Time: time.Date(2013, 1, 23, 13, 48, 44, 0, time.UTC)}
	original := Campaign{
		ID:           "1100394165290",
		Name:         "CampaignName-05965ddb",
		Subject:      "CampaignSubject",
		Status:       "SENT",
		FromName:     "My Organization",
		FromEmail:    "from@example.com",
		ReplyToEmail: "reply@example.com",
		TemplateType: "CUSTOM",
		CreatedDate:  &created,
		PermalinkURL: "https://ui.example.com/emails/1100394165290",
		TrackingSummary: &TrackingSummary{
			Sends: 50, Opens: 30, Clicks: 12, Bounces: 2,
		},
		SentToContactLists: []ContactListRef{{ID: "3"}, {ID: "7"}},
		ClickThroughDetails: []ClickThroughDetail{
			{URL: "https://example.com", URLUID: "1100394165291", ClickCount: 10},
		},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Campaign
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestAccountInfoRoundTrip(t *testing.T) {
	original := AccountInfo{
		Website:          "https://example.com",
		OrganizationName: "My Organization",
		TimeZone:         "US/Eastern",
		FirstName:        "Mary Jane",
		LastName:         "Doe",
		Email:            "mjdoe@example.com",
		CountryCode:      "US",
		StateCode:        "MA",
		OrganizationAddresses: []AccountAddress{
			{Line1: "123 Maple Street", City: "Waltham", StateCode: "MA", CountryCode: "US", PostalCode: "02451"},
		},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AccountInfo
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestActivityRoundTrip(t *testing.T) {
	start := APITime{Time: time.Date(2013, 2, 13, 14, 43, 1, 0, time.UTC)}
	original := Activity{
		ID:           "a07e1ikxwuphd4nwjxl",
		Type:         "ADD_CONTACTS",
		Status:       "COMPLETE",
		StartDate:    &start,
		ErrorCount:   1,
		ContactCount: 225,
		Errors: []ActivityError{
			{Message: "Invalid email address", LineNumber: 14, EmailAddress: "not-an-email"},
		},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Activity
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestResultSetDecode(t *testing.T) {
	body := []byte(`{
		"meta": {"pagination": {"next": "cursor123"}},
		"results": [
			{"id": "1", "name": "first"},
			{"id": "2", "name": "second"}
		]
	}`)

	var page ResultSet[Campaign]
	require.NoError(t, json.Unmarshal(body, &page))

	require.Len(t, page.Results, 2)
	assert.Equal(t, "first", page.Results[0].Name)
	assert.Equal(t, "second", page.Results[1].Name)
	assert.Equal(t, "cursor123", page.NextCursor())
}

func TestResultSetLastPage(t *testing.T) {
	var page ResultSet[Contact]
	require.NoError(t, json.Unmarshal([]byte(`{"meta":{"pagination":{}},"results":[]}`), &page))
	assert.Empty(t, page.NextCursor())
}

func TestTokenResponseAccessors(t *testing.T) {
	var token TokenResponse
	require.NoError(t, json.Unmarshal([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":99}`), &token))
	assert.Equal(t, "tok", token.AccessToken())
	assert.Equal(t, "Bearer", token.TokenType())

	// Missing keys read as empty, not panic.
	assert.Empty(t, TokenResponse{}.AccessToken())
}
