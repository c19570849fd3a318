package ctct

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActivities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "a07e1ikxwuphd4nwjxl", "type": "ADD_CONTACTS", "status": "COMPLETE", "contact_count": 225},
			{"id": "a07e1i5nqamdcdm0mrw", "type": "CLEAR_CONTACTS_FROM_LISTS", "status": "QUEUED"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activities, err := client.Activities().GetActivities(context.Background(), "tok-1")
	require.NoError(t, err)

	require.Len(t, activities, 2)
	assert.Equal(t, "ADD_CONTACTS", activities[0].Type)
	assert.Equal(t, "QUEUED", activities[1].Status)
}

func TestGetActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/activities/a07e1ikxwuphd4nwjxl", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a07e1ikxwuphd4nwjxl","type":"ADD_CONTACTS","status":"COMPLETE","error_count":1,
			"errors":[{"message":"Invalid email address","line_number":14,"email_address":"bad"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activity, err := client.Activities().GetActivity(context.Background(), "tok-1", "a07e1ikxwuphd4nwjxl")
	require.NoError(t, err)

	assert.Equal(t, "COMPLETE", activity.Status)
	require.Len(t, activity.Errors, 1)
	assert.Equal(t, 14, activity.Errors[0].LineNumber)
}

func TestAddContactsActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/activities/addcontacts", r.URL.Path)

		var got AddContactsPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got.ImportData, 1)
		assert.Equal(t, []string{"jdoe@example.com"}, got.ImportData[0].EmailAddresses)
		assert.Equal(t, []string{"1", "3"}, got.Lists)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a07e1ikxwuphd4nwjxl","type":"ADD_CONTACTS","status":"QUEUED"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activity, err := client.Activities().AddContacts(context.Background(), "tok-1", &AddContactsPayload{
		ImportData: []ImportContact{{
			EmailAddresses: []string{"jdoe@example.com"},
			FirstName:      "John",
			LastName:       "Doe",
		}},
		Lists:       []string{"1", "3"},
		ColumnNames: []string{"EMAIL", "FIRST NAME", "LAST NAME"},
	})
	require.NoError(t, err)
	assert.Equal(t, "QUEUED", activity.Status)
}

func TestRemoveContactsFromListsActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/activities/removefromlists", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a07e1","type":"REMOVE_CONTACTS_FROM_LISTS","status":"QUEUED"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activity, err := client.Activities().RemoveContactsFromLists(context.Background(), "tok-1", &RemoveFromListsPayload{
		ImportData: []ImportContact{{EmailAddresses: []string{"jdoe@example.com"}}},
		Lists:      []string{"1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "REMOVE_CONTACTS_FROM_LISTS", activity.Type)
}

func TestClearListsActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/activities/clearlists", r.URL.Path)
		var got ClearListsPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, []string{"1", "3"}, got.Lists)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a07e2","type":"CLEAR_CONTACTS_FROM_LISTS","status":"QUEUED"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activity, err := client.Activities().ClearLists(context.Background(), "tok-1", []string{"1", "3"})
	require.NoError(t, err)
	assert.Equal(t, "QUEUED", activity.Status)
}

func TestAddContactsFromFileMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/activities/addcontactsfromfile", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "contacts.csv", r.FormValue("file_name"))
		assert.Equal(t, "1,3", r.FormValue("lists"))

		file, header, err := r.FormFile("data")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "contacts.csv", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "Email Address\njdoe@example.com\n", string(content))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a07e3","type":"ADD_CONTACTS","status":"PENDING"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activity, err := client.Activities().AddContactsFromFile(
		context.Background(),
		"tok-1",
		"contacts.csv",
		strings.NewReader("Email Address\njdoe@example.com\n"),
		[]string{"1", "3"},
	)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", activity.Status)
}
