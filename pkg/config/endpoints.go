package config

// Endpoints maps logical endpoint names to URL path templates. Templates
// with a %s placeholder take a resource id via fmt.Sprintf. The defaults
// match the v2 API; override individual fields to point at a sandbox or a
// test server.
type Endpoints struct {
	// OAuth2 endpoints, resolved against AuthBaseURL
	Authorization string
	Token         string
	TokenInfo     string

	// Resource endpoints, resolved against APIBaseURL
	AccountInfo             string
	AccountVerifiedAddrs    string
	Campaigns               string
	Campaign                string
	Contacts                string
	Contact                 string
	Lists                   string
	List                    string
	ListContacts            string
	Activities              string
	Activity                string
	AddContactsActivity     string
	ClearListsActivity      string
	RemoveFromListsActivity string
	AddContactsFromFile     string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Authorization: "/idp/oauth2/auth",
		Token:         "/idp/oauth2/token",
		TokenInfo:     "/idp/oauth2/tokeninfo",

		AccountInfo:             "/v2/account/info",
		AccountVerifiedAddrs:    "/v2/account/verifiedemailaddresses",
		Campaigns:               "/v2/emailmarketing/campaigns",
		Campaign:                "/v2/emailmarketing/campaigns/%s",
		Contacts:                "/v2/contacts",
		Contact:                 "/v2/contacts/%s",
		Lists:                   "/v2/lists",
		List:                    "/v2/lists/%s",
		ListContacts:            "/v2/lists/%s/contacts",
		Activities:              "/v2/activities",
		Activity:                "/v2/activities/%s",
		AddContactsActivity:     "/v2/activities/addcontacts",
		ClearListsActivity:      "/v2/activities/clearlists",
		RemoveFromListsActivity: "/v2/activities/removefromlists",
		AddContactsFromFile:     "/v2/activities/addcontactsfromfile",
	}
}
