package invitesdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the app invitation service.
// It provides access to the unauthenticated invitee-side operations (get,
// accept, reject) and can create authenticated Sessions for inviter-side
// operations (create, list, cancel).
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new invitation service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken creates an authenticated Session from a session token issued by
// the host framework (or by this service's auto sign-in). The SDK does not
// refresh tokens; obtain a fresh one from the host when it expires.
func (c *SDKClient) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Session is an authenticated view of the client, carrying a bearer token.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the session's bearer token.
func (s *Session) Token() string { return s.token }
