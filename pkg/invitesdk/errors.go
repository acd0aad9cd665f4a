package invitesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the invitation service. The lifecycle codes map
// one-to-one onto the service layer's sentinel errors.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeAlreadyInvited    = "already_invited"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInvalidState      = "invalid_state"
	ErrorCodeExpired           = "expired"
	ErrorCodeEmailMismatch     = "email_mismatch"
	ErrorCodeEmailRequired     = "email_required"
	ErrorCodeDomainNotAllowed  = "domain_not_allowed"
	ErrorCodeNotPersonal       = "not_personal"
	ErrorCodeEmailTaken        = "email_taken"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeServerError       = "server_error"
)

// APIError represents an error response from the invitation service. It
// implements the error interface so SDK callers can branch on Code.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "already_invited")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an *APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
