package invitesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateInvitation creates a new invitation on behalf of the authenticated
// inviter.
// Requires: invite:write scope.
func (s *Session) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*InvitationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invitations",
		bytes.NewReader(body), map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, err
	}

	var inv InvitationResponse
	if err := decodeJSON(resp, &inv, http.StatusCreated); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListOptions are the query parameters for ListInvitations. Zero values are
// omitted and the server applies its defaults.
type ListOptions struct {
	Limit  int
	Offset int

	SearchField    string
	SearchOperator string // contains, starts_with, ends_with
	SearchValue    string

	FilterField    string
	FilterOperator string // eq, ne, lt, lte, gt, gte
	FilterValue    string

	SortBy        string
	SortDirection string // asc, desc
}

func (o ListOptions) query() string {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.SearchField != "" {
		v.Set("searchField", o.SearchField)
	}
	if o.SearchOperator != "" {
		v.Set("searchOperator", o.SearchOperator)
	}
	if o.SearchValue != "" {
		v.Set("searchValue", o.SearchValue)
	}
	if o.FilterField != "" {
		v.Set("filterField", o.FilterField)
	}
	if o.FilterOperator != "" {
		v.Set("filterOperator", o.FilterOperator)
	}
	if o.FilterValue != "" {
		v.Set("filterValue", o.FilterValue)
	}
	if o.SortBy != "" {
		v.Set("sortBy", o.SortBy)
	}
	if o.SortDirection != "" {
		v.Set("sortDirection", o.SortDirection)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListInvitations returns the authenticated inviter's invitations.
// Requires: invite:read scope.
func (s *Session) ListInvitations(ctx context.Context, opts ListOptions) (*ListInvitationsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invitations"+opts.query(), nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListInvitationsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// CancelInvitation withdraws a pending invitation.
// Requires: invite:write scope, and the service's cancel policy must permit
// the caller.
func (s *Session) CancelInvitation(ctx context.Context, invitationID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/invitations/"+url.PathEscape(invitationID)+"/cancel", nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetInvitation fetches an invitation by id. This is unauthenticated so an
// invitee can inspect an invitation before deciding on it.
func (c *SDKClient) GetInvitation(ctx context.Context, invitationID string) (*InvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet,
		"/v1/invitations/"+url.PathEscape(invitationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var inv InvitationResponse
	if err := decodeJSON(resp, &inv, http.StatusOK); err != nil {
		return nil, err
	}
	return &inv, nil
}

// AcceptInvitation accepts an invitation and provisions the invitee's
// account. Unauthenticated: the invitee does not exist as a user yet.
func (c *SDKClient) AcceptInvitation(
	ctx context.Context,
	invitationID string,
	req AcceptInvitationRequest,
) (*AcceptInvitationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost,
		"/v1/invitations/"+url.PathEscape(invitationID)+"/accept",
		bytes.NewReader(body), map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, err
	}

	var accept AcceptInvitationResponse
	if err := decodeJSON(resp, &accept, http.StatusOK); err != nil {
		return nil, err
	}
	return &accept, nil
}

// RejectInvitation declines a personal invitation on behalf of its invitee.
// Unauthenticated, like AcceptInvitation.
func (c *SDKClient) RejectInvitation(ctx context.Context, invitationID, email string) error {
	body, err := json.Marshal(RejectInvitationRequest{Email: email})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost,
		"/v1/invitations/"+url.PathEscape(invitationID)+"/reject",
		bytes.NewReader(body), map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
