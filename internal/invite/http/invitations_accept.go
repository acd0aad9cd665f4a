package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Accept a pending invitation and provision the invitee's user account. Personal invitations require the email to match the bound address (or omit it); public invitations require an email, checked against the domain whitelist. When auto sign-in is enabled the response carries a session token.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Invitation ID"
//	@Param			request	body		invitesdk.AcceptInvitationRequest	true	"Acceptance details"
//	@Success		200		{object}	invitesdk.AcceptInvitationResponse	"invitation, user, sessionToken"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req invitesdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	res, err := h.InvitationService.AcceptInvitation(r.Context(), service.AcceptInvitationParams{
		InvitationID: r.PathValue("id"),
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Attributes:   req.Attributes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.AcceptInvitationResponse{
		Invitation:   toInvitationResponse(res.Invitation),
		User:         toUserResponse(res.User),
		SessionToken: res.SessionToken,
	})
}
