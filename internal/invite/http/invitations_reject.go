package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

type InvitationRejectHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Reject Invitation Endpoint
//	@Description	Decline a pending personal invitation. The email must match the invitation's bound address. Public invitations cannot be rejected.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string								true	"Invitation ID"
//	@Param			request	body	invitesdk.RejectInvitationRequest	true	"Rejection details"
//	@Success		204		"invitation rejected"
//	@Failure		400		{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/{id}/reject [post].
func (h *InvitationRejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req invitesdk.RejectInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	err := h.InvitationService.RejectInvitation(r.Context(), r.PathValue("id"), req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
