package http

import (
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

type InvitationCancelHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Cancel Invitation Endpoint
//	@Description	Withdraw a pending invitation. Subject to the service's cancel policy; by default only the inviter who created it may cancel.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"invitation canceled"
//	@Failure		401	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/cancel [post].
func (h *InvitationCancelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID := httpx.UserIDFromCtx(ctx)
	if actorID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	if err := h.InvitationService.CancelInvitation(ctx, actorID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
