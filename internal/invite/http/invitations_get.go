package http

import (
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
)

type InvitationGetHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Get Invitation Endpoint
//	@Description	Fetch a single invitation by id. Unauthenticated so an invitee can inspect an invitation before accepting or rejecting it.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string							true	"Invitation ID"
//	@Success		200	{object}	invitesdk.InvitationResponse	"the invitation"
//	@Failure		404	{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invitations/{id} [get].
func (h *InvitationGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationService.GetInvitation(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv))
}
