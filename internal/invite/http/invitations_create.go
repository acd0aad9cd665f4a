package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Create a new invitation. Providing an email makes the invitation personal; omitting it creates a public invitation, optionally restricted by a domain whitelist. Setting resend refreshes an existing pending invitation for the same email instead of failing.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.CreateInvitationRequest	true	"Invitation to create"
//	@Success		201		{object}	invitesdk.InvitationResponse		"the created (or refreshed) invitation"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	// The authenticated user is the inviter.
	inviterID := httpx.UserIDFromCtx(ctx)
	if inviterID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	inv, err := h.InvitationService.CreateInvitation(ctx, service.CreateInvitationParams{
		InviterID:       inviterID,
		Email:           req.Email,
		Name:            req.Name,
		DomainWhitelist: req.DomainWhitelist,
		Resend:          req.Resend,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}
