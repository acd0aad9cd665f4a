package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
	"github.com/aussiebroadwan/appinvite/pkg/slogx"
)

// writeServiceError maps the service layer's sentinel errors onto the wire
// error envelope. Handlers share this so every endpoint reports a lifecycle
// error the same way.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var body invitesdk.ErrorResponse

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		status = http.StatusBadRequest
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "The request is malformed or missing required parameters",
		}
	case errors.Is(err, store.ErrInvalidQuery):
		status = http.StatusBadRequest
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeInvalidRequest,
			ErrorDescription: err.Error(),
		}
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeForbidden,
			ErrorDescription: "Not authorized for this invitation operation",
		}
	case errors.Is(err, service.ErrAlreadyInvited):
		status = http.StatusConflict
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeAlreadyInvited,
			ErrorDescription: "A pending invitation already exists for this email",
		}
	case errors.Is(err, service.ErrInvitationNotFound):
		status = http.StatusNotFound
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeNotFound,
			ErrorDescription: "Invitation not found",
		}
	case errors.Is(err, service.ErrInvitationExpired):
		status = http.StatusGone
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeExpired,
			ErrorDescription: "The invitation has expired",
		}
	case errors.Is(err, service.ErrInvalidState):
		status = http.StatusConflict
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeInvalidState,
			ErrorDescription: "The invitation is no longer pending",
		}
	case errors.Is(err, service.ErrEmailMismatch):
		status = http.StatusForbidden
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeEmailMismatch,
			ErrorDescription: "Email does not match the invitation",
		}
	case errors.Is(err, service.ErrEmailRequired):
		status = http.StatusBadRequest
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeEmailRequired,
			ErrorDescription: "An email address is required to accept this invitation",
		}
	case errors.Is(err, service.ErrDomainNotAllowed):
		status = http.StatusForbidden
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeDomainNotAllowed,
			ErrorDescription: "The email domain is not allowed by this invitation",
		}
	case errors.Is(err, service.ErrNotPersonal):
		status = http.StatusBadRequest
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeNotPersonal,
			ErrorDescription: "Only personal invitations can be rejected",
		}
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeEmailTaken,
			ErrorDescription: "A user with this email already exists",
		}
	default:
		slogx.FromContext(r.Context()).Error("invitation request failed", "err", err)
		status = http.StatusInternalServerError
		body = invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeServerError,
			ErrorDescription: "Internal server error",
		}
	}

	httpx.WriteJSON(w, status, body)
}

func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
		Error:            invitesdk.ErrorCodeInvalidRequest,
		ErrorDescription: "Invalid JSON body",
	})
}
