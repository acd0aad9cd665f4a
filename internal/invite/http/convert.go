package http

import (
	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

func toInvitationResponse(inv domain.Invitation) invitesdk.InvitationResponse {
	return invitesdk.InvitationResponse{
		ID:              inv.ID,
		InviterID:       inv.InviterID,
		Email:           inv.Email,
		Name:            inv.Name,
		Status:          string(inv.Status),
		DomainWhitelist: inv.Whitelist.String(),
		ExpiresAt:       inv.ExpiresAt,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func toUserResponse(u domain.User) invitesdk.UserResponse {
	return invitesdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		InvitedBy:  u.InvitedBy,
		Attributes: u.Attributes,
		CreatedAt:  u.CreatedAt,
	}
}
