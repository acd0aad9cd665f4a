package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
)

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List the authenticated inviter's invitations. Supports pagination (limit/offset), one search clause (searchField/searchOperator/searchValue), one filter clause (filterField/filterOperator/filterValue) and sorting (sortBy/sortDirection). Search and filter are combined with AND.
//	@Tags			Invitations
//	@Produce		json
//	@Param			limit			query		int		false	"Page size (default 100, max 1000)"
//	@Param			offset			query		int		false	"Rows to skip"
//	@Param			searchField		query		string	false	"One of: email, name, domainWhitelist"
//	@Param			searchOperator	query		string	false	"One of: contains (default), starts_with, ends_with"
//	@Param			searchValue		query		string	false	"Value to search for (matched literally)"
//	@Param			filterField		query		string	false	"One of: id, name, email, inviterId, status, domainWhitelist, expiresAt, createdAt"
//	@Param			filterOperator	query		string	false	"One of: eq (default), ne, lt, lte, gt, gte (range operators only on expiresAt/createdAt)"
//	@Param			filterValue		query		string	false	"Value to compare against (RFC 3339 for time fields)"
//	@Param			sortBy			query		string	false	"Field to sort by (default createdAt)"
//	@Param			sortDirection	query		string	false	"asc (default) or desc"
//	@Success		200				{object}	invitesdk.ListInvitationsResponse	"invitations, limit, offset"
//	@Failure		400				{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		401				{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		500				{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inviterID := httpx.UserIDFromCtx(ctx)
	if inviterID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	q, err := queryFromRequest(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
			Error:            invitesdk.ErrorCodeInvalidRequest,
			ErrorDescription: err.Error(),
		})
		return
	}

	invitations, err := h.InvitationService.ListInvitations(ctx, inviterID, q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]invitesdk.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toInvitationResponse(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.ListInvitationsResponse{
		Invitations: out,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
}

// queryFromRequest decodes the list query DSL from URL parameters. Field and
// operator validation happens later in ListQuery.Normalize.
func queryFromRequest(r *http.Request) (store.ListQuery, error) {
	var q store.ListQuery
	params := r.URL.Query()

	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("limit must be an integer")
		}
		q.Limit = limit
	}
	if raw := params.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("offset must be an integer")
		}
		q.Offset = offset
	}

	q.SearchField = params.Get("searchField")
	q.SearchOperator = store.SearchOperator(params.Get("searchOperator"))
	q.SearchValue = params.Get("searchValue")

	q.FilterField = params.Get("filterField")
	q.FilterOperator = store.FilterOperator(params.Get("filterOperator"))
	q.FilterValue = params.Get("filterValue")

	q.SortBy = params.Get("sortBy")
	q.SortDirection = store.SortDirection(params.Get("sortDirection"))

	return q, nil
}
