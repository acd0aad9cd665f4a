package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/httpx"
	"github.com/aussiebroadwan/appinvite/pkg/jwtx"
	"github.com/aussiebroadwan/appinvite/pkg/slogx"

	_ "github.com/aussiebroadwan/appinvite/api/invite" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes expected on the host framework's session tokens.
const (
	ScopeInviteRead  = "invite:read"
	ScopeInviteWrite = "invite:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	InvitationService *service.InvitationService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			App Invitation Service API
//	@version		0.1.0
//	@description	Invitation add-on for the authentication framework: inviters issue personal or public invitations, invitees accept or reject them, and accepted invitees are provisioned as users.
//	@description
//	@description				Inviter-side endpoints require a session token minted by the host framework with the invite:read / invite:write scopes. Invitee-side endpoints are unauthenticated.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/appinvite
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	createHandler := &InvitationCreateHandler{InvitationService: r.InvitationService}
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	getHandler := &InvitationGetHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}
	rejectHandler := &InvitationRejectHandler{InvitationService: r.InvitationService}
	cancelHandler := &InvitationCancelHandler{InvitationService: r.InvitationService}

	// POST /invitations - authenticated write, moderate rate limit by user
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeInviteWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invitations - authenticated read, lenient rate limit by user
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeInviteRead, ScopeInviteWrite),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /invitations/{id} - public so an invitee can inspect an invitation
	// before deciding on it
	r.Mux.Handle("GET /v1/invitations/{id}",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /invitations/{id}/accept - strict rate limit by IP (public
	// account-creation endpoint)
	r.Mux.Handle("POST /v1/invitations/{id}/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invitations/{id}/reject - strict rate limit by IP
	r.Mux.Handle("POST /v1/invitations/{id}/reject",
		httpx.Chain(rejectHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invitations/{id}/cancel - authenticated write, moderate rate limit
	r.Mux.Handle("POST /v1/invitations/{id}/cancel",
		httpx.Chain(cancelHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeInviteWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
