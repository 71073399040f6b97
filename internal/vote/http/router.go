package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"

	_ "github.com/aussiebroadwan/ballotbox/api/vote" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	UserService      *service.UserService
	ClubService      *service.ClubService
	ElectionService  *service.ElectionService
	VoteService      *service.VoteService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
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
	r.registerUsers()
	r.registerClubs()
	r.registerElections()
	r.registerVote()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Ballotbox Voting Service API
//	@version		0.1.0
//	@description	Club elections with anonymous ballots. Members cast one ballot per election while it is open; results are published once voting ends.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/ballotbox
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with bearer authentication, optional scope checks and a
// per-user rate limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(scopes) > 0 {
		mws = append(mws, httpx.RequireAnyScope(scopes...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Register and login - strict rate limit by IP (credential endpoints)
	r.Mux.Handle("POST /api/users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /api/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("GET /api/users/me", r.authed(h.HandleMe, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/users/me", r.authed(h.HandleUpdateMe, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/users/search", r.authed(h.HandleSearch, httpx.LenientLimit))
	r.Mux.Handle("GET /api/users", r.authed(h.HandleList, httpx.ModerateLimit, domain.ScopeAdminRead))
	r.Mux.Handle("DELETE /api/users/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit, domain.ScopeAdminWrite))
}

func (r *Router) registerClubs() {
	h := &ClubsHandler{ClubService: r.ClubService}

	// Public reads
	r.Mux.Handle("GET /api/clubs",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/clubs/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)))

	r.Mux.Handle("GET /api/clubs/managed", r.authed(h.HandleManaged, httpx.LenientLimit))
	r.Mux.Handle("POST /api/clubs", r.authed(h.HandleCreate, httpx.ModerateLimit, domain.ScopeAdminWrite))
	r.Mux.Handle("PUT /api/clubs/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/clubs/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit, domain.ScopeAdminWrite))

	r.Mux.Handle("POST /api/clubs/{clubId}/members", r.authed(h.HandleAddMember, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/clubs/{clubId}/members/{memberId}", r.authed(h.HandleRemoveMember, httpx.ModerateLimit))
	r.Mux.Handle("POST /api/clubs/{clubId}/admins", r.authed(h.HandleAddAdmin, httpx.ModerateLimit))
}

func (r *Router) registerElections() {
	h := &ElectionsHandler{ElectionService: r.ElectionService}

	r.Mux.Handle("POST /api/elections", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/elections/active", r.authed(h.HandleActive, httpx.LenientLimit))
	r.Mux.Handle("GET /api/elections/club/{clubId}", r.authed(h.HandleByClub, httpx.LenientLimit))
	r.Mux.Handle("GET /api/elections/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/elections/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/elections/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))

	// "/api/elections/{id}/analytics" would overlap "/api/elections/club/{clubId}"
	// in ServeMux, so the sub-resource is matched by name.
	r.Mux.Handle("GET /api/elections/{id}/{view}", r.authed(func(w http.ResponseWriter, req *http.Request) {
		if req.PathValue("view") != "analytics" {
			httpx.WriteError(w, http.StatusNotFound, votesdk.ErrorCodeNotFound, "not found")
			return
		}
		h.HandleAnalytics(w, req)
	}, httpx.LenientLimit))
}

func (r *Router) registerVote() {
	h := &VoteHandler{VoteService: r.VoteService}

	// Casting is a write - moderate rate limit by user
	r.Mux.Handle("POST /api/vote/election/{electionId}/cast", r.authed(h.HandleCast, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/vote/election/{electionId}/results", r.authed(h.HandleResults, httpx.LenientLimit))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /api/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
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
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
