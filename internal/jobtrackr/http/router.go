package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/aussiebroadwan/jobtrackr/api/jobtrackr" // Swagger docs
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/slogx"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Limiters builds the limiter behind each rate-limited route. Defaults to
	// in-process token buckets.
	Limiters httpx.LimiterFactory

	// LimiterPing, when set, is reported by /readyz.
	LimiterPing func(context.Context) error

	TokenService  *service.TokenService
	AuthService   *service.AuthService
	JobService    *service.JobService
	StatsService  *service.StatsService
	ExportService *service.ExportService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, corsOrigin string) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limiters:     httpx.MemoryLimiterFactory,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerJobs()
	r.registerStats()
	r.registerExport()
	r.registerSystem()

	r.Mux.Handle("/swagger/",
		httpx.Chain(httpSwagger.Handler(),
			r.byIP("swagger", httpx.PublicLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						JobTrackr API
//	@version					0.1.0
//	@description				Personal job-application tracker. Register or log in to obtain a bearer token, then manage your job applications, read statistics and export them as CSV, Excel or PDF.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/jobtrackr
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// byIP rate limits a route by client IP. name keeps each route's budget separate.
func (r *Router) byIP(name string, cfg httpx.RateLimitConfig) httpx.Middleware {
	return httpx.RateLimitWith(r.Limiters(name, cfg), cfg, httpx.IPKeyExtractor)
}

// byUser rate limits a route by authenticated user. It must run after
// AuthnMiddleware.
func (r *Router) byUser(name string, cfg httpx.RateLimitConfig) httpx.Middleware {
	return httpx.RateLimitWith(r.Limiters(name, cfg), cfg, httpx.UserKeyExtractor)
}

// secured chains authentication and a per-user rate limit in front of h.
func (r *Router) secured(h http.Handler, name string, cfg httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.TokenService), // verify bearer token
		r.byUser(name, cfg),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP to slow down guessing
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			r.byIP("auth.register", httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			r.byIP("auth.login", httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/profile",
		r.secured(http.HandlerFunc(h.HandleProfile), "auth.profile", httpx.LenientLimit))
}

func (r *Router) registerJobs() {
	h := &JobsHandler{JobService: r.JobService}

	// Writes - moderate; reads - lenient
	r.Mux.Handle("POST /api/jobs",
		r.secured(http.HandlerFunc(h.HandleCreate), "jobs.create", httpx.ModerateLimit))
	r.Mux.Handle("GET /api/jobs",
		r.secured(http.HandlerFunc(h.HandleList), "jobs.list", httpx.LenientLimit))
	r.Mux.Handle("GET /api/jobs/stats",
		r.secured(http.HandlerFunc(h.HandleStatusCounts), "jobs.stats", httpx.LenientLimit))
	r.Mux.Handle("GET /api/jobs/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), "jobs.get", httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/jobs/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), "jobs.update", httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/jobs/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), "jobs.delete", httpx.ModerateLimit))
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}
	r.Mux.Handle("GET /api/stats", r.secured(h, "stats", httpx.LenientLimit))
}

func (r *Router) registerExport() {
	h := &ExportHandler{ExportService: r.ExportService}

	// All formats share one moderate budget.
	r.Mux.Handle("GET /api/jobs/export/{format}",
		r.secured(h, "export", httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.byIP("livez", httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.LimiterPing),
			r.byIP("readyz", httpx.LenientLimit),
		),
	)
}
