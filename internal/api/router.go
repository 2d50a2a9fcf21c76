package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtletrack/turtletrack/internal/api/recovery"
	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/metrics"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/services"
	"github.com/turtletrack/turtletrack/internal/store"
)

// Deps bundles what the router needs.
type Deps struct {
	Turtles   *services.TurtleService
	Beaches   *services.BeachService
	Nests     *services.NestService
	Stats     *services.StatsService
	Store     store.Store
	Session   *auth.Manager
	IsHealthy func() bool
}

// requireRole guards an API mutation: 401 for anonymous callers, 403
// when the session role is not in the allowed set.
func requireRole(session *auth.Manager, next http.HandlerFunc, allowed ...model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := session.Current()
		if u == nil {
			respond.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, role := range allowed {
			if u.Role == role {
				next(w, r)
				return
			}
		}
		respond.WriteError(w, http.StatusForbidden, "insufficient role")
	}
}

// NewRouter assembles the full HTTP surface: page routes, entity API,
// auth API, stats, health and metrics.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.Use(metrics.Instrument)

	turtleHandler := NewTurtleHandler(d.Turtles, d.Session)
	beachHandler := NewBeachHandler(d.Beaches, d.Session)
	nestHandler := NewNestHandler(d.Nests, d.Session)
	authHandler := NewAuthHandler(d.Session)
	statsHandler := NewStatsHandler(d.Stats)
	trackHandler := NewTrackHandler(d.Turtles, d.Store)
	healthHandler := NewHealthHandler(d.IsHealthy)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return requireRole(d.Session, h, model.RoleAdmin)
	}
	member := func(h http.HandlerFunc) http.HandlerFunc {
		return requireRole(d.Session, h, model.RoleAdmin, model.RoleVolunteer)
	}

	// Health and metrics
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Auth endpoints
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/api/auth/session", authHandler.Session).Methods("GET")

	// Turtle endpoints; mutations are admin-only
	router.HandleFunc("/api/turtles", turtleHandler.ListTurtles).Methods("GET")
	router.HandleFunc("/api/turtles", admin(turtleHandler.CreateTurtle)).Methods("POST")
	router.HandleFunc("/api/turtles/{turtleId}", turtleHandler.GetTurtle).Methods("GET")
	router.HandleFunc("/api/turtles/{turtleId}", admin(turtleHandler.UpdateTurtle)).Methods("PATCH")
	router.HandleFunc("/api/turtles/{turtleId}", admin(turtleHandler.DeleteTurtle)).Methods("DELETE")

	// Beach endpoints; mutations are admin-only
	router.HandleFunc("/api/beaches", beachHandler.ListBeaches).Methods("GET")
	router.HandleFunc("/api/beaches", admin(beachHandler.CreateBeach)).Methods("POST")
	router.HandleFunc("/api/beaches/{beachId}", beachHandler.GetBeach).Methods("GET")
	router.HandleFunc("/api/beaches/{beachId}", admin(beachHandler.UpdateBeach)).Methods("PATCH")
	router.HandleFunc("/api/beaches/{beachId}", admin(beachHandler.DeleteBeach)).Methods("DELETE")

	// Nest endpoints; volunteers declare, admins manage too
	router.HandleFunc("/api/nests", nestHandler.ListNests).Methods("GET")
	router.HandleFunc("/api/nests", member(nestHandler.DeclareNest)).Methods("POST")
	router.HandleFunc("/api/nests/{nestId}", nestHandler.GetNest).Methods("GET")
	router.HandleFunc("/api/nests/{nestId}", member(nestHandler.UpdateNest)).Methods("PATCH")
	router.HandleFunc("/api/nests/{nestId}", member(nestHandler.DeleteNest)).Methods("DELETE")

	// Tracking page view-model: filtered map collection and the shared
	// list/map selection
	router.HandleFunc("/api/track/map", trackHandler.MapView).Methods("GET")
	router.HandleFunc("/api/track/select", trackHandler.Select).Methods("POST")
	router.HandleFunc("/api/track/select", trackHandler.ClearSelection).Methods("DELETE")

	// Stats
	router.HandleFunc("/api/stats", statsHandler.GetStats).Methods("GET")

	// Page routes, including the guarded dashboards and the catch-all
	NewPageHandler(d.Session).Register(router)

	return router
}
