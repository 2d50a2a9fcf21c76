package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/turtletrack/turtletrack/internal/api/recovery"
	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/metrics"
	"github.com/turtletrack/turtletrack/internal/model"
)

// PageHandler serves the page routes as JSON descriptors: which page
// the path resolves to and, for detail pages, the entity id. A web
// client renders them; everything else about a page lives behind the
// /api endpoints.
type PageHandler struct {
	session *auth.Manager
}

func NewPageHandler(session *auth.Manager) *PageHandler { return &PageHandler{session: session} }

func (h *PageHandler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{"page": name, "path": r.URL.Path}
		if id, ok := mux.Vars(r)["id"]; ok {
			body["id"] = id
		}
		respond.WriteJSON(w, http.StatusOK, body)
	}
}

// NotFound is the catch-all: a structured 404 that points back home.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusNotFound, map[string]interface{}{
		"error": "Page not found",
		"code":  http.StatusNotFound,
		"path":  r.URL.Path,
		"home":  auth.PathHome,
	})
}

// guard wraps a page handler with the role gate. Redirects carry the
// originally requested path in a "from" query parameter so the login
// page can return to it.
func (h *PageHandler) guard(next http.HandlerFunc, allowed ...model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := auth.Decide(h.session.Current(), allowed, r.URL.Path)
		switch d.Action {
		case auth.Render:
			next(w, r)
		case auth.RedirectLogin:
			target := d.Target + "?from=" + url.QueryEscape(d.From)
			http.Redirect(w, r, target, http.StatusFound)
		default:
			http.Redirect(w, r, d.Target, http.StatusFound)
		}
	}
}

// Register mounts the page routes on the router.
func (h *PageHandler) Register(r *mux.Router) {
	r.HandleFunc("/", h.page("home")).Methods("GET")
	r.HandleFunc("/track", h.page("track")).Methods("GET")
	r.HandleFunc("/turtles", h.page("turtles")).Methods("GET")
	r.HandleFunc("/turtles/{id}", h.page("turtle-detail")).Methods("GET")
	r.HandleFunc("/beaches", h.page("beaches")).Methods("GET")
	r.HandleFunc("/beaches/{id}", h.page("beach-detail")).Methods("GET")
	r.HandleFunc("/education", h.page("education")).Methods("GET")

	r.HandleFunc(auth.PathAdminLogin, h.page("admin-login")).Methods("GET")
	r.HandleFunc(auth.PathVolunteerLogin, h.page("volunteer-login")).Methods("GET")

	r.HandleFunc("/admin", h.guard(h.page("admin-dashboard"), model.RoleAdmin)).Methods("GET")
	r.HandleFunc("/volunteer", h.guard(h.page("volunteer-dashboard"), model.RoleVolunteer)).Methods("GET")

	// mux only runs Use middleware on matched routes, so the catch-all
	// has to be wrapped by hand or 404 traffic goes unobserved.
	r.NotFoundHandler = recovery.Middleware(metrics.Instrument(http.HandlerFunc(h.NotFound)))
}
