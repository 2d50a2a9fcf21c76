// Package api is the HTTP transport: thin mux handlers over the
// service layer, plus the route gate for the page routes.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/services"
	"github.com/turtletrack/turtletrack/internal/store"
	"github.com/turtletrack/turtletrack/internal/trackview"
)

// TurtleHandler is a thin HTTP transport over TurtleService.
type TurtleHandler struct {
	svc     *services.TurtleService
	session *auth.Manager
}

func NewTurtleHandler(svc *services.TurtleService, session *auth.Manager) *TurtleHandler {
	return &TurtleHandler{svc: svc, session: session}
}

func actorID(session *auth.Manager) string {
	if u := session.Current(); u != nil {
		return u.ID
	}
	return ""
}

// ListTurtles GET /api/turtles?query=&status=&species=
// The same filter the tracking page applies client-side; absent
// parameters match everything and the store order is preserved.
func (h *TurtleHandler) ListTurtles(w http.ResponseWriter, r *http.Request) {
	turtles, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	q := r.URL.Query()
	turtles = trackview.FilterTurtles(turtles, trackview.TurtleFilter{
		Query:   q.Get("query"),
		Status:  q.Get("status"),
		Species: q.Get("species"),
	})
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"turtles": turtles, "count": len(turtles)})
}

// GetTurtle GET /api/turtles/{turtleId}
func (h *TurtleHandler) GetTurtle(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(r.Context(), mux.Vars(r)["turtleId"])
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, t)
}

// CreateTurtle POST /api/turtles
func (h *TurtleHandler) CreateTurtle(w http.ResponseWriter, r *http.Request) {
	var t model.Turtle
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	created, err := h.svc.Add(r.Context(), &t, actorID(h.session))
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, created)
}

type turtlePatchRequest struct {
	Name         *string             `json:"name"`
	Species      *string             `json:"species"`
	Age          *int                `json:"age"`
	Weight       *float64            `json:"weight"`
	Length       *float64            `json:"length"`
	Status       *model.TurtleStatus `json:"status"`
	HealthStatus *model.HealthStatus `json:"healthStatus"`
	ThreatLevel  *model.ThreatLevel  `json:"threatLevel"`
	Location     *model.LatLng       `json:"location"`
	Image        *string             `json:"image"`
	Description  *string             `json:"description"`
}

func (p turtlePatchRequest) patch() store.TurtlePatch {
	return store.TurtlePatch{
		Name:         p.Name,
		Species:      p.Species,
		Age:          p.Age,
		Weight:       p.Weight,
		Length:       p.Length,
		Status:       p.Status,
		HealthStatus: p.HealthStatus,
		ThreatLevel:  p.ThreatLevel,
		Location:     p.Location,
		Image:        p.Image,
		Description:  p.Description,
	}
}

// UpdateTurtle PATCH /api/turtles/{turtleId}
// Absent fields keep their stored values.
func (h *TurtleHandler) UpdateTurtle(w http.ResponseWriter, r *http.Request) {
	var req turtlePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["turtleId"], req.patch(), actorID(h.session))
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

// DeleteTurtle DELETE /api/turtles/{turtleId}
func (h *TurtleHandler) DeleteTurtle(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["turtleId"], actorID(h.session)); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
