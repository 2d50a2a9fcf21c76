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

// BeachHandler is a thin HTTP transport over BeachService.
type BeachHandler struct {
	svc     *services.BeachService
	session *auth.Manager
}

func NewBeachHandler(svc *services.BeachService, session *auth.Manager) *BeachHandler {
	return &BeachHandler{svc: svc, session: session}
}

// ListBeaches GET /api/beaches?query=&threat=
func (h *BeachHandler) ListBeaches(w http.ResponseWriter, r *http.Request) {
	beaches, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	q := r.URL.Query()
	beaches = trackview.FilterBeaches(beaches, trackview.BeachFilter{
		Query:  q.Get("query"),
		Threat: q.Get("threat"),
	})
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"beaches": beaches, "count": len(beaches)})
}

// GetBeach GET /api/beaches/{beachId}
func (h *BeachHandler) GetBeach(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), mux.Vars(r)["beachId"])
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, b)
}

// CreateBeach POST /api/beaches
func (h *BeachHandler) CreateBeach(w http.ResponseWriter, r *http.Request) {
	var b model.Beach
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	created, err := h.svc.Add(r.Context(), &b, actorID(h.session))
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, created)
}

type beachPatchRequest struct {
	Name        *string            `json:"name"`
	Country     *string            `json:"country"`
	Region      *string            `json:"region"`
	Location    *model.LatLng      `json:"location"`
	NestCount   *int               `json:"nestCount"`
	Volunteers  *int               `json:"volunteers"`
	ThreatLevel *model.ThreatLevel `json:"threatLevel"`
	Image       *string            `json:"image"`
	Description *string            `json:"description"`
}

func (p beachPatchRequest) patch() store.BeachPatch {
	return store.BeachPatch{
		Name:        p.Name,
		Country:     p.Country,
		Region:      p.Region,
		Location:    p.Location,
		NestCount:   p.NestCount,
		Volunteers:  p.Volunteers,
		ThreatLevel: p.ThreatLevel,
		Image:       p.Image,
		Description: p.Description,
	}
}

// UpdateBeach PATCH /api/beaches/{beachId}
func (h *BeachHandler) UpdateBeach(w http.ResponseWriter, r *http.Request) {
	var req beachPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["beachId"], req.patch(), actorID(h.session))
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

// DeleteBeach DELETE /api/beaches/{beachId}
func (h *BeachHandler) DeleteBeach(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["beachId"], actorID(h.session)); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
