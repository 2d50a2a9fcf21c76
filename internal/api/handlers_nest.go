package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/api/validate"
	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/services"
	"github.com/turtletrack/turtletrack/internal/store"
)

// NestHandler is a thin HTTP transport over NestService.
type NestHandler struct {
	svc     *services.NestService
	session *auth.Manager
}

func NewNestHandler(svc *services.NestService, session *auth.Manager) *NestHandler {
	return &NestHandler{svc: svc, session: session}
}

// ListNests GET /api/nests
func (h *NestHandler) ListNests(w http.ResponseWriter, r *http.Request) {
	nests, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"nests": nests, "count": len(nests)})
}

// GetNest GET /api/nests/{nestId}
func (h *NestHandler) GetNest(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Get(r.Context(), mux.Vars(r)["nestId"])
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, n)
}

// DeclareNest POST /api/nests
// The reporter is the session user; the beach name is snapshotted
// server-side.
func (h *NestHandler) DeclareNest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BeachID     string `json:"beachId"`
		TurtleCount int    `json:"turtleCount"`
		HatchDate   string `json:"hatchDate"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("beachId", req.BeachID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	declaredBy := "anonymous"
	if u := h.session.Current(); u != nil {
		declaredBy = u.Username
	}
	created, err := h.svc.Declare(r.Context(), &model.Nest{
		BeachID:     req.BeachID,
		TurtleCount: req.TurtleCount,
		HatchDate:   req.HatchDate,
		Notes:       req.Notes,
	}, declaredBy)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, created)
}

type nestPatchRequest struct {
	BeachID     *string           `json:"beachId"`
	TurtleCount *int              `json:"turtleCount"`
	HatchDate   *string           `json:"hatchDate"`
	Status      *model.NestStatus `json:"status"`
	Notes       *string           `json:"notes"`
}

func (p nestPatchRequest) patch() store.NestPatch {
	return store.NestPatch{
		BeachID:     p.BeachID,
		TurtleCount: p.TurtleCount,
		HatchDate:   p.HatchDate,
		Status:      p.Status,
		Notes:       p.Notes,
	}
}

// UpdateNest PATCH /api/nests/{nestId}
func (h *NestHandler) UpdateNest(w http.ResponseWriter, r *http.Request) {
	var req nestPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["nestId"], req.patch(), actorID(h.session))
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

// DeleteNest DELETE /api/nests/{nestId}
func (h *NestHandler) DeleteNest(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["nestId"], actorID(h.session)); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
