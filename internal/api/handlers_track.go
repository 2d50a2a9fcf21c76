package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/services"
	"github.com/turtletrack/turtletrack/internal/store"
	"github.com/turtletrack/turtletrack/internal/trackview"
)

// TrackHandler is the view-model surface behind the tracking page: the
// filtered turtle collection with marker and trail render directives,
// and the shared selection the list and the map keep in sync. Like the
// session, the selection is server state in this single-user local
// simulation.
type TrackHandler struct {
	turtles *services.TurtleService

	mu      sync.Mutex
	coord   *trackview.Coordinator
	lastCam *trackview.CameraCommand
}

func NewTrackHandler(turtles *services.TurtleService, st store.Store) *TrackHandler {
	h := &TrackHandler{turtles: turtles}
	h.coord = trackview.NewCoordinator(
		trackview.CameraFunc(func(cmd trackview.CameraCommand) { h.lastCam = &cmd }),
		func(id string) (model.LatLng, bool) {
			t, err := st.Turtles().Get(context.Background(), id)
			if err != nil {
				return model.LatLng{}, false
			}
			return t.Location, true
		},
	)
	return h
}

type cameraResponse struct {
	Target     model.LatLng `json:"target"`
	Zoom       int          `json:"zoom"`
	DurationMs int64        `json:"durationMs"`
}

func toCameraResponse(cmd *trackview.CameraCommand) *cameraResponse {
	if cmd == nil {
		return nil
	}
	return &cameraResponse{
		Target:     cmd.Target,
		Zoom:       cmd.Zoom,
		DurationMs: cmd.Duration.Milliseconds(),
	}
}

type mapTurtle struct {
	*model.Turtle
	MarkerColor string               `json:"markerColor"`
	TrailStyle  trackview.TrailStyle `json:"trailStyle"`
	Selected    bool                 `json:"selected"`
}

// MapView GET /api/track/map?query=&status=&species=
// Returns the filtered collection with render directives derived from
// the current selection.
func (h *TrackHandler) MapView(w http.ResponseWriter, r *http.Request) {
	turtles, err := h.turtles.List(r.Context())
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

	h.mu.Lock()
	selectedID, _ := h.coord.Selected()
	h.mu.Unlock()

	out := make([]mapTurtle, 0, len(turtles))
	for _, t := range turtles {
		selected := t.ID == selectedID
		out = append(out, mapTurtle{
			Turtle:      t,
			MarkerColor: trackview.MarkerColor(t.Status),
			TrailStyle:  trackview.StyleForTrail(selected),
			Selected:    selected,
		})
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"turtles":  out,
		"count":    len(out),
		"selected": selectedID,
	})
}

// Select POST /api/track/select
// A list click toggles (the current id deselects), a marker click sets
// unconditionally and re-centers. The response carries the camera
// command the selection produced, if any.
func (h *TrackHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Source string `json:"source"` // "list" (default) or "marker"
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	h.mu.Lock()
	h.lastCam = nil
	if req.Source == "marker" {
		h.coord.Focus(req.ID)
	} else {
		h.coord.Select(req.ID)
	}
	selectedID, _ := h.coord.Selected()
	cam := toCameraResponse(h.lastCam)
	h.mu.Unlock()

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"selected": selectedID,
		"camera":   cam,
	})
}

// ClearSelection DELETE /api/track/select
func (h *TrackHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.coord.Clear()
	h.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}
