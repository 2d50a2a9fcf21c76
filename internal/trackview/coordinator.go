package trackview

import (
	"time"

	"github.com/turtletrack/turtletrack/internal/model"
)

// Camera centering defaults: the zoom and animation duration the map
// flies with when an entity is selected.
const (
	FocusZoom   = 6
	FlyDuration = 1500 * time.Millisecond
)

// CameraCommand is a single centering instruction for the map view.
type CameraCommand struct {
	Target   model.LatLng
	Zoom     int
	Duration time.Duration
}

// Camera is the narrow interface the coordinator drives. The real map
// widget is an external collaborator behind it.
type Camera interface {
	FlyTo(cmd CameraCommand)
}

// CameraFunc adapts a function to the Camera interface.
type CameraFunc func(cmd CameraCommand)

func (f CameraFunc) FlyTo(cmd CameraCommand) { f(cmd) }

// Coordinator synchronizes the single selected entity between the
// list and the map. List clicks toggle: selecting the already-selected
// id clears the selection; marker clicks set unconditionally (Focus).
// Each new selection issues exactly one camera command; clearing
// issues none and leaves the camera where it is.
//
// Like the UI event loop it models, the coordinator expects calls from
// a single goroutine.
type Coordinator struct {
	selected string
	camera   Camera
	locate   func(id string) (model.LatLng, bool)
}

// NewCoordinator builds a coordinator. locate resolves an entity id to
// its current location; an unresolvable id still selects but moves no
// camera.
func NewCoordinator(camera Camera, locate func(id string) (model.LatLng, bool)) *Coordinator {
	return &Coordinator{camera: camera, locate: locate}
}

// Select applies the list toggle rule: a new id replaces the selection
// and centers the camera, the current id clears it, empty deselects.
func (c *Coordinator) Select(id string) {
	if id == "" || id == c.selected {
		c.selected = ""
		return
	}
	c.set(id)
}

// Focus sets the selection unconditionally (map marker click); the
// camera re-centers even when the id is already selected.
func (c *Coordinator) Focus(id string) {
	if id == "" {
		return
	}
	c.set(id)
}

// Clear drops the selection without moving the camera.
func (c *Coordinator) Clear() { c.selected = "" }

// Selected returns the current selection, if any.
func (c *Coordinator) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

func (c *Coordinator) set(id string) {
	c.selected = id
	if c.camera == nil || c.locate == nil {
		return
	}
	if loc, ok := c.locate(id); ok {
		c.camera.FlyTo(CameraCommand{Target: loc, Zoom: FocusZoom, Duration: FlyDuration})
	}
}
