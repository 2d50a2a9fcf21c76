package trackview

import "github.com/turtletrack/turtletrack/internal/model"

// TrailStyle describes how a migration trail polyline is rendered.
// DashArray is empty for a solid line.
type TrailStyle struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dashArray,omitempty"`
}

// StyleForTrail returns the polyline style for a trail given whether
// its turtle is the current selection. Selected trails render solid
// and prominent; the rest recede into a dashed gray.
func StyleForTrail(selected bool) TrailStyle {
	if selected {
		return TrailStyle{Color: "#0891b2", Weight: 3, Opacity: 1.0}
	}
	return TrailStyle{Color: "#94a3b8", Weight: 2, Opacity: 0.5, DashArray: "5, 10"}
}

var statusColors = map[model.TurtleStatus]string{
	model.TurtleActive:    "#22c55e",
	model.TurtleNesting:   "#f59e0b",
	model.TurtleMigrating: "#3b82f6",
	model.TurtleResting:   "#6b7280",
}

// MarkerColor returns the marker tint for a turtle status. Unknown
// statuses fall back to the resting gray.
func MarkerColor(status model.TurtleStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return statusColors[model.TurtleResting]
}
