package trackview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtletrack/turtletrack/internal/model"
)

func TestStyleForTrail(t *testing.T) {
	sel := StyleForTrail(true)
	assert.Equal(t, TrailStyle{Color: "#0891b2", Weight: 3, Opacity: 1.0}, sel)
	assert.Empty(t, sel.DashArray, "selected trails render solid")

	rest := StyleForTrail(false)
	assert.Equal(t, TrailStyle{Color: "#94a3b8", Weight: 2, Opacity: 0.5, DashArray: "5, 10"}, rest)
}

func TestMarkerColor(t *testing.T) {
	assert.Equal(t, "#22c55e", MarkerColor(model.TurtleActive))
	assert.Equal(t, "#f59e0b", MarkerColor(model.TurtleNesting))
	assert.Equal(t, "#3b82f6", MarkerColor(model.TurtleMigrating))
	assert.Equal(t, "#6b7280", MarkerColor(model.TurtleResting))
	assert.Equal(t, "#6b7280", MarkerColor(model.TurtleStatus("unknown")))
}
