// Package trackview is the view-model behind the tracking page: pure
// filtering of the entity collections and the list/map selection
// coordinator.
package trackview

import (
	"strings"

	"github.com/turtletrack/turtletrack/internal/model"
)

// TurtleFilter is a free-text query plus categorical filters. A
// categorical value of "all" (or empty) matches every entity.
type TurtleFilter struct {
	Query   string
	Status  string
	Species string
}

// BeachFilter mirrors TurtleFilter for the beach catalog.
type BeachFilter struct {
	Query  string
	Threat string
}

func passAll(v string) bool { return v == "" || v == model.FilterAll }

// FilterTurtles returns the ordered subsequence of turtles matching f:
// the query is a case-insensitive substring of the name or species,
// and each categorical filter either passes everything or equals the
// corresponding field exactly. The input is never mutated and the
// result is a fresh slice; an empty query matches everything.
func FilterTurtles(turtles []*model.Turtle, f TurtleFilter) []*model.Turtle {
	q := strings.ToLower(f.Query)
	out := make([]*model.Turtle, 0, len(turtles))
	for _, t := range turtles {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Species), q) {
			continue
		}
		if !passAll(f.Status) && string(t.Status) != f.Status {
			continue
		}
		if !passAll(f.Species) && t.Species != f.Species {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterBeaches matches the query against beach name or country and
// applies the threat-level filter. Same contract as FilterTurtles.
func FilterBeaches(beaches []*model.Beach, f BeachFilter) []*model.Beach {
	q := strings.ToLower(f.Query)
	out := make([]*model.Beach, 0, len(beaches))
	for _, b := range beaches {
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Country), q) {
			continue
		}
		if !passAll(f.Threat) && string(b.ThreatLevel) != f.Threat {
			continue
		}
		out = append(out, b)
	}
	return out
}
