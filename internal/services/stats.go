package services

import (
	"context"

	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

// VolunteerCounter reports the number of registered volunteers; the
// session manager provides it.
type VolunteerCounter interface {
	VolunteerCount() int
}

// StatsService computes the dashboard aggregates from current store
// contents. No simulated latency here; the numbers ride along with
// pages that already paid it.
type StatsService struct {
	store      store.Store
	volunteers VolunteerCounter
}

func NewStatsService(s store.Store, volunteers VolunteerCounter) *StatsService {
	return &StatsService{store: s, volunteers: volunteers}
}

func (s *StatsService) Stats(ctx context.Context) (*model.Stats, error) {
	turtles, err := s.store.Turtles().List(ctx)
	if err != nil {
		return nil, err
	}
	beaches, err := s.store.Beaches().List(ctx)
	if err != nil {
		return nil, err
	}
	nests, err := s.store.Nests().List(ctx)
	if err != nil {
		return nil, err
	}

	out := &model.Stats{
		TotalTurtles:   len(turtles),
		NestingBeaches: len(beaches),
		TotalNests:     len(nests),
	}
	for _, t := range turtles {
		if t.Status == model.TurtleActive {
			out.ActiveTurtles++
		}
	}
	for _, b := range beaches {
		out.ActiveVolunteers += b.Volunteers
	}
	if s.volunteers != nil {
		out.ActiveVolunteers += s.volunteers.VolunteerCount()
	}
	return out, nil
}
