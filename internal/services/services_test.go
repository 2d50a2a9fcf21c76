package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtletrack/turtletrack/internal/events"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
	"github.com/turtletrack/turtletrack/internal/store/memstore"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := memstore.New(nil, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func validTurtle(name string) *model.Turtle {
	return &model.Turtle{
		Name:         name,
		Species:      "Green Sea Turtle",
		Age:          12,
		Weight:       150,
		Length:       1.1,
		Status:       model.TurtleActive,
		HealthStatus: model.HealthGood,
		ThreatLevel:  model.ThreatLow,
		Location:     model.LatLng{Lat: 10.2, Lng: -83.5},
	}
}

func TestTurtleServiceAddPublishesEvent(t *testing.T) {
	bus := events.NewBus(8)
	svc := NewTurtleService(newTestStore(t), bus, 0)

	created, err := svc.Add(context.Background(), validTurtle("Pacifica"), "admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	select {
	case evt := <-bus.Subscribe():
		assert.Equal(t, events.TurtleAdded, evt.Kind)
		assert.Equal(t, created.ID, evt.EntityID)
		assert.Equal(t, "admin-1", evt.ActorID)
	default:
		t.Fatal("expected a turtle_added event")
	}
}

func TestTurtleServiceLatencyHonorsContext(t *testing.T) {
	svc := NewTurtleService(newTestStore(t), nil, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTurtleServiceFailedCreatePublishesNothing(t *testing.T) {
	bus := events.NewBus(8)
	svc := NewTurtleService(newTestStore(t), bus, 0)

	nameless := validTurtle("")
	_, err := svc.Add(context.Background(), nameless, "admin-1")
	require.ErrorIs(t, err, model.ErrValidation)

	select {
	case evt := <-bus.Subscribe():
		t.Fatalf("unexpected event %v", evt)
	default:
	}
}

func TestNestServiceDeclareSnapshotsBeachName(t *testing.T) {
	svc := NewNestService(newTestStore(t), nil, 0)
	before := time.Now().UTC()

	created, err := svc.Declare(context.Background(), &model.Nest{
		BeachID:     "b1",
		TurtleCount: 85,
		HatchDate:   "2026-10-15",
	}, "volunteer-7")
	require.NoError(t, err)

	assert.Equal(t, "Tortuguero Beach", created.BeachName)
	assert.Equal(t, "volunteer-7", created.DeclaredBy)
	assert.Equal(t, model.NestActive, created.Status)
	assert.False(t, created.DeclaredAt.Before(before))
}

func TestNestServiceDeclareUnknownBeachFallsBack(t *testing.T) {
	svc := NewNestService(newTestStore(t), nil, 0)

	created, err := svc.Declare(context.Background(), &model.Nest{
		BeachID:     "b-gone",
		TurtleCount: 10,
		HatchDate:   "2026-11-01",
	}, "volunteer-7")
	require.NoError(t, err)
	assert.Equal(t, UnknownBeachName, created.BeachName)
}

func TestNestServiceUpdateReresolvesBeachName(t *testing.T) {
	st := newTestStore(t)
	svc := NewNestService(st, nil, 0)

	created, err := svc.Declare(context.Background(), &model.Nest{
		BeachID:     "b1",
		TurtleCount: 10,
		HatchDate:   "2026-11-01",
	}, "volunteer-7")
	require.NoError(t, err)

	newBeach := "b2"
	updated, err := svc.Update(context.Background(), created.ID, store.NestPatch{BeachID: &newBeach}, "volunteer-7")
	require.NoError(t, err)

	want, err := st.Beaches().Get(context.Background(), "b2")
	require.NoError(t, err)
	assert.Equal(t, want.Name, updated.BeachName)
}

func TestNestServiceRejectsReopeningHatchedNest(t *testing.T) {
	svc := NewNestService(newTestStore(t), nil, 0)

	active := model.NestActive
	// nest-2 is seeded as hatched
	_, err := svc.Update(context.Background(), "nest-2", store.NestPatch{Status: &active}, "admin-1")
	assert.ErrorIs(t, err, model.ErrValidation)
}

type fixedVolunteers int

func (f fixedVolunteers) VolunteerCount() int { return int(f) }

func TestStatsService(t *testing.T) {
	st := newTestStore(t)
	svc := NewStatsService(st, fixedVolunteers(3))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalTurtles)
	assert.Equal(t, 5, stats.NestingBeaches)
	assert.Equal(t, 2, stats.TotalNests)

	turtles, err := st.Turtles().List(context.Background())
	require.NoError(t, err)
	wantActive := 0
	for _, tt := range turtles {
		if tt.Status == model.TurtleActive {
			wantActive++
		}
	}
	assert.Equal(t, wantActive, stats.ActiveTurtles)

	beaches, err := st.Beaches().List(context.Background())
	require.NoError(t, err)
	wantVols := 3
	for _, b := range beaches {
		wantVols += b.Volunteers
	}
	assert.Equal(t, wantVols, stats.ActiveVolunteers)
}

func TestBeachServiceDeleteUnknownIsNotFound(t *testing.T) {
	svc := NewBeachService(newTestStore(t), nil, 0)
	err := svc.Delete(context.Background(), "b-missing", "admin-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
