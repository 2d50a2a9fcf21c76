package memstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/turtletrack/turtletrack/internal/localstate"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
	"github.com/turtletrack/turtletrack/internal/store/storetest"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(nil, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestMemstore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return newStore(t) })
}

func TestNew_SeedsDemoData(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	turtles, err := s.Turtles().List(ctx)
	require.NoError(t, err)
	require.Len(t, turtles, 6)
	require.Equal(t, "Marina", turtles[0].Name)

	beaches, err := s.Beaches().List(ctx)
	require.NoError(t, err)
	require.Len(t, beaches, 5)

	nests, err := s.Nests().List(ctx)
	require.NoError(t, err)
	require.Len(t, nests, 2)
}

func TestListTurtles_ReturnsCopies(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first, err := s.Turtles().List(ctx)
	require.NoError(t, err)
	first[0].Name = "scribbled"
	first[0].MigrationTrail[0] = model.LatLng{Lat: 0, Lng: 0}

	second, err := s.Turtles().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Marina", second[0].Name)
	require.Equal(t, 9.7489, second[0].MigrationTrail[0].Lat)
}

func TestCreateTurtle_GeneratesUniqueIDs(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		created, err := s.Turtles().Create(ctx, &model.Turtle{
			Name: "Burst", Species: "Loggerhead",
			Status: model.TurtleActive, HealthStatus: model.HealthGood, ThreatLevel: model.ThreatLow,
		})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "id %s reused", created.ID)
		seen[created.ID] = true
	}
}

func TestNests_PersistAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	ls, err := localstate.Open(path)
	require.NoError(t, err)
	s, err := New(ls, zerolog.Nop())
	require.NoError(t, err)

	created, err := s.Nests().Create(ctx, &model.Nest{
		BeachID: "b1", BeachName: "Tortuguero Beach",
		TurtleCount: 50, HatchDate: "2024-06-01",
		DeclaredBy: "volunteer-demo", Status: model.NestActive,
	})
	require.NoError(t, err)
	require.NoError(t, ls.Close())

	// reopen: the declaration must survive
	ls2, err := localstate.Open(path)
	require.NoError(t, err)
	defer func() { _ = ls2.Close() }()
	s2, err := New(ls2, zerolog.Nop())
	require.NoError(t, err)

	got, err := s2.Nests().Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Tortuguero Beach", got.BeachName)
	require.Equal(t, model.NestActive, got.Status)
}

func TestUpdateTurtle_MergesSingleField(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	before, err := s.Turtles().Get(ctx, "t1")
	require.NoError(t, err)

	weight := 200.0
	after, err := s.Turtles().Update(ctx, "t1", store.TurtlePatch{Weight: &weight})
	require.NoError(t, err)

	require.Equal(t, 200.0, after.Weight)
	require.Equal(t, before.Name, after.Name)
	require.Equal(t, before.Species, after.Species)
	require.Equal(t, before.Age, after.Age)
	require.Equal(t, before.Length, after.Length)
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.Location, after.Location)
}
