// Package storetest holds the compliance suite shared by store
// drivers. The memstore runs it in-process; a postgres deployment can
// run it against a provisioned database.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

func strPtr(v string) *string                            { return &v }
func f64Ptr(v float64) *float64                          { return &v }
func nestStatusPtr(v model.NestStatus) *model.NestStatus { return &v }

// Run exercises the store contract against an implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Turtles: create, read back, merge-update, delete.
	created, err := s.Turtles().Create(ctx, &model.Turtle{
		Name: "Pelagia", Species: "Loggerhead",
		Status: model.TurtleActive, HealthStatus: model.HealthGood, ThreatLevel: model.ThreatLow,
		Weight: 120, Location: model.LatLng{Lat: 12.5, Lng: -61.2},
	})
	if err != nil {
		t.Fatalf("CreateTurtle: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("CreateTurtle: empty id")
	}
	got, err := s.Turtles().Get(ctx, created.ID)
	if err != nil || got.Name != "Pelagia" {
		t.Fatalf("GetTurtle: got=%+v err=%v", got, err)
	}

	updated, err := s.Turtles().Update(ctx, created.ID, store.TurtlePatch{Weight: f64Ptr(200)})
	if err != nil {
		t.Fatalf("UpdateTurtle: %v", err)
	}
	if updated.Weight != 200 {
		t.Fatalf("UpdateTurtle: weight=%v", updated.Weight)
	}
	if updated.Name != "Pelagia" || updated.Species != "Loggerhead" || updated.Status != model.TurtleActive {
		t.Fatalf("UpdateTurtle must merge, not replace: %+v", updated)
	}

	if err := s.Turtles().Delete(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTurtle: %v", err)
	}
	if err := s.Turtles().Delete(ctx, created.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteTurtle twice: want ErrNotFound, got %v", err)
	}
	if _, err := s.Turtles().Get(ctx, created.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetTurtle after delete: want ErrNotFound, got %v", err)
	}

	// Beaches
	beach, err := s.Beaches().Create(ctx, &model.Beach{
		Name: "Playa Prueba", Country: "Mexico",
		ThreatLevel: model.ThreatMedium, Location: model.LatLng{Lat: 15.1, Lng: -96.9},
		NestCount: 3, Volunteers: 2,
	})
	if err != nil {
		t.Fatalf("CreateBeach: %v", err)
	}
	ub, err := s.Beaches().Update(ctx, beach.ID, store.BeachPatch{Country: strPtr("Costa Rica")})
	if err != nil || ub.Country != "Costa Rica" || ub.Name != "Playa Prueba" {
		t.Fatalf("UpdateBeach: got=%+v err=%v", ub, err)
	}

	// Nests: creation, terminal-status transition rules, deletion.
	nest, err := s.Nests().Create(ctx, &model.Nest{
		BeachID: beach.ID, BeachName: beach.Name,
		TurtleCount: 50, HatchDate: "2024-06-01",
		DeclaredBy: "volunteer-demo", Status: model.NestActive,
	})
	if err != nil {
		t.Fatalf("CreateNest: %v", err)
	}
	hatched, err := s.Nests().Update(ctx, nest.ID, store.NestPatch{Status: nestStatusPtr(model.NestHatched)})
	if err != nil || hatched.Status != model.NestHatched {
		t.Fatalf("UpdateNest to hatched: got=%+v err=%v", hatched, err)
	}
	if _, err := s.Nests().Update(ctx, nest.ID, store.NestPatch{Status: nestStatusPtr(model.NestActive)}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("reopening a hatched nest must fail, got %v", err)
	}
	if err := s.Nests().Delete(ctx, nest.ID); err != nil {
		t.Fatalf("DeleteNest: %v", err)
	}
	if err := s.Nests().Delete(ctx, "nest-does-not-exist"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteNest of unknown id: want ErrNotFound, got %v", err)
	}

	// Validation failures must not reach the store.
	if _, err := s.Turtles().Create(ctx, &model.Turtle{Species: "Loggerhead", Status: model.TurtleActive, HealthStatus: model.HealthGood, ThreatLevel: model.ThreatLow}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("nameless turtle: want ErrValidation, got %v", err)
	}
	if _, err := s.Nests().Create(ctx, &model.Nest{BeachID: beach.ID, TurtleCount: 501, HatchDate: "2024-06-01", Status: model.NestActive}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("oversized nest: want ErrValidation, got %v", err)
	}
}
