// Package memstore is the seeded in-memory entity store used by the
// local simulation build target. Collections keep their insertion
// order; reads return copies so callers never alias store state.
// Nest declarations are written through to durable local state so they
// survive a restart, matching the UI this service replaces.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/turtletrack/turtletrack/internal/localstate"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/seed"
	"github.com/turtletrack/turtletrack/internal/store"
)

type Store struct {
	mu      sync.RWMutex
	turtles []*model.Turtle
	beaches []*model.Beach
	nests   []*model.Nest

	state *localstate.Store // optional write-through for nests
	log   zerolog.Logger

	lastID int64 // guards timestamp-derived ids against same-ms collisions
}

// New builds a store seeded with the demo dataset. When state is
// non-nil, the nest collection is rehydrated from it (falling back to
// the seed nests) and every nest mutation is persisted synchronously.
func New(state *localstate.Store, log zerolog.Logger) (*Store, error) {
	s := &Store{
		turtles: seed.Turtles(),
		beaches: seed.Beaches(),
		nests:   seed.Nests(),
		state:   state,
		log:     log,
	}
	if state != nil {
		raw, ok, err := state.Get(localstate.KeyNests)
		if err != nil {
			return nil, fmt.Errorf("rehydrate nests: %w", err)
		}
		if ok {
			var nests []*model.Nest
			if err := json.Unmarshal([]byte(raw), &nests); err != nil {
				return nil, fmt.Errorf("rehydrate nests: %w", err)
			}
			s.nests = nests
		}
	}
	return s, nil
}

func (s *Store) Turtles() store.Turtles { return &turtles{s} }
func (s *Store) Beaches() store.Beaches { return &beaches{s} }
func (s *Store) Nests() store.Nests     { return &nests{s} }

// HealthPing implements health.Pinger; the in-memory store is always
// reachable.
func (s *Store) HealthPing(ctx context.Context) error { return nil }

// nextID produces a timestamp-derived id with the given prefix,
// unique within the process even when two creates land on the same
// millisecond.
func (s *Store) nextID(prefix string) string {
	ms := time.Now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("%s%d", prefix, ms)
}

// persistNests writes the whole nest collection through to durable
// local state. Best effort: a failed write is logged, not fatal.
func (s *Store) persistNests() {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(s.nests)
	if err != nil {
		s.log.Error().Stack().Err(err).Msg("failed to serialize nests")
		return
	}
	if err := s.state.Put(localstate.KeyNests, string(raw)); err != nil {
		s.log.Error().Stack().Err(err).Msg("failed to persist nests")
	}
}

func cloneTurtle(t *model.Turtle) *model.Turtle {
	out := *t
	out.MigrationTrail = append([]model.LatLng(nil), t.MigrationTrail...)
	return &out
}

func cloneBeach(b *model.Beach) *model.Beach {
	out := *b
	out.Threats = append([]string(nil), b.Threats...)
	out.RecentActivity = append([]model.BeachActivity(nil), b.RecentActivity...)
	return &out
}

func cloneNest(n *model.Nest) *model.Nest {
	out := *n
	return &out
}

// --- Turtles ---

type turtles struct{ s *Store }

func (r *turtles) Create(ctx context.Context, t *model.Turtle) (*model.Turtle, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := cloneTurtle(t)
	if out.ID == "" {
		out.ID = r.s.nextID("t")
	}
	for _, existing := range r.s.turtles {
		if existing.ID == out.ID {
			return nil, fmt.Errorf("%w: turtle %s", model.ErrDuplicate, out.ID)
		}
	}
	now := time.Now().UTC()
	out.CreatedAt, out.UpdatedAt = now, now
	if out.LastSeen.IsZero() {
		out.LastSeen = now
	}
	// newest first, the way the admin list shows them
	r.s.turtles = append([]*model.Turtle{out}, r.s.turtles...)
	return cloneTurtle(out), nil
}

func (r *turtles) Get(ctx context.Context, id string) (*model.Turtle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.turtles {
		if t.ID == id {
			return cloneTurtle(t), nil
		}
	}
	return nil, fmt.Errorf("%w: turtle %s", model.ErrNotFound, id)
}

func (r *turtles) List(ctx context.Context) ([]*model.Turtle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*model.Turtle, 0, len(r.s.turtles))
	for _, t := range r.s.turtles {
		out = append(out, cloneTurtle(t))
	}
	return out, nil
}

func (r *turtles) Update(ctx context.Context, id string, p store.TurtlePatch) (*model.Turtle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.turtles {
		if t.ID != id {
			continue
		}
		merged := cloneTurtle(t)
		applyTurtlePatch(merged, p)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		merged.UpdatedAt = time.Now().UTC()
		r.s.turtles[i] = merged
		return cloneTurtle(merged), nil
	}
	return nil, fmt.Errorf("%w: turtle %s", model.ErrNotFound, id)
}

func (r *turtles) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.turtles {
		if t.ID == id {
			r.s.turtles = append(r.s.turtles[:i], r.s.turtles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: turtle %s", model.ErrNotFound, id)
}

func applyTurtlePatch(t *model.Turtle, p store.TurtlePatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Species != nil {
		t.Species = *p.Species
	}
	if p.Age != nil {
		t.Age = *p.Age
	}
	if p.Weight != nil {
		t.Weight = *p.Weight
	}
	if p.Length != nil {
		t.Length = *p.Length
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.HealthStatus != nil {
		t.HealthStatus = *p.HealthStatus
	}
	if p.ThreatLevel != nil {
		t.ThreatLevel = *p.ThreatLevel
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Image != nil {
		t.Image = *p.Image
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

// --- Beaches ---

type beaches struct{ s *Store }

func (r *beaches) Create(ctx context.Context, b *model.Beach) (*model.Beach, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := cloneBeach(b)
	if out.ID == "" {
		out.ID = r.s.nextID("b")
	}
	for _, existing := range r.s.beaches {
		if existing.ID == out.ID {
			return nil, fmt.Errorf("%w: beach %s", model.ErrDuplicate, out.ID)
		}
	}
	now := time.Now().UTC()
	out.CreatedAt, out.UpdatedAt = now, now
	r.s.beaches = append([]*model.Beach{out}, r.s.beaches...)
	return cloneBeach(out), nil
}

func (r *beaches) Get(ctx context.Context, id string) (*model.Beach, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.beaches {
		if b.ID == id {
			return cloneBeach(b), nil
		}
	}
	return nil, fmt.Errorf("%w: beach %s", model.ErrNotFound, id)
}

func (r *beaches) List(ctx context.Context) ([]*model.Beach, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*model.Beach, 0, len(r.s.beaches))
	for _, b := range r.s.beaches {
		out = append(out, cloneBeach(b))
	}
	return out, nil
}

func (r *beaches) Update(ctx context.Context, id string, p store.BeachPatch) (*model.Beach, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.beaches {
		if b.ID != id {
			continue
		}
		merged := cloneBeach(b)
		applyBeachPatch(merged, p)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		merged.UpdatedAt = time.Now().UTC()
		r.s.beaches[i] = merged
		return cloneBeach(merged), nil
	}
	return nil, fmt.Errorf("%w: beach %s", model.ErrNotFound, id)
}

func (r *beaches) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.beaches {
		if b.ID == id {
			r.s.beaches = append(r.s.beaches[:i], r.s.beaches[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: beach %s", model.ErrNotFound, id)
}

func applyBeachPatch(b *model.Beach, p store.BeachPatch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Country != nil {
		b.Country = *p.Country
	}
	if p.Region != nil {
		b.Region = *p.Region
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.NestCount != nil {
		b.NestCount = *p.NestCount
	}
	if p.Volunteers != nil {
		b.Volunteers = *p.Volunteers
	}
	if p.ThreatLevel != nil {
		b.ThreatLevel = *p.ThreatLevel
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
}

// --- Nests ---

type nests struct{ s *Store }

func (r *nests) Create(ctx context.Context, n *model.Nest) (*model.Nest, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := cloneNest(n)
	if out.ID == "" {
		out.ID = r.s.nextID("nest-")
	}
	for _, existing := range r.s.nests {
		if existing.ID == out.ID {
			return nil, fmt.Errorf("%w: nest %s", model.ErrDuplicate, out.ID)
		}
	}
	if out.DeclaredAt.IsZero() {
		out.DeclaredAt = time.Now().UTC()
	}
	// declarations accumulate chronologically
	r.s.nests = append(r.s.nests, out)
	r.s.persistNests()
	return cloneNest(out), nil
}

func (r *nests) Get(ctx context.Context, id string) (*model.Nest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, n := range r.s.nests {
		if n.ID == id {
			return cloneNest(n), nil
		}
	}
	return nil, fmt.Errorf("%w: nest %s", model.ErrNotFound, id)
}

func (r *nests) List(ctx context.Context) ([]*model.Nest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*model.Nest, 0, len(r.s.nests))
	for _, n := range r.s.nests {
		out = append(out, cloneNest(n))
	}
	return out, nil
}

func (r *nests) Update(ctx context.Context, id string, p store.NestPatch) (*model.Nest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, n := range r.s.nests {
		if n.ID != id {
			continue
		}
		if p.Status != nil && !n.Status.CanTransition(*p.Status) {
			return nil, fmt.Errorf("%w: nest status %s cannot become %s", model.ErrValidation, n.Status, *p.Status)
		}
		merged := cloneNest(n)
		applyNestPatch(merged, p)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		r.s.nests[i] = merged
		r.s.persistNests()
		return cloneNest(merged), nil
	}
	return nil, fmt.Errorf("%w: nest %s", model.ErrNotFound, id)
}

func (r *nests) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, n := range r.s.nests {
		if n.ID == id {
			r.s.nests = append(r.s.nests[:i], r.s.nests[i+1:]...)
			r.s.persistNests()
			return nil
		}
	}
	return fmt.Errorf("%w: nest %s", model.ErrNotFound, id)
}

func applyNestPatch(n *model.Nest, p store.NestPatch) {
	if p.BeachID != nil {
		n.BeachID = *p.BeachID
	}
	if p.BeachName != nil {
		n.BeachName = *p.BeachName
	}
	if p.TurtleCount != nil {
		n.TurtleCount = *p.TurtleCount
	}
	if p.HatchDate != nil {
		n.HatchDate = *p.HatchDate
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.Notes != nil {
		n.Notes = *p.Notes
	}
}
