package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/turtletrack/turtletrack/internal/events"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

// UnknownBeachName is the denormalized beach name recorded on a nest
// whose beach reference does not resolve.
const UnknownBeachName = "Unknown Beach"

type NestService struct {
	store   store.Store
	bus     *events.Bus
	latency time.Duration
}

func NewNestService(s store.Store, bus *events.Bus, latency time.Duration) *NestService {
	return &NestService{store: s, bus: bus, latency: latency}
}

func (s *NestService) List(ctx context.Context) ([]*model.Nest, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Nests().List(ctx)
}

func (s *NestService) Get(ctx context.Context, id string) (*model.Nest, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Nests().Get(ctx, id)
}

// Declare records a new nest. The beach name is snapshotted at
// declaration time; declaredBy is the display name of the session user
// making the report.
func (s *NestService) Declare(ctx context.Context, n *model.Nest, declaredBy string) (*model.Nest, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	name, err := s.beachName(ctx, n.BeachID)
	if err != nil {
		return nil, err
	}
	n.BeachName = name
	n.DeclaredBy = declaredBy
	if n.Status == "" {
		n.Status = model.NestActive
	}
	created, err := s.store.Nests().Create(ctx, n)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.NestDeclared, EntityID: created.ID, ActorID: declaredBy})
	return created, nil
}

// Update applies a partial nest update. Moving a nest to a different
// beach re-resolves the denormalized beach name.
func (s *NestService) Update(ctx context.Context, id string, p store.NestPatch, actorID string) (*model.Nest, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	if p.BeachID != nil && p.BeachName == nil {
		name, err := s.beachName(ctx, *p.BeachID)
		if err != nil {
			return nil, err
		}
		p.BeachName = &name
	}
	updated, err := s.store.Nests().Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.NestUpdated, EntityID: updated.ID, ActorID: actorID})
	return updated, nil
}

func (s *NestService) Delete(ctx context.Context, id string, actorID string) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	if err := s.store.Nests().Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Kind: events.NestDeleted, EntityID: id, ActorID: actorID})
	return nil
}

func (s *NestService) beachName(ctx context.Context, beachID string) (string, error) {
	b, err := s.store.Beaches().Get(ctx, beachID)
	if errors.Is(err, model.ErrNotFound) {
		return UnknownBeachName, nil
	}
	if err != nil {
		return "", err
	}
	return b.Name, nil
}
