package services

import (
	"context"
	"time"

	"github.com/turtletrack/turtletrack/internal/events"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

type BeachService struct {
	store   store.Store
	bus     *events.Bus
	latency time.Duration
}

func NewBeachService(s store.Store, bus *events.Bus, latency time.Duration) *BeachService {
	return &BeachService{store: s, bus: bus, latency: latency}
}

func (s *BeachService) List(ctx context.Context) ([]*model.Beach, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Beaches().List(ctx)
}

func (s *BeachService) Get(ctx context.Context, id string) (*model.Beach, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Beaches().Get(ctx, id)
}

func (s *BeachService) Add(ctx context.Context, b *model.Beach, actorID string) (*model.Beach, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	created, err := s.store.Beaches().Create(ctx, b)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.BeachAdded, EntityID: created.ID, ActorID: actorID})
	return created, nil
}

func (s *BeachService) Update(ctx context.Context, id string, p store.BeachPatch, actorID string) (*model.Beach, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	updated, err := s.store.Beaches().Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.BeachUpdated, EntityID: updated.ID, ActorID: actorID})
	return updated, nil
}

func (s *BeachService) Delete(ctx context.Context, id string, actorID string) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	if err := s.store.Beaches().Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Kind: events.BeachDeleted, EntityID: id, ActorID: actorID})
	return nil
}
