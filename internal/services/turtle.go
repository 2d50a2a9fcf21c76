package services

import (
	"context"
	"time"

	"github.com/turtletrack/turtletrack/internal/events"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

type TurtleService struct {
	store   store.Store
	bus     *events.Bus
	latency time.Duration
}

func NewTurtleService(s store.Store, bus *events.Bus, latency time.Duration) *TurtleService {
	return &TurtleService{store: s, bus: bus, latency: latency}
}

func (s *TurtleService) List(ctx context.Context) ([]*model.Turtle, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Turtles().List(ctx)
}

func (s *TurtleService) Get(ctx context.Context, id string) (*model.Turtle, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.store.Turtles().Get(ctx, id)
}

func (s *TurtleService) Add(ctx context.Context, t *model.Turtle, actorID string) (*model.Turtle, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	created, err := s.store.Turtles().Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.TurtleAdded, EntityID: created.ID, ActorID: actorID})
	return created, nil
}

func (s *TurtleService) Update(ctx context.Context, id string, p store.TurtlePatch, actorID string) (*model.Turtle, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	updated, err := s.store.Turtles().Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Kind: events.TurtleUpdated, EntityID: updated.ID, ActorID: actorID})
	return updated, nil
}

func (s *TurtleService) Delete(ctx context.Context, id string, actorID string) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	if err := s.store.Turtles().Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Kind: events.TurtleDeleted, EntityID: id, ActorID: actorID})
	return nil
}
