package store

import (
	"context"

	"github.com/turtletrack/turtletrack/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/: memstore is the
// seeded in-memory local simulation, postgres delegates to the hosted
// backend tables.
type Store interface {
	Turtles() Turtles
	Beaches() Beaches
	Nests() Nests
}

// TurtlePatch carries a partial-field turtle update. Nil fields retain
// their prior value (merge semantics). The postgres driver writes the
// merged row back as a full replacement of the columns it manages.
type TurtlePatch struct {
	Name         *string
	Species      *string
	Age          *int
	Weight       *float64
	Length       *float64
	Status       *model.TurtleStatus
	HealthStatus *model.HealthStatus
	ThreatLevel  *model.ThreatLevel
	Location     *model.LatLng
	Image        *string
	Description  *string
}

// BeachPatch carries a partial-field beach update.
type BeachPatch struct {
	Name        *string
	Country     *string
	Region      *string
	Location    *model.LatLng
	NestCount   *int
	Volunteers  *int
	ThreatLevel *model.ThreatLevel
	Image       *string
	Description *string
}

// NestPatch carries a partial-field nest update. A BeachID change
// re-resolves the denormalized BeachName at the service layer.
type NestPatch struct {
	BeachID     *string
	BeachName   *string
	TurtleCount *int
	HatchDate   *string
	Status      *model.NestStatus
	Notes       *string
}

type Turtles interface {
	Create(ctx context.Context, t *model.Turtle) (*model.Turtle, error)
	Get(ctx context.Context, id string) (*model.Turtle, error)
	List(ctx context.Context) ([]*model.Turtle, error)
	Update(ctx context.Context, id string, p TurtlePatch) (*model.Turtle, error)
	Delete(ctx context.Context, id string) error
}

type Beaches interface {
	Create(ctx context.Context, b *model.Beach) (*model.Beach, error)
	Get(ctx context.Context, id string) (*model.Beach, error)
	List(ctx context.Context) ([]*model.Beach, error)
	Update(ctx context.Context, id string, p BeachPatch) (*model.Beach, error)
	Delete(ctx context.Context, id string) error
}

type Nests interface {
	Create(ctx context.Context, n *model.Nest) (*model.Nest, error)
	Get(ctx context.Context, id string) (*model.Nest, error)
	List(ctx context.Context) ([]*model.Nest, error)
	Update(ctx context.Context, id string, p NestPatch) (*model.Nest, error)
	Delete(ctx context.Context, id string) error
}
