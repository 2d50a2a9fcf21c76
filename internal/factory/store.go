// Package factory constructs configured dependencies for the run loop.
package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/turtletrack/turtletrack/internal/config"
	"github.com/turtletrack/turtletrack/internal/localstate"
	storepkg "github.com/turtletrack/turtletrack/internal/store"
	"github.com/turtletrack/turtletrack/internal/store/memstore"
	storepg "github.com/turtletrack/turtletrack/internal/store/postgres"
)

// NewStore builds the entity store for the resolved driver. The memory
// driver is seeded and writes nests through to local state; the
// postgres driver retries the initial open until the bootstrap timeout
// so a database that comes up after the service does not fail startup.
func NewStore(ctx context.Context, cfg *config.Config, state *localstate.Store, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memstore.New(state, log)

	case "postgres":
		dsn := cfg.PostgresDSN
		if dsn == "" {
			return nil, fmt.Errorf("TURTLE_TRACK_POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
		bootstrapTimeout := time.Duration(cfg.BootstrapTimeoutSeconds) * time.Second
		openCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
		defer cancel()

		db, err := storepg.OpenWithRetry(openCtx, dsn)
		if err != nil {
			return nil, err
		}
		if err := storepg.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Debug().Str("driver", cfg.StoreDriver).Msg("store ready")
		return storepg.NewWithDB(db), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}

// NewLocalState opens the durable local key-value store backing the
// session, the volunteer registry and declared nests. An explicit path
// wins; otherwise the default under the user home directory is used.
func NewLocalState(cfg *config.Config) (*localstate.Store, error) {
	path := cfg.LocalStatePath
	if path == "" {
		var err error
		path, err = localstate.DBPath()
		if err != nil {
			return nil, err
		}
	}
	return localstate.Open(path)
}
