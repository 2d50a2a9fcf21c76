package postgres

import "database/sql"

// EnsureSchema creates the entity tables if they do not exist. Managed
// deployments run real migrations; this covers local Postgres targets.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS turtles (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            species TEXT NOT NULL,
            species_scientific TEXT NOT NULL DEFAULT '',
            age INT NOT NULL DEFAULT 0,
            weight DOUBLE PRECISION NOT NULL DEFAULT 0,
            length DOUBLE PRECISION NOT NULL DEFAULT 0,
            turtle_status TEXT NOT NULL CHECK (turtle_status IN ('active','missing','released','deceased')),
            health_status TEXT NOT NULL DEFAULT 'good',
            threat_level TEXT NOT NULL CHECK (threat_level IN ('low','medium','high','critical')),
            latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            temperature DOUBLE PRECISION NOT NULL DEFAULT 0,
            speed DOUBLE PRECISION NOT NULL DEFAULT 0,
            depth DOUBLE PRECISION NOT NULL DEFAULT 0,
            migration_trail JSONB NOT NULL DEFAULT '[]',
            last_seen TIMESTAMPTZ NOT NULL DEFAULT now(),
            tagged_date TEXT NOT NULL DEFAULT '',
            total_distance DOUBLE PRECISION NOT NULL DEFAULT 0,
            photo_url TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS beaches (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            country TEXT NOT NULL,
            region TEXT NOT NULL DEFAULT '',
            latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            nests_count INT NOT NULL DEFAULT 0,
            volunteers_count INT NOT NULL DEFAULT 0,
            threat_level TEXT NOT NULL CHECK (threat_level IN ('low','medium','high','critical')),
            threats JSONB NOT NULL DEFAULT '[]',
            recent_activity JSONB NOT NULL DEFAULT '[]',
            photo_url TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS nests (
            id TEXT PRIMARY KEY,
            beach_id TEXT NOT NULL,
            beach_name TEXT NOT NULL DEFAULT 'Unknown Beach',
            turtle_count INT NOT NULL CHECK (turtle_count BETWEEN 1 AND 500),
            hatch_date TEXT NOT NULL,
            declared_by TEXT NOT NULL DEFAULT '',
            declared_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            status TEXT NOT NULL CHECK (status IN ('active','hatched','failed')),
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
