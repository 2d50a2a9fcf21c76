// Package postgres is the hosted-backend entity store. The database
// assigns ids and timestamps and every write returns the canonical row,
// which callers use to reconcile their in-memory view. Turtle lifecycle
// statuses are translated between the internal set and the schema's
// turtle_status enum here and nowhere else.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenWithRetry opens the connection, retrying transient failures with
// exponential backoff until the context expires. Databases are often a
// few seconds behind the service at startup.
func OpenWithRetry(ctx context.Context, dsn string) (*sql.DB, error) {
	var db *sql.DB
	op := func() error {
		var err error
		db, err = Open(dsn)
		return err
	}
	if err := backoff.Retry(op, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Turtles() store.Turtles { return &turtles{db: s.db} }
func (s *pgStore) Beaches() store.Beaches { return &beaches{db: s.db} }
func (s *pgStore) Nests() store.Nests     { return &nests{db: s.db} }

// HealthPing implements health.Pinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func notFoundOr(err error, kind, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", model.ErrNotFound, kind, id)
	}
	return err
}

// --- Turtles ---

type turtles struct{ db *sql.DB }

const turtleColumns = `id, name, species, species_scientific, age, weight, length,
    turtle_status, health_status, threat_level, latitude, longitude,
    temperature, speed, depth, migration_trail, last_seen, tagged_date,
    total_distance, photo_url, description, created_at, updated_at`

func (r *turtles) Create(ctx context.Context, t *model.Turtle) (*model.Turtle, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	status, err := model.TurtleStatusToExternal(t.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	trail, err := json.Marshal(t.MigrationTrail)
	if err != nil {
		return nil, err
	}
	id := t.ID
	if id == "" {
		id = uuid.New().String()
	}
	lastSeen := t.LastSeen
	if lastSeen.IsZero() {
		lastSeen = time.Now().UTC()
	}
	row := r.db.QueryRowContext(ctx, `
        INSERT INTO turtles (id, name, species, species_scientific, age, weight, length,
            turtle_status, health_status, threat_level, latitude, longitude,
            temperature, speed, depth, migration_trail, last_seen, tagged_date,
            total_distance, photo_url, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
        RETURNING `+turtleColumns,
		id, t.Name, t.Species, t.SpeciesScientific, t.Age, t.Weight, t.Length,
		status, string(t.HealthStatus), string(t.ThreatLevel), t.Location.Lat, t.Location.Lng,
		t.Temperature, t.Speed, t.Depth, trail, lastSeen, t.TaggedDate,
		t.TotalDistance, t.Image, t.Description)
	return scanTurtle(row)
}

func (r *turtles) Get(ctx context.Context, id string) (*model.Turtle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+turtleColumns+` FROM turtles WHERE id=$1`, id)
	out, err := scanTurtle(row)
	if err != nil {
		return nil, notFoundOr(err, "turtle", id)
	}
	return out, nil
}

func (r *turtles) List(ctx context.Context) ([]*model.Turtle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+turtleColumns+` FROM turtles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Turtle
	for rows.Next() {
		t, err := scanTurtle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update merges the patch onto the current row and writes the merged
// row back as a full replacement of the managed columns.
func (r *turtles) Update(ctx context.Context, id string, p store.TurtlePatch) (*model.Turtle, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTurtlePatch(cur, p)
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	status, err := model.TurtleStatusToExternal(cur.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	trail, err := json.Marshal(cur.MigrationTrail)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
        UPDATE turtles SET name=$2, species=$3, species_scientific=$4, age=$5, weight=$6,
            length=$7, turtle_status=$8, health_status=$9, threat_level=$10,
            latitude=$11, longitude=$12, temperature=$13, speed=$14, depth=$15,
            migration_trail=$16, photo_url=$17, description=$18, updated_at=now()
        WHERE id=$1
        RETURNING `+turtleColumns,
		id, cur.Name, cur.Species, cur.SpeciesScientific, cur.Age, cur.Weight,
		cur.Length, status, string(cur.HealthStatus), string(cur.ThreatLevel),
		cur.Location.Lat, cur.Location.Lng, cur.Temperature, cur.Speed, cur.Depth,
		trail, cur.Image, cur.Description)
	out, err := scanTurtle(row)
	if err != nil {
		return nil, notFoundOr(err, "turtle", id)
	}
	return out, nil
}

func (r *turtles) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM turtles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: turtle %s", model.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanTurtle(row rowScanner) (*model.Turtle, error) {
	var (
		t         model.Turtle
		extStatus string
		health    string
		threat    string
		trail     []byte
	)
	err := row.Scan(&t.ID, &t.Name, &t.Species, &t.SpeciesScientific, &t.Age, &t.Weight, &t.Length,
		&extStatus, &health, &threat, &t.Location.Lat, &t.Location.Lng,
		&t.Temperature, &t.Speed, &t.Depth, &trail, &t.LastSeen, &t.TaggedDate,
		&t.TotalDistance, &t.Image, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	st, err := model.TurtleStatusFromExternal(extStatus)
	if err != nil {
		return nil, err
	}
	t.Status = st
	t.HealthStatus = model.HealthStatus(health)
	t.ThreatLevel = model.ThreatLevel(threat)
	if len(trail) > 0 {
		if err := json.Unmarshal(trail, &t.MigrationTrail); err != nil {
			return nil, err
		}
	}
	return &t, nil
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

type beaches struct{ db *sql.DB }

const beachColumns = `id, name, country, region, latitude, longitude, nests_count,
    volunteers_count, threat_level, threats, recent_activity, photo_url,
    description, created_at, updated_at`

func (r *beaches) Create(ctx context.Context, b *model.Beach) (*model.Beach, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	threats, err := json.Marshal(b.Threats)
	if err != nil {
		return nil, err
	}
	activity, err := json.Marshal(b.RecentActivity)
	if err != nil {
		return nil, err
	}
	id := b.ID
	if id == "" {
		id = uuid.New().String()
	}
	row := r.db.QueryRowContext(ctx, `
        INSERT INTO beaches (id, name, country, region, latitude, longitude,
            nests_count, volunteers_count, threat_level, threats, recent_activity,
            photo_url, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING `+beachColumns,
		id, b.Name, b.Country, b.Region, b.Location.Lat, b.Location.Lng,
		b.NestCount, b.Volunteers, string(b.ThreatLevel), threats, activity,
		b.Image, b.Description)
	return scanBeach(row)
}

func (r *beaches) Get(ctx context.Context, id string) (*model.Beach, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+beachColumns+` FROM beaches WHERE id=$1`, id)
	out, err := scanBeach(row)
	if err != nil {
		return nil, notFoundOr(err, "beach", id)
	}
	return out, nil
}

func (r *beaches) List(ctx context.Context) ([]*model.Beach, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+beachColumns+` FROM beaches ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Beach
	for rows.Next() {
		b, err := scanBeach(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *beaches) Update(ctx context.Context, id string, p store.BeachPatch) (*model.Beach, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBeachPatch(cur, p)
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	threats, err := json.Marshal(cur.Threats)
	if err != nil {
		return nil, err
	}
	activity, err := json.Marshal(cur.RecentActivity)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
        UPDATE beaches SET name=$2, country=$3, region=$4, latitude=$5, longitude=$6,
            nests_count=$7, volunteers_count=$8, threat_level=$9, threats=$10,
            recent_activity=$11, photo_url=$12, description=$13, updated_at=now()
        WHERE id=$1
        RETURNING `+beachColumns,
		id, cur.Name, cur.Country, cur.Region, cur.Location.Lat, cur.Location.Lng,
		cur.NestCount, cur.Volunteers, string(cur.ThreatLevel), threats, activity,
		cur.Image, cur.Description)
	out, err := scanBeach(row)
	if err != nil {
		return nil, notFoundOr(err, "beach", id)
	}
	return out, nil
}

func (r *beaches) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM beaches WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: beach %s", model.ErrNotFound, id)
	}
	return nil
}

func scanBeach(row rowScanner) (*model.Beach, error) {
	var (
		b        model.Beach
		threat   string
		threats  []byte
		activity []byte
	)
	err := row.Scan(&b.ID, &b.Name, &b.Country, &b.Region, &b.Location.Lat, &b.Location.Lng,
		&b.NestCount, &b.Volunteers, &threat, &threats, &activity, &b.Image,
		&b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.ThreatLevel = model.ThreatLevel(threat)
	if len(threats) > 0 {
		if err := json.Unmarshal(threats, &b.Threats); err != nil {
			return nil, err
		}
	}
	if len(activity) > 0 {
		if err := json.Unmarshal(activity, &b.RecentActivity); err != nil {
			return nil, err
		}
	}
	return &b, nil
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

type nests struct{ db *sql.DB }

const nestColumns = `id, beach_id, beach_name, turtle_count, hatch_date, declared_by,
    declared_at, status, notes`

func (r *nests) Create(ctx context.Context, n *model.Nest) (*model.Nest, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	id := n.ID
	if id == "" {
		id = uuid.New().String()
	}
	row := r.db.QueryRowContext(ctx, `
        INSERT INTO nests (id, beach_id, beach_name, turtle_count, hatch_date,
            declared_by, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING `+nestColumns,
		id, n.BeachID, n.BeachName, n.TurtleCount, n.HatchDate,
		n.DeclaredBy, string(n.Status), n.Notes)
	return scanNest(row)
}

func (r *nests) Get(ctx context.Context, id string) (*model.Nest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+nestColumns+` FROM nests WHERE id=$1`, id)
	out, err := scanNest(row)
	if err != nil {
		return nil, notFoundOr(err, "nest", id)
	}
	return out, nil
}

func (r *nests) List(ctx context.Context) ([]*model.Nest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+nestColumns+` FROM nests ORDER BY declared_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Nest
	for rows.Next() {
		n, err := scanNest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *nests) Update(ctx context.Context, id string, p store.NestPatch) (*model.Nest, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != nil && !cur.Status.CanTransition(*p.Status) {
		return nil, fmt.Errorf("%w: nest status %s cannot become %s", model.ErrValidation, cur.Status, *p.Status)
	}
	applyNestPatch(cur, p)
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
        UPDATE nests SET beach_id=$2, beach_name=$3, turtle_count=$4, hatch_date=$5,
            status=$6, notes=$7, updated_at=now()
        WHERE id=$1
        RETURNING `+nestColumns,
		id, cur.BeachID, cur.BeachName, cur.TurtleCount, cur.HatchDate,
		string(cur.Status), cur.Notes)
	out, err := scanNest(row)
	if err != nil {
		return nil, notFoundOr(err, "nest", id)
	}
	return out, nil
}

func (r *nests) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM nests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: nest %s", model.ErrNotFound, id)
	}
	return nil
}

func scanNest(row rowScanner) (*model.Nest, error) {
	var (
		n      model.Nest
		status string
	)
	err := row.Scan(&n.ID, &n.BeachID, &n.BeachName, &n.TurtleCount, &n.HatchDate,
		&n.DeclaredBy, &n.DeclaredAt, &status, &n.Notes)
	if err != nil {
		return nil, err
	}
	n.Status = model.NestStatus(status)
	return &n, nil
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
