package model

import "time"

// LatLng is a WGS84 coordinate pair. Lat is bounded to [-90,90] and
// Lng to [-180,180]; Validate enforces the bounds.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Turtle is a tagged, tracked individual.
type Turtle struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Species           string       `json:"species"`
	SpeciesScientific string       `json:"speciesScientific,omitempty"`
	Age               int          `json:"age"`
	Weight            float64      `json:"weight"`
	Length            float64      `json:"length"`
	Status            TurtleStatus `json:"status"`
	HealthStatus      HealthStatus `json:"healthStatus"`
	ThreatLevel       ThreatLevel  `json:"threatLevel"`
	Location          LatLng       `json:"location"`
	Temperature       float64      `json:"temperature"`
	Speed             float64      `json:"speed"`
	Depth             float64      `json:"depth"`
	MigrationTrail    []LatLng     `json:"migrationTrail"`
	LastSeen          time.Time    `json:"lastSeen"`
	TaggedDate        string       `json:"taggedDate,omitempty"`
	TotalDistance     float64      `json:"totalDistance"`
	Image             string       `json:"image,omitempty"`
	Description       string       `json:"description,omitempty"`
	CreatedAt         time.Time    `json:"createdAt,omitempty"`
	UpdatedAt         time.Time    `json:"updatedAt,omitempty"`
}

// BeachActivity is one chronological activity-log entry for a beach.
type BeachActivity struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// Beach is a monitored nesting beach.
type Beach struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Country        string          `json:"country"`
	Region         string          `json:"region,omitempty"`
	Location       LatLng          `json:"location"`
	NestCount      int             `json:"nestCount"`
	Volunteers     int             `json:"volunteers"`
	ThreatLevel    ThreatLevel     `json:"threatLevel"`
	Threats        []string        `json:"threats,omitempty"`
	RecentActivity []BeachActivity `json:"recentActivity,omitempty"`
	Image          string          `json:"image,omitempty"`
	Description    string          `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt,omitempty"`
}

// Nest is a declared nest on a beach. BeachName is a denormalized
// snapshot taken at creation time; it falls back to "Unknown Beach"
// when the beach reference does not resolve.
type Nest struct {
	ID          string     `json:"id"`
	BeachID     string     `json:"beachId"`
	BeachName   string     `json:"beachName"`
	TurtleCount int        `json:"turtleCount"`
	HatchDate   string     `json:"hatchDate"`
	DeclaredBy  string     `json:"declaredBy"`
	DeclaredAt  time.Time  `json:"declaredAt"`
	Status      NestStatus `json:"status"`
	Notes       string     `json:"notes,omitempty"`
}

// User is an authenticated session identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// Volunteer is a registered volunteer credential record. PasswordHash
// holds a bcrypt hash; the system this replaces kept plaintext, hashing
// is a deliberate deviation.
type Volunteer struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Stats aggregates the dashboard numbers derived from the entity store.
type Stats struct {
	TotalTurtles     int `json:"totalTurtles"`
	ActiveTurtles    int `json:"activeTurtles"`
	NestingBeaches   int `json:"nestingBeaches"`
	TotalNests       int `json:"totalNests"`
	ActiveVolunteers int `json:"activeVolunteers"`
}
