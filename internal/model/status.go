package model

import "fmt"

// Role distinguishes the two authenticated identities.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

// TurtleStatus is the internal lifecycle set. External schemas use a
// different closed set; translation happens once, at the storage
// boundary (see TurtleStatusToExternal / TurtleStatusFromExternal),
// never ad hoc at call sites.
type TurtleStatus string

const (
	TurtleActive    TurtleStatus = "active"
	TurtleNesting   TurtleStatus = "nesting"
	TurtleMigrating TurtleStatus = "migrating"
	TurtleResting   TurtleStatus = "resting"
)

// HealthStatus is the closed health set.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// ThreatLevel applies to both turtles and beaches.
type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "low"
	ThreatMedium   ThreatLevel = "medium"
	ThreatHigh     ThreatLevel = "high"
	ThreatCritical ThreatLevel = "critical"
)

// NestStatus is the nest lifecycle set.
type NestStatus string

const (
	NestActive  NestStatus = "active"
	NestHatched NestStatus = "hatched"
	NestFailed  NestStatus = "failed"
)

// FilterAll is the sentinel categorical filter value that matches
// every entity.
const FilterAll = "all"

var turtleStatuses = map[TurtleStatus]bool{
	TurtleActive: true, TurtleNesting: true, TurtleMigrating: true, TurtleResting: true,
}

var healthStatuses = map[HealthStatus]bool{
	HealthExcellent: true, HealthGood: true, HealthFair: true, HealthPoor: true,
}

var threatLevels = map[ThreatLevel]bool{
	ThreatLow: true, ThreatMedium: true, ThreatHigh: true, ThreatCritical: true,
}

var nestStatuses = map[NestStatus]bool{
	NestActive: true, NestHatched: true, NestFailed: true,
}

func (s TurtleStatus) Valid() bool { return turtleStatuses[s] }
func (s HealthStatus) Valid() bool { return healthStatuses[s] }
func (t ThreatLevel) Valid() bool  { return threatLevels[t] }
func (s NestStatus) Valid() bool   { return nestStatuses[s] }

// nestTransitions is the validated transition table: active may hatch
// or fail, the terminal states admit nothing. The system this replaces
// allowed any transition; constraining it is a recorded deviation.
var nestTransitions = map[NestStatus][]NestStatus{
	NestActive:  {NestHatched, NestFailed},
	NestHatched: {},
	NestFailed:  {},
}

// CanTransition reports whether a nest may move from s to next.
// Setting the same status again is always allowed (no-op update).
func (s NestStatus) CanTransition(next NestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range nestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// External turtle_status values used by the hosted backend schema.
const (
	externalActive   = "active"
	externalMissing  = "missing"
	externalReleased = "released"
	externalDeceased = "deceased"
)

var turtleStatusToExternal = map[TurtleStatus]string{
	TurtleActive:    externalActive,
	TurtleNesting:   externalMissing,
	TurtleMigrating: externalReleased,
	TurtleResting:   externalDeceased,
}

var turtleStatusFromExternal = map[string]TurtleStatus{
	externalActive:   TurtleActive,
	externalMissing:  TurtleNesting,
	externalReleased: TurtleMigrating,
	externalDeceased: TurtleResting,
}

// TurtleStatusToExternal maps an internal status onto the external
// schema's turtle_status enum.
func TurtleStatusToExternal(s TurtleStatus) (string, error) {
	v, ok := turtleStatusToExternal[s]
	if !ok {
		return "", fmt.Errorf("unknown turtle status %q", s)
	}
	return v, nil
}

// TurtleStatusFromExternal maps an external turtle_status value back
// into the internal set.
func TurtleStatusFromExternal(v string) (TurtleStatus, error) {
	s, ok := turtleStatusFromExternal[v]
	if !ok {
		return "", fmt.Errorf("unknown external turtle status %q", v)
	}
	return s, nil
}
