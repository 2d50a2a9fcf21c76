package model

import "fmt"

// Validate checks coordinate bounds.
func (p LatLng) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrValidation, p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrValidation, p.Lng)
	}
	return nil
}

// Validate enforces the turtle invariants: name and species required,
// numeric attributes non-negative, enums in their closed sets, location
// within bounds.
func (t *Turtle) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: turtle name is required", ErrValidation)
	}
	if t.Species == "" {
		return fmt.Errorf("%w: turtle species is required", ErrValidation)
	}
	if t.Age < 0 || t.Weight < 0 || t.Length < 0 {
		return fmt.Errorf("%w: age, weight and length must be non-negative", ErrValidation)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown turtle status %q", ErrValidation, t.Status)
	}
	if !t.HealthStatus.Valid() {
		return fmt.Errorf("%w: unknown health status %q", ErrValidation, t.HealthStatus)
	}
	if !t.ThreatLevel.Valid() {
		return fmt.Errorf("%w: unknown threat level %q", ErrValidation, t.ThreatLevel)
	}
	return t.Location.Validate()
}

// Validate enforces the beach invariants.
func (b *Beach) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: beach name is required", ErrValidation)
	}
	if b.Country == "" {
		return fmt.Errorf("%w: beach country is required", ErrValidation)
	}
	if b.NestCount < 0 || b.Volunteers < 0 {
		return fmt.Errorf("%w: nest and volunteer counts must be non-negative", ErrValidation)
	}
	if !b.ThreatLevel.Valid() {
		return fmt.Errorf("%w: unknown threat level %q", ErrValidation, b.ThreatLevel)
	}
	return b.Location.Validate()
}

// Validate enforces the nest invariants. Beach resolution is the
// store's concern; only field-level checks happen here.
func (n *Nest) Validate() error {
	if n.BeachID == "" {
		return fmt.Errorf("%w: nest beachId is required", ErrValidation)
	}
	if n.TurtleCount < 1 || n.TurtleCount > 500 {
		return fmt.Errorf("%w: turtle count %d out of range [1,500]", ErrValidation, n.TurtleCount)
	}
	if n.HatchDate == "" {
		return fmt.Errorf("%w: nest hatch date is required", ErrValidation)
	}
	if !n.Status.Valid() {
		return fmt.Errorf("%w: unknown nest status %q", ErrValidation, n.Status)
	}
	return nil
}
