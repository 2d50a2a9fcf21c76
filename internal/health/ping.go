package health

import "context"

// Pinger can be implemented by components to expose a specialized
// health check. HealthPing must return nil when the component is healthy.
type Pinger interface {
	HealthPing(ctx context.Context) error
}
