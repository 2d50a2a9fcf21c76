package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/turtletrack/turtletrack/internal/events"
)

func TestConsumeCountsEventsByKind(t *testing.T) {
	bus := events.NewBus(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Consume(ctx, bus)

	counter := entityChangesTotal.WithLabelValues(string(events.NestDeclared))
	before := testutil.ToFloat64(counter)

	require.True(t, bus.Publish(events.Event{Kind: events.NestDeclared, EntityID: "nest-1"}))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(counter) >= before+1
	}, 2*time.Second, 10*time.Millisecond)
}
