// Package metrics exposes Prometheus instrumentation: entity-change
// counters fed from the event bus and HTTP server metrics.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/turtletrack/turtletrack/internal/events"
)

var (
	entityChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turtletrack",
			Subsystem: "entities",
			Name:      "changes_total",
			Help:      "Entity mutations by event kind.",
		},
		[]string{"kind"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "turtletrack",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served.",
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "turtletrack",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Consume drains the event bus, counting each mutation by kind. It
// returns when ctx is canceled. Run it in its own goroutine.
func Consume(ctx context.Context, bus *events.Bus) {
	if bus == nil {
		return
	}
	for {
		select {
		case evt := <-bus.Subscribe():
			entityChangesTotal.WithLabelValues(string(evt.Kind)).Inc()
		case <-ctx.Done():
			return
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument wraps a handler with the in-flight gauge and the duration
// histogram. The route label is the mux path template so ids do not
// explode cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		httpDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
