// Package api exposes a controller over HTTP: snapshots, events, a server-sent
// event stream, and prometheus metrics
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/status"
)

// Controller is the part of engine.Controller the HTTP surface drives
type Controller interface {
	Dispatch(ev events.GameEvent)
	Toggle()
	Snapshot() engine.Snapshot
	Subscribe() (<-chan engine.Snapshot, func())
}

// Option customizes NewRouter
type Option func(*options)

type options struct {
	rateLimit       int
	rateWindow      time.Duration
	streamKeepalive time.Duration
}

// WithRateLimit caps event posts per client IP to n per window
func WithRateLimit(n int, window time.Duration) Option {
	return func(o *options) {
		o.rateLimit = n
		o.rateWindow = window
	}
}

// WithStreamKeepalive sets the idle interval between SSE keepalive comments
func WithStreamKeepalive(d time.Duration) Option {
	return func(o *options) { o.streamKeepalive = d }
}

// NewRouter builds the HTTP handler for ctrl
func NewRouter(ctrl Controller, registry *status.Registry, logger zerolog.Logger, opts ...Option) http.Handler {
	o := options{
		rateLimit:       20,
		rateWindow:      time.Second,
		streamKeepalive: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	h := &handlers{
		ctrl:      ctrl,
		logger:    logger,
		keepalive: o.streamKeepalive,
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.healthz)
	r.Handle("/metrics", promhttp.HandlerFor(registry.Gatherer(), promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/snapshot", h.snapshot)
		r.Get("/stream", h.stream)
		r.With(rateLimit(o.rateLimit, o.rateWindow)).Post("/events", h.postEvent)
	})

	return r
}
