package status

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the central metrics facade for one controller
// Components cache the collectors at construction; update paths write directly
type Registry struct {
	Sessions          prometheus.Counter
	Ticks             prometheus.Counter
	FoodEaten         prometheus.Counter
	GameOvers         *prometheus.CounterVec // cause=wall|self|filled
	DirectionRejected prometheus.Counter
	ScoreWrites       *prometheus.CounterVec // outcome=success|failure
	SnakeLength       prometheus.Gauge
	BestScore         prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewRegistry creates the collectors on reg, or on a private registry when reg is nil
func NewRegistry(reg *prometheus.Registry) *Registry {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Registry{
		Sessions: f.NewCounter(prometheus.CounterOpts{
			Name: "snake_sessions_total",
			Help: "Sessions created, including restarts",
		}),
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "snake_ticks_total",
			Help: "Simulation ticks applied",
		}),
		FoodEaten: f.NewCounter(prometheus.CounterOpts{
			Name: "snake_food_eaten_total",
			Help: "Food items eaten",
		}),
		GameOvers: f.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_game_over_total",
			Help: "Sessions ended by cause",
		}, []string{"cause"}),
		DirectionRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "snake_direction_rejected_total",
			Help: "Direction changes refused by the reversal guard",
		}),
		ScoreWrites: f.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_best_score_writes_total",
			Help: "Best score persistence attempts by outcome",
		}, []string{"outcome"}),
		SnakeLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "snake_length",
			Help: "Current snake body length",
		}),
		BestScore: f.NewGauge(prometheus.GaugeOpts{
			Name: "snake_best_score",
			Help: "Best score last observed from the score store",
		}),
		gatherer: reg,
	}
}

// Gatherer exposes the backing registry for /metrics
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.gatherer
}
