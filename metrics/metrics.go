// Package metrics exports game activity to prometheus.
package metrics

import (
	"net/http"

	"github.com/battlesnakeio/snake/rules"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	steps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "steps_total",
			Help:      "Steps taken by the game.",
		},
	)
	foodGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "food_generated_total",
			Help:      "Food placed after the snake ate.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "snake_length",
			Help:      "Current number of snake segments.",
		},
	)
)

func init() {
	prometheus.MustRegister(steps, foodGenerated, snakeLength)
}

// Instrument records the notifications of gs.
func Instrument(gs *rules.GameState) {
	snakeLength.Set(float64(len(gs.Snake())))

	gs.OnSnakeMove(func(snake []rules.Point) {
		steps.Inc()
		snakeLength.Set(float64(len(snake)))
	})
	gs.OnFoodGenerated(func(rules.Point) {
		foodGenerated.Inc()
	})
}

// Serve exposes /metrics on listen in the background.
func Serve(listen string) {
	log.WithField("addr", listen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(listen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
