package metrics

import (
	"net/http"
	"shapetrainer/internal/events"
	"shapetrainer/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the game counters on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Spawns   *prometheus.CounterVec
	Reaction prometheus.Histogram
	Finished prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shapetrainer",
			Name:      "hits_total",
			Help:      "Shapes clicked, by reaction quality.",
		}, []string{"quality"}),
		Misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shapetrainer",
			Name:      "misses_total",
			Help:      "Missed clicks and expired shapes.",
		}, []string{"kind"}),
		Spawns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shapetrainer",
			Name:      "spawns_total",
			Help:      "Shapes spawned, by kind.",
		}, []string{"shape"}),
		Reaction: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shapetrainer",
			Name:      "reaction_ms",
			Help:      "Reaction time of hits in milliseconds.",
			Buckets:   []float64{100, 200, 300, 400, 600, 800, 1200, 2000, 3000},
		}),
		Finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shapetrainer",
			Name:      "sessions_finished_total",
			Help:      "Sessions that ran to the end of their timer.",
		}),
	}
	m.Registry.MustRegister(m.Hits, m.Misses, m.Spawns, m.Reaction, m.Finished)
	return m
}

// Observe records one session event.
func (m *Metrics) Observe(ev events.Event) {
	switch ev.Kind {
	case events.KindHit:
		m.Hits.WithLabelValues(string(ev.Quality)).Inc()
		m.Reaction.Observe(float64(ev.ReactionMs))
	case events.KindMiss:
		m.Misses.WithLabelValues(string(ev.Miss)).Inc()
	case events.KindSpawn:
		m.Spawns.WithLabelValues(ev.ShapeKind).Inc()
	case events.KindPhase:
		if ev.Phase == string(session.PhaseFinished) {
			m.Finished.Inc()
		}
	}
}

// TrackSessions exports the live session count, sampled at scrape time.
func (m *Metrics) TrackSessions(count func() int) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "shapetrainer",
		Name:      "active_sessions",
		Help:      "Sessions currently held in memory.",
	}, func() float64 { return float64(count()) }))
}

// TrackDropped exports how many events live sessions have dropped.
func (m *Metrics) TrackDropped(dropped func() int) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "shapetrainer",
		Name:      "dropped_events",
		Help:      "Events live sessions dropped because their bus was full.",
	}, func() float64 { return float64(dropped()) }))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
