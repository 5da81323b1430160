// Package metrics exports simulation and server counters to Prometheus
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
)

const namespace = "orrery"

// Command results recorded by the server
const (
	ResultOK          = "ok"
	ResultError       = "error"
	ResultRateLimited = "rate_limited"
)

// Collector owns a private registry; nothing is registered globally
type Collector struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	orbits       *prometheus.CounterVec
	wsClients    prometheus.Gauge
	wsCommands   *prometheus.CounterVec
}

// New builds the collector; gauges read scene state from reg on scrape
func New(reg *status.Registry) *Collector {
	if reg == nil {
		reg = status.NewRegistry()
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks executed",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall-clock time spent in one simulation tick",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		orbits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orbits_completed_total",
			Help:      "Full revolutions completed per planet",
		}, []string{"planet"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_clients",
			Help:      "Connected WebSocket clients",
		}),
		wsCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_commands_total",
			Help:      "Control commands received over WebSocket",
		}, []string{"type", "result"}),
	}

	bodies := reg.Ints.Get("scene.bodies")
	speed := reg.Floats.Get("scene.speed")
	simTime := reg.Floats.Get("scene.time")

	c.registry.MustRegister(
		c.ticks,
		c.tickDuration,
		c.orbits,
		c.wsClients,
		c.wsCommands,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bodies",
			Help:      "Bodies in the scene",
		}, func() float64 { return float64(bodies.Load()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulation_speed",
			Help:      "Current simulation speed multiplier",
		}, speed.Load),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulation_time",
			Help:      "Accumulated simulation time units",
		}, simTime.Load),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveTick implements scene.TickObserver
func (c *Collector) ObserveTick(d time.Duration) {
	c.ticks.Inc()
	c.tickDuration.Observe(d.Seconds())
}

// ObserveOrbit counts a completed revolution; register with Scene.OnOrbitComplete
func (c *Collector) ObserveOrbit(ev scene.OrbitEvent) {
	c.orbits.WithLabelValues(ev.Planet).Inc()
}

// ClientConnected increments the WebSocket client gauge
func (c *Collector) ClientConnected() { c.wsClients.Inc() }

// ClientDisconnected decrements the WebSocket client gauge
func (c *Collector) ClientDisconnected() { c.wsClients.Dec() }

// CommandHandled records one control command and its outcome
func (c *Collector) CommandHandled(cmdType, result string) {
	c.wsCommands.WithLabelValues(cmdType, result).Inc()
}

// Registry exposes the private registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
