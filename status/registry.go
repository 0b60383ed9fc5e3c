// Package status exposes gameplay metrics through Prometheus
package status

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the central metrics facade
// Systems cache labelled children at construction; update paths touch them directly
// Methods are nil-safe so the bus and tests can run without metrics
type Metrics struct {
	Ticks           prometheus.Counter
	ShotsFired      *prometheus.CounterVec
	Hits            *prometheus.CounterVec
	Reloads         *prometheus.CounterVec
	BuffsGranted    *prometheus.CounterVec
	Messages        *prometheus.CounterVec
	LiveProjectiles *prometheus.GaugeVec
	PlayerHealth    prometheus.Gauge
	TurretHealth    prometheus.Gauge
	LivePickups     prometheus.Gauge
	PendingTimers   prometheus.Gauge
}

// NewMetrics creates and registers the gameplay metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dodge3d_ticks_total",
			Help: "Simulation ticks executed",
		}),
		ShotsFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dodge3d_shots_fired_total",
			Help: "Projectiles spawned by owner",
		}, []string{"owner"}),
		Hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dodge3d_hits_total",
			Help: "Resolved collisions by target",
		}, []string{"target"}),
		Reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dodge3d_reloads_total",
			Help: "Reload cycles started by owner",
		}, []string{"owner"}),
		BuffsGranted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dodge3d_buffs_granted_total",
			Help: "Buff effects granted by kind",
		}, []string{"kind"}),
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dodge3d_bus_messages_total",
			Help: "Bus messages by kind and outcome",
		}, []string{"kind", "outcome"}),
		LiveProjectiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dodge3d_live_projectiles",
			Help: "Live projectiles by owner",
		}, []string{"owner"}),
		PlayerHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dodge3d_player_health",
			Help: "Current player health",
		}),
		TurretHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dodge3d_turret_health",
			Help: "Current turret health",
		}),
		LivePickups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dodge3d_live_pickups",
			Help: "Pickups waiting to be shot",
		}),
		PendingTimers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dodge3d_pending_timers",
			Help: "Deferred callbacks waiting in the scheduler",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Ticks, m.ShotsFired, m.Hits, m.Reloads, m.BuffsGranted, m.Messages,
			m.LiveProjectiles, m.PlayerHealth, m.TurretHealth, m.LivePickups, m.PendingTimers,
		)
	}
	return m
}

// Unregistered returns metrics bound to a private registry, for tests and headless runs
func Unregistered() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// MessageDelivered counts one routed message
func (m *Metrics) MessageDelivered(kind string) {
	if m == nil {
		return
	}
	m.Messages.WithLabelValues(kind, "delivered").Inc()
}

// MessageUnrouted counts a send with no matching participant
func (m *Metrics) MessageUnrouted(kind string) {
	if m == nil {
		return
	}
	m.Messages.WithLabelValues(kind, "unrouted").Inc()
}

// MessageDropped counts a malformed message
func (m *Metrics) MessageDropped(kind string) {
	if m == nil {
		return
	}
	m.Messages.WithLabelValues(kind, "dropped").Inc()
}
