// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the tick loop's instruments against their own registry,
// so a process can run more than one Engine (or a test can construct
// many) without colliding on prometheus's default registerer.
type Metrics struct {
	registry *prometheus.Registry

	activeGames  prometheus.Gauge
	tickDuration prometheus.Histogram

	attacksTotal      prometheus.Counter
	enemyAttacksTotal prometheus.Counter

	gamesFinishedTotal *prometheus.CounterVec
	oneshotsTotal      *prometheus.CounterVec
}

// New builds a Metrics instance and registers every instrument against
// its own registry. It never touches prometheus.DefaultRegisterer.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		activeGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bygone_active_games",
			Help: "Number of guilds with a game registered, any status.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bygone_tick_duration_seconds",
			Help:    "Wall time spent in one Engine.Tick call.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		attacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bygone_attacks_total",
			Help: "Total player attacks resolved against the enemy.",
		}),
		enemyAttacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bygone_enemy_attacks_total",
			Help: "Total enemy attacks resolved against players.",
		}),
		gamesFinishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bygone_games_finished_total",
			Help: "Total games that left the Ongoing status, by terminal reason.",
		}, []string{"reason"}), // bounded: "won", "lost", "expired"
		oneshotsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bygone_oneshots_total",
			Help: "Total oneshot rejections the dispatcher produced, by kind.",
		}, []string{"kind"}), // bounded: "cooldown", "other_game_in_progress"
	}

	reg.MustRegister(
		m.activeGames,
		m.tickDuration,
		m.attacksTotal,
		m.enemyAttacksTotal,
		m.gamesFinishedTotal,
		m.oneshotsTotal,
	)
	return m
}

// Registry returns the registry these instruments live on, for an HTTP
// handler to expose.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTick records how long a Tick call took and the current number
// of registered games.
func (m *Metrics) ObserveTick(d time.Duration, activeGames int) {
	m.tickDuration.Observe(d.Seconds())
	m.activeGames.Set(float64(activeGames))
}

// RecordAttack increments the player-attack counter.
func (m *Metrics) RecordAttack() {
	m.attacksTotal.Inc()
}

// RecordEnemyAttack increments the enemy-attack counter.
func (m *Metrics) RecordEnemyAttack() {
	m.enemyAttacksTotal.Inc()
}

// RecordGameFinished increments the finished-games counter for reason,
// one of "won", "lost", "expired".
func (m *Metrics) RecordGameFinished(reason string) {
	m.gamesFinishedTotal.WithLabelValues(reason).Inc()
}

// RecordOneshot increments the oneshot counter for kind, one of
// "cooldown", "other_game_in_progress".
func (m *Metrics) RecordOneshot(kind string) {
	m.oneshotsTotal.WithLabelValues(kind).Inc()
}
