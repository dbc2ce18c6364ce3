// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package timer

import (
	"time"

	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
)

// Config holds the Turn Timer's wall-clock constants.
type Config struct {
	TurnDuration      time.Duration
	EnemyAttackDelay  time.Duration
	ProgressBarTick   time.Duration
}

// DefaultConfig matches spec.md's defaults: TurnDuration=10s,
// EnemyAttackDelay=9.5s, ProgressBarTick=2s.
func DefaultConfig() Config {
	return Config{
		TurnDuration:     10 * time.Second,
		EnemyAttackDelay: 9500 * time.Millisecond,
		ProgressBarTick:  2 * time.Second,
	}
}

type record struct {
	guild          entity.GuildId
	start          time.Time
	enemyAttacked  bool
	turnEnded      bool
	progressTicks  uint64
}

// Timer tracks one clock per (guild, game) currently mid-turn. It is
// not safe for concurrent use: the tick loop is its only caller.
type Timer struct {
	cfg     Config
	records map[entity.GameId]*record
}

// New returns a Timer with no active records.
func New(cfg Config) *Timer {
	return &Timer{cfg: cfg, records: make(map[entity.GameId]*record)}
}

// ObserveAttacks lazily starts a timer for every (guild, game) seen in
// attacks that doesn't already have one; the turn starts at now.
// Consequence: until the first attack of a round, no enemy attack
// fires; after a round ends, no timer exists until another attack.
func (t *Timer) ObserveAttacks(now time.Time, attacks []events.PlayerAttackEvent) {
	for _, a := range attacks {
		if _, ok := t.records[a.GameId]; ok {
			continue
		}
		t.records[a.GameId] = &record{guild: a.Guild, start: now}
	}
}

// Tick advances every tracked timer, publishing EnemyAttackEvent,
// TurnEndEvent, GameDrawEvent, and ProgressBarUpdateEvent to bus as
// their thresholds are crossed, and drops records once both the
// enemy-attack and turn-end flags have fired.
func (t *Timer) Tick(now time.Time, bus *events.Bus) {
	for gameID, rec := range t.records {
		elapsed := now.Sub(rec.start)

		switch {
		case elapsed <= t.cfg.TurnDuration && elapsed >= t.cfg.EnemyAttackDelay && !rec.enemyAttacked:
			bus.PublishEnemyAttack(events.EnemyAttackEvent{Guild: rec.guild, GameId: gameID})
			rec.enemyAttacked = true

		case elapsed > t.cfg.TurnDuration && !rec.turnEnded:
			bus.PublishTurnEnd(events.TurnEndEvent{GameId: gameID})
			bus.PublishGameDraw(events.GameDrawEvent{Guild: rec.guild})
			rec.turnEnded = true

		default:
			nextThreshold := time.Duration(rec.progressTicks+1) * t.cfg.ProgressBarTick
			if elapsed >= nextThreshold && elapsed < t.cfg.TurnDuration {
				progress := elapsed.Seconds() / t.cfg.TurnDuration.Seconds()
				bus.PublishProgressBarUpdate(events.ProgressBarUpdateEvent{Guild: rec.guild, Progress: progress})
				rec.progressTicks++
			}
		}

		if rec.enemyAttacked && rec.turnEnded {
			delete(t.records, gameID)
		}
	}
}

// Len reports how many (guild, game) timers are currently tracked.
func (t *Timer) Len() int {
	return len(t.records)
}
