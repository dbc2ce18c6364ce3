// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/gainanist/bygone-bot/dispatch"
	"github.com/gainanist/bygone-bot/engine/timer"
)

// Config holds every wall-clock and sizing constant the core recognizes.
// ProgressBarSize is carried through unused by the core itself: turning
// a fraction into a glyph-width bar is the platform adapter's concern.
type Config struct {
	TickPeriod      time.Duration
	EventDelay      time.Duration
	GameCooldown    time.Duration
	MaxGameDuration time.Duration
	Timer           timer.Config
	ProgressBarSize int

	// AttackRate and AttackBurst bound the dispatcher's per-(guild, user)
	// PlayerAttack token bucket, ahead of the Ready-tag dedup.
	AttackRate  rate.Limit
	AttackBurst int
}

// DefaultConfig matches spec.md §6's defaults.
func DefaultConfig() Config {
	return Config{
		TickPeriod:      100 * time.Millisecond,
		EventDelay:      500 * time.Millisecond,
		GameCooldown:    895 * time.Second,
		MaxGameDuration: 890 * time.Second,
		Timer:           timer.DefaultConfig(),
		ProgressBarSize: 4,
		AttackRate:      dispatch.DefaultAttackRate,
		AttackBurst:     dispatch.DefaultAttackBurst,
	}
}
