// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package cleanup

import (
	"time"

	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
)

// MaxGameDuration is how long an Ongoing game may run, untouched or
// not, before Cleanup expires it.
const MaxGameDuration = 890 * time.Second

// Cleanup is the tick loop's final subsystem: it reaps arena rows for
// games the dispatcher superseded this tick and expires games that have
// run past MaxGameDuration.
type Cleanup struct {
	arena       *arena.Arena
	registry    *registry.Registry
	log         *zap.Logger
	maxDuration time.Duration
}

// New returns a Cleanup backed by a and reg, expiring games past
// maxDuration. A zero maxDuration falls back to MaxGameDuration.
func New(a *arena.Arena, reg *registry.Registry, maxDuration time.Duration, log *zap.Logger) *Cleanup {
	if log == nil {
		log = zap.NewNop()
	}
	if maxDuration <= 0 {
		maxDuration = MaxGameDuration
	}
	return &Cleanup{arena: a, registry: reg, maxDuration: maxDuration, log: log}
}

// Run reaps every queued DeallocateGameResourcesEvent, then expires
// every Ongoing game whose duration has crossed MaxGameDuration,
// emitting a final GameDrawEvent for each so the renderer can surface
// the outcome.
func (c *Cleanup) Run(dealloc []events.DeallocateGameResourcesEvent, bus *events.Bus) {
	for _, ev := range dealloc {
		c.arena.DeallocateGame(ev.GameId)
	}

	for guild, game := range c.registry.All() {
		if game.Status != platform.StatusOngoing {
			continue
		}
		if c.registry.DurationSecs(game) < c.maxDuration.Seconds() {
			continue
		}
		game.Status = platform.StatusExpired
		c.log.Debug("game expired", zap.String("guild_id", string(guild)), zap.String("game_id", string(game.Id)))
		bus.PublishGameDraw(events.GameDrawEvent{Guild: guild})
	}
}
