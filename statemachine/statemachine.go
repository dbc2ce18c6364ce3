// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package statemachine

import (
	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
)

// Driver applies this tick's deactivations, decides whether any Ongoing
// game just finished, and re-readies players at turn end.
type Driver struct {
	arena    *arena.Arena
	registry *registry.Registry
	log      *zap.Logger
}

// New returns a Driver backed by a and reg.
func New(a *arena.Arena, reg *registry.Registry, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{arena: a, registry: reg, log: log}
}

// ApplyDeactivations strips the Active tag from every entity named by
// this tick's queued DeactivateEvents. Must run before UpdateGameStatus
// in the same tick so a just-defeated enemy or player is already absent
// from the arena's active sets.
func (d *Driver) ApplyDeactivations(deactivations []events.DeactivateEvent) {
	for _, ev := range deactivations {
		if ev.EntityIsEnemy {
			d.arena.DeactivateEnemy(ev.GameId)
		} else {
			d.arena.DeactivatePlayer(ev.GameId, ev.Player)
		}
	}
}

// UpdateGameStatus walks every Ongoing game in the registry and
// transitions it to Finished(Won) or Finished(Lost) once the arena
// shows the enemy or every player gone, emitting a GameDrawEvent for
// any game whose status changed this tick.
func (d *Driver) UpdateGameStatus(bus *events.Bus) {
	for guild, game := range d.registry.All() {
		if game.Status != platform.StatusOngoing {
			continue
		}

		if !d.arena.HasAnyEntity(game.Id) {
			// The enemy hasn't been spawned yet this tick (or ever);
			// too early to judge a winner.
			continue
		}

		var newStatus platform.GameStatus
		switch {
		case !enemyStillFighting(d.arena, game.Id):
			newStatus = platform.StatusWon
		case len(d.arena.ActivePlayersForGame(game.Id)) == 0:
			newStatus = platform.StatusLost
		default:
			continue
		}

		game.Status = newStatus
		d.log.Debug("game finished",
			zap.String("guild_id", string(guild)), zap.String("game_id", string(game.Id)),
			zap.Int("status", int(newStatus)))
		bus.PublishGameDraw(events.GameDrawEvent{Guild: guild})
	}
}

func enemyStillFighting(a *arena.Arena, gameID entity.GameId) bool {
	_, ok := a.ActiveEnemy(gameID)
	return ok
}

// ReadyPlayers restores the Ready tag on every Active player of a game
// whose turn just ended, for every queued TurnEndEvent.
func (d *Driver) ReadyPlayers(turnEnds []events.TurnEndEvent) {
	for _, ev := range turnEnds {
		for _, p := range d.arena.ActivePlayersForGame(ev.GameId) {
			p.Ready = true
		}
	}
}
