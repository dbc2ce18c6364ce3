// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
)

// Resolver applies player-to-enemy and enemy-to-player attacks, and the
// Bygone's part-death side effects, against the arena's entity rows.
type Resolver struct {
	arena  *arena.Arena
	roller dice.Roller
	log    *zap.Logger
}

// New returns a Resolver backed by a, rolling via roller.
func New(a *arena.Arena, roller dice.Roller, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{arena: a, roller: roller, log: log}
}

// ResolvePlayerAttacks resolves every PlayerAttackEvent queued this tick
// against the arena, in queue order, emitting BattleLogEvents and
// BygonePartDeathEvents to bus. A player lacking Ready or Active is
// silently ignored: this enforces one attack per turn per player.
func (r *Resolver) ResolvePlayerAttacks(attacks []events.PlayerAttackEvent, bus *events.Bus) {
	for _, ev := range attacks {
		player, ok := r.arena.Player(ev.GameId, ev.Player)
		if !ok || !player.Active || !player.Ready {
			r.log.Debug("dropping player attack: not an active, ready player",
				zap.String("game_id", string(ev.GameId)), zap.String("user_id", string(ev.Player)))
			continue
		}

		enemy, ok := r.arena.ActiveEnemy(ev.GameId)
		if !ok {
			r.log.Debug("dropping player attack: no active enemy", zap.String("game_id", string(ev.GameId)))
			continue
		}

		part := enemy.Parts[ev.Target]
		if !part.Health.Alive() {
			continue
		}

		roll, err := dice.D100(r.roller)
		if err != nil {
			r.log.Debug("dropping player attack: roll failed", zap.Error(err))
			continue
		}

		hit := player.Attack.Attack(&part, roll)
		enemy.Parts[ev.Target] = part

		if hit {
			bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogPlayerHit, Name: ev.Name, Part: ev.Target})
			if !part.Health.Alive() {
				bus.PublishBygonePartDeath(events.BygonePartDeathEvent{GameId: ev.GameId, Part: ev.Target, Guild: ev.Guild})
			}
		} else {
			bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogPlayerMiss, Name: ev.Name})
		}

		player.Ready = false
	}
}

// ResolvePartDeaths applies the side effects of every BygonePartDeathEvent
// queued this tick, in queue order. This must run after
// ResolvePlayerAttacks and before ResolveEnemyAttacks in the same tick.
func (r *Resolver) ResolvePartDeaths(deaths []events.BygonePartDeathEvent, bus *events.Bus) {
	for _, ev := range deaths {
		enemy, ok := r.arena.Enemy(ev.GameId)
		if !ok {
			continue
		}

		switch ev.Part {
		case entity.Core:
			enemy.Stage = enemy.Stage.Next()
			if enemy.Stage.Terminal() {
				enemy.Active = false
				bus.PublishDeactivate(events.DeactivateEvent{GameId: ev.GameId, EntityIsEnemy: true})
				bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogBygoneDead})
			} else {
				core := enemy.Parts[entity.Core]
				enemy.Parts[entity.Core] = entity.NewVitality(core.Health.Max, core.Dodge)
			}
		case entity.Sensor:
			enemy.Attack.ModifyAccuracy(SensorAccuracyPenalty)
		case entity.Gun:
			enemy.Attack.ModifyAccuracy(GunAccuracyPenalty)
		case entity.LeftWing, entity.RightWing:
			for p, v := range enemy.Parts {
				v.ModifyDodge(WingDodgePenalty)
				enemy.Parts[p] = v
			}
		}
	}
}

// ResolveEnemyAttacks resolves every EnemyAttackEvent queued this tick
// against the arena's active players, in queue order. A game with no
// active players is a no-op, not a panic.
func (r *Resolver) ResolveEnemyAttacks(attacks []events.EnemyAttackEvent, bus *events.Bus) {
	for _, ev := range attacks {
		players := r.arena.ActivePlayersForGame(ev.GameId)
		if len(players) == 0 {
			continue
		}

		enemy, ok := r.arena.ActiveEnemy(ev.GameId)
		if !ok {
			continue
		}

		victimSlot, ok := dice.ChooseMut(r.roller, players)
		if !ok {
			continue
		}
		victim := *victimSlot // *entity.Player: same row the arena holds

		roll, err := dice.D100(r.roller)
		if err != nil {
			r.log.Debug("dropping enemy attack: roll failed", zap.Error(err))
			continue
		}

		hit := enemy.Attack.Attack(&victim.Vitality, roll)

		if hit {
			bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogBygoneHit, Name: victim.Name})
			if !victim.Vitality.Health.Alive() {
				bus.PublishDeactivate(events.DeactivateEvent{GameId: ev.GameId, Player: victim.UserId})
				bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogPlayerDead, Name: victim.Name})
			}
		} else {
			bus.PublishBattleLog(events.BattleLogEvent{Guild: ev.Guild, Kind: events.LogBygoneMiss, Name: victim.Name})
		}
	}
}
