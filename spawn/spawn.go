// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package spawn

import (
	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
)

// Spawner populates the arena in response to admitted spawn events.
type Spawner struct {
	arena  *arena.Arena
	roller dice.Roller
	log    *zap.Logger
}

// New returns a Spawner backed by a, rolling starting stats via roller.
func New(a *arena.Arena, roller dice.Roller, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spawner{arena: a, roller: roller, log: log}
}

// SpawnBygones rolls and inserts a fresh Enemy row for every queued
// BygoneSpawnEvent, in queue order.
func (s *Spawner) SpawnBygones(spawns []events.BygoneSpawnEvent) {
	for _, ev := range spawns {
		stats, ok := entity.DifficultyTable[ev.Difficulty]
		if !ok {
			s.log.Debug("dropping bygone spawn: unknown difficulty",
				zap.String("game_id", string(ev.GameId)), zap.Int("difficulty", int(ev.Difficulty)))
			continue
		}

		parts := make(entity.BygoneParts, len(entity.AllBygoneParts))
		wingsHP, err := dice.Range(s.roller, stats.PartHealthRange.Min, stats.PartHealthRange.Max)
		if err != nil {
			s.log.Debug("dropping bygone spawn: roll failed", zap.Error(err))
			continue
		}
		rollFailed := false
		for _, part := range entity.AllBygoneParts {
			hp := wingsHP
			if part != entity.LeftWing && part != entity.RightWing {
				hp, err = dice.Range(s.roller, stats.PartHealthRange.Min, stats.PartHealthRange.Max)
				if err != nil {
					rollFailed = true
					break
				}
			}
			parts[part] = entity.NewVitality(hp, entity.DodgeForPart(part))
		}
		if rollFailed {
			s.log.Debug("dropping bygone spawn: roll failed", zap.Error(err))
			continue
		}

		damage, err := dice.Range(s.roller, stats.AttackRange.Min, stats.AttackRange.Max)
		if err != nil {
			s.log.Debug("dropping bygone spawn: roll failed", zap.Error(err))
			continue
		}
		attack := entity.NewAttack(damage, entity.EnemyAttackAccuracy)

		s.arena.PutEnemy(entity.NewEnemy(ev.GameId, parts, attack))
	}
}

// SpawnPlayers inserts a fresh, fixed-stat Player row for every queued
// PlayerJoinEvent, in queue order. A row that already exists for
// (player, game) is replaced, matching the dispatcher's contract that
// PlayerJoinEvent is only emitted for a user with no existing row.
func (s *Spawner) SpawnPlayers(joins []events.PlayerJoinEvent) {
	for _, ev := range joins {
		vitality := entity.NewVitality(entity.PlayerStartingHealth, entity.PlayerStartingDodge)
		attack := entity.NewAttack(entity.PlayerAttackDamage, entity.PlayerAttackAccuracy)
		s.arena.PutPlayer(entity.NewPlayer(ev.Player, ev.Name, ev.GameId, vitality, attack))
	}
}
