// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/combat"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
)

func newEasyGame(t *testing.T) (*arena.Arena, entity.GameId) {
	t.Helper()
	a := arena.New()
	gameID := entity.GameId("g1")

	player := entity.NewPlayer("u1", "U1", gameID, entity.NewVitality(6, 100), entity.NewAttack(1, 100))
	a.PutPlayer(player)

	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(1, 0), entity.NewAttack(1, 100))
	a.PutEnemy(enemy)

	return a, gameID
}

// S1: happy single hit on Sensor with the roll forced to its maximum, 99.
func TestResolvePlayerAttacks_HitKillsPartAndAppliesSideEffectNextPhase(t *testing.T) {
	a, gameID := newEasyGame(t)
	roller := dice.NewMockRoller(99) // accuracy 100 + roll 99, clamps range [0,100) so 99 is max
	r := combat.New(a, roller, nil)
	bus := events.NewBus()

	r.ResolvePlayerAttacks([]events.PlayerAttackEvent{
		{Player: "u1", Name: "U1", Guild: "gu1", GameId: gameID, Target: entity.Sensor},
	}, bus)

	enemy, _ := a.Enemy(gameID)
	assert.Equal(t, 0, enemy.Parts[entity.Sensor].Health.Current)

	logs := bus.DrainBattleLog()
	require.Len(t, logs, 1)
	assert.Equal(t, events.LogPlayerHit, logs[0].Kind)

	deaths := bus.DrainBygonePartDeath()
	require.Len(t, deaths, 1)
	assert.Equal(t, entity.Sensor, deaths[0].Part)

	player, _ := a.Player(gameID, "u1")
	assert.True(t, player.Active)
	assert.False(t, player.Ready, "Ready must be stripped whether the attack hits or misses")

	r.ResolvePartDeaths(deaths, bus)
	assert.Equal(t, 60, enemy.Attack.Accuracy)
}

// S2: miss by dodge with roll forced to 0 and accuracy 0.
func TestResolvePlayerAttacks_Miss(t *testing.T) {
	a := arena.New()
	gameID := entity.GameId("g1")
	player := entity.NewPlayer("u1", "U1", gameID, entity.NewVitality(6, 100), entity.NewAttack(1, 0))
	a.PutPlayer(player)
	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(1, 80), entity.NewAttack(1, 100))
	a.PutEnemy(enemy)

	roller := dice.NewMockRoller(0)
	r := combat.New(a, roller, nil)
	bus := events.NewBus()

	r.ResolvePlayerAttacks([]events.PlayerAttackEvent{
		{Player: "u1", Name: "U1", Guild: "gu1", GameId: gameID, Target: entity.Sensor},
	}, bus)

	assert.Equal(t, 1, enemy.Parts[entity.Sensor].Health.Current)
	logs := bus.DrainBattleLog()
	require.Len(t, logs, 1)
	assert.Equal(t, events.LogPlayerMiss, logs[0].Kind)
}

func TestResolvePlayerAttacks_NotReadyPlayerIgnored(t *testing.T) {
	a, gameID := newEasyGame(t)
	player, _ := a.Player(gameID, "u1")
	player.Ready = false

	roller := dice.NewMockRoller(99)
	r := combat.New(a, roller, nil)
	bus := events.NewBus()

	r.ResolvePlayerAttacks([]events.PlayerAttackEvent{
		{Player: "u1", Name: "U1", Guild: "gu1", GameId: gameID, Target: entity.Sensor},
	}, bus)

	enemy, _ := a.Enemy(gameID)
	assert.Equal(t, 1, enemy.Parts[entity.Sensor].Health.Current, "part unaffected when attacker lacks Ready")
	assert.Empty(t, bus.DrainBattleLog())
}

func TestResolvePartDeaths_CoreNonTerminalRestoresHealth(t *testing.T) {
	a := arena.New()
	gameID := entity.GameId("g1")
	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(3, 80), entity.NewAttack(1, 100))
	a.PutEnemy(enemy)
	core := enemy.Parts[entity.Core]
	core.Health.Reduce(3)
	enemy.Parts[entity.Core] = core

	r := combat.New(a, dice.NewMockRoller(0), nil)
	bus := events.NewBus()
	r.ResolvePartDeaths([]events.BygonePartDeathEvent{{GameId: gameID, Part: entity.Core, Guild: "gu1"}}, bus)

	assert.Equal(t, entity.Exposed, enemy.Stage)
	assert.Equal(t, 3, enemy.Parts[entity.Core].Health.Current, "core armors back up to max health")
	assert.True(t, enemy.Active)
	assert.Empty(t, bus.DrainDeactivate())
}

func TestResolvePartDeaths_CoreTerminalDeactivatesEnemy(t *testing.T) {
	a := arena.New()
	gameID := entity.GameId("g1")
	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(3, 80), entity.NewAttack(1, 100))
	enemy.Stage = entity.Burning
	a.PutEnemy(enemy)

	r := combat.New(a, dice.NewMockRoller(0), nil)
	bus := events.NewBus()
	r.ResolvePartDeaths([]events.BygonePartDeathEvent{{GameId: gameID, Part: entity.Core, Guild: "gu1"}}, bus)

	assert.Equal(t, entity.Defeated, enemy.Stage)
	assert.False(t, enemy.Active)
	deactivations := bus.DrainDeactivate()
	require.Len(t, deactivations, 1)
	assert.True(t, deactivations[0].EntityIsEnemy)

	logs := bus.DrainBattleLog()
	require.Len(t, logs, 1)
	assert.Equal(t, events.LogBygoneDead, logs[0].Kind)
}

func TestResolvePartDeaths_WingReducesAllPartsDodge(t *testing.T) {
	a := arena.New()
	gameID := entity.GameId("g1")
	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(3, 80), entity.NewAttack(1, 100))
	a.PutEnemy(enemy)

	r := combat.New(a, dice.NewMockRoller(0), nil)
	bus := events.NewBus()
	r.ResolvePartDeaths([]events.BygonePartDeathEvent{{GameId: gameID, Part: entity.LeftWing, Guild: "gu1"}}, bus)

	for _, p := range entity.AllBygoneParts {
		assert.Equal(t, 70, enemy.Parts[p].Dodge)
	}
}

func TestResolveEnemyAttacks_NoActivePlayersIsNoop(t *testing.T) {
	a := arena.New()
	gameID := entity.GameId("g1")
	enemy := entity.NewEnemy(gameID, entity.NewBygoneParts(1, 0), entity.NewAttack(1, 100))
	a.PutEnemy(enemy)

	r := combat.New(a, dice.NewMockRoller(0), nil)
	bus := events.NewBus()

	assert.NotPanics(t, func() {
		r.ResolveEnemyAttacks([]events.EnemyAttackEvent{{Guild: "gu1", GameId: gameID}}, bus)
	})
	assert.Empty(t, bus.DrainBattleLog())
}

func TestResolveEnemyAttacks_KillsPlayerAndEmitsDeactivate(t *testing.T) {
	a, gameID := newEasyGame(t)
	enemy, _ := a.Enemy(gameID)
	// One hit is lethal.
	enemy.Attack.Damage = entity.PlayerStartingHealth
	roller := dice.NewMockRoller(0, 99) // ChooseMut index 0, then accuracy roll 99
	r := combat.New(a, roller, nil)
	bus := events.NewBus()

	r.ResolveEnemyAttacks([]events.EnemyAttackEvent{{Guild: "gu1", GameId: gameID}}, bus)

	player, _ := a.Player(gameID, "u1")
	assert.Equal(t, 0, player.Vitality.Health.Current)

	deactivations := bus.DrainDeactivate()
	require.Len(t, deactivations, 1)
	assert.Equal(t, entity.UserId("u1"), deactivations[0].Player)

	logs := bus.DrainBattleLog()
	require.Len(t, logs, 2)
	assert.Equal(t, events.LogBygoneHit, logs[0].Kind)
	assert.Equal(t, events.LogPlayerDead, logs[1].Kind)
}
