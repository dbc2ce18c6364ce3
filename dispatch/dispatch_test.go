// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/battlelog"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/dispatch"
	"github.com/gainanist/bygone-bot/engine/delay"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
)

func newDispatcher(t *testing.T) (*dispatch.Dispatcher, *arena.Arena, *registry.Registry, *delay.Queue) {
	t.Helper()
	a := arena.New()
	reg := registry.New()
	dq := delay.New(500 * time.Millisecond)
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	return dispatch.New(a, reg, dq, bl, 0, nil), a, reg, dq
}

func TestGameStart_AdmittedWhenGuildIsFree(t *testing.T) {
	d, _, reg, dq := newDispatcher(t)
	bus := events.NewBus()
	now := time.Now()

	d.Process(now, []platform.InputEvent{{GameStart: &platform.GameStartInput{
		InitialPlayer: "u1", Name: "Ripley", Difficulty: entity.Medium, Guild: "gu1", Interaction: "int1",
	}}}, bus)

	game, ok := reg.Get("gu1")
	require.True(t, ok)
	assert.Equal(t, platform.StatusOngoing, game.Status)
	require.Len(t, bus.DrainGameStart(), 1)
	require.Len(t, bus.DrainPlayerJoin(), 1)
	require.Len(t, bus.DrainBygoneSpawn(), 1)
	assert.Equal(t, 1, dq.Len())
}

func TestGameStart_OtherGameInProgressRejected(t *testing.T) {
	d, _, reg, _ := newDispatcher(t)
	bus := events.NewBus()
	now := time.Now()
	reg.Put("gu1", &registry.Game{StartTime: now, Id: "old", Status: platform.StatusOngoing})

	d.Process(now, []platform.InputEvent{{GameStart: &platform.GameStartInput{Guild: "gu1"}}}, bus)

	game, _ := reg.Get("gu1")
	assert.Equal(t, entity.GameId("old"), game.Id, "registry untouched")
	oneshots := bus.DrainOneshot()
	require.Len(t, oneshots, 1)
	assert.Equal(t, events.OneshotOtherGameInProgress, oneshots[0].Kind)
	assert.Empty(t, bus.DrainGameStart())
}

func TestGameStart_CooldownRejectedWithRemainingSecs(t *testing.T) {
	d, _, reg, _ := newDispatcher(t)
	bus := events.NewBus()
	now := time.Now()
	reg.Put("gu1", &registry.Game{StartTime: now.Add(-5 * time.Second), Id: "old", Status: platform.StatusWon})

	d.Process(now, []platform.InputEvent{{GameStart: &platform.GameStartInput{Guild: "gu1"}}}, bus)

	oneshots := bus.DrainOneshot()
	require.Len(t, oneshots, 1)
	assert.Equal(t, events.OneshotCooldown, oneshots[0].Kind)
	assert.InDelta(t, 890, oneshots[0].RemainingSecs, 1)
}

func TestGameStart_AfterCooldownReplacesOldGameAndDeallocates(t *testing.T) {
	d, _, reg, _ := newDispatcher(t)
	bus := events.NewBus()
	now := time.Now()
	reg.Put("gu1", &registry.Game{StartTime: now.Add(-900 * time.Second), Id: "old", Status: platform.StatusWon})

	d.Process(now, []platform.InputEvent{{GameStart: &platform.GameStartInput{Guild: "gu1"}}}, bus)

	game, _ := reg.Get("gu1")
	assert.NotEqual(t, entity.GameId("old"), game.Id)
	dealloc := bus.DrainDeallocateGameResources()
	require.Len(t, dealloc, 1)
	assert.Equal(t, entity.GameId("old"), dealloc[0].GameId)
}

func TestPlayerAttack_NoGameDropsSilently(t *testing.T) {
	d, _, _, _ := newDispatcher(t)
	bus := events.NewBus()

	d.Process(time.Now(), []platform.InputEvent{{PlayerAttack: &platform.PlayerAttackInput{Player: "u1", Guild: "gu1"}}}, bus)

	assert.Empty(t, bus.DrainPlayerAttack())
}

func TestPlayerAttack_InactivePlayerDropsSilently(t *testing.T) {
	d, a, reg, _ := newDispatcher(t)
	bus := events.NewBus()
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now()})
	p := entity.NewPlayer("u1", "Ripley", "g1", entity.NewVitality(6, 100), entity.NewAttack(1, 0))
	p.Active = false
	a.PutPlayer(p)

	d.Process(time.Now(), []platform.InputEvent{{PlayerAttack: &platform.PlayerAttackInput{Player: "u1", Guild: "gu1"}}}, bus)

	assert.Empty(t, bus.DrainPlayerAttack())
}

func TestPlayerAttack_ActivePlayerForwardedToResolverStream(t *testing.T) {
	d, a, reg, _ := newDispatcher(t)
	bus := events.NewBus()
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now()})
	a.PutPlayer(entity.NewPlayer("u1", "Ripley", "g1", entity.NewVitality(6, 100), entity.NewAttack(1, 0)))

	d.Process(time.Now(), []platform.InputEvent{{PlayerAttack: &platform.PlayerAttackInput{
		Player: "u1", Name: "Ripley", Guild: "gu1", Target: entity.Gun,
	}}}, bus)

	attacks := bus.DrainPlayerAttack()
	require.Len(t, attacks, 1)
	assert.Equal(t, entity.GameId("g1"), attacks[0].GameId)
}

func TestPlayerAttack_NewPlayerJoinsAndAttackIsDelayed(t *testing.T) {
	d, _, reg, dq := newDispatcher(t)
	bus := events.NewBus()
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now()})

	d.Process(time.Now(), []platform.InputEvent{{PlayerAttack: &platform.PlayerAttackInput{
		Player: "u2", Name: "Newbie", Guild: "gu1", Target: entity.Core,
	}}}, bus)

	require.Len(t, bus.DrainPlayerJoin(), 1)
	assert.Empty(t, bus.DrainPlayerAttack(), "attack goes through the delay queue, not straight to the bus")
	assert.Equal(t, 1, dq.Len())
}

func TestPlayerAttack_RateLimitedPastBurstDropsSilently(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	dq := delay.New(500 * time.Millisecond)
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	d := dispatch.NewWithAttackLimit(a, reg, dq, bl, 0, 1, 1, nil)
	bus := events.NewBus()
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now()})
	a.PutPlayer(entity.NewPlayer("u1", "Ripley", "g1", entity.NewVitality(6, 100), entity.NewAttack(1, 0)))

	attack := platform.InputEvent{PlayerAttack: &platform.PlayerAttackInput{
		Player: "u1", Name: "Ripley", Guild: "gu1", Target: entity.Gun,
	}}
	now := time.Now()
	d.Process(now, []platform.InputEvent{attack}, bus)
	d.Process(now, []platform.InputEvent{attack}, bus)

	attacks := bus.DrainPlayerAttack()
	assert.Len(t, attacks, 1, "burst of 1 admits the first attack and drops the immediate second")
}
