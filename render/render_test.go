// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/battlelog"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
	"github.com/gainanist/bygone-bot/render"
)

func TestProduce_OngoingGameSnapshotsEnemyAndPlayersSortedByUserId(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	gameID := entity.GameId("g1")
	reg.Put("gu1", &registry.Game{Id: gameID, Status: platform.StatusOngoing, StartTime: time.Now(), Interaction: "int1"})
	a.PutEnemy(entity.NewEnemy(gameID, entity.NewBygoneParts(3, 50), entity.NewAttack(1, 100)))
	a.PutPlayer(entity.NewPlayer("u2", "Bravo", gameID, entity.NewVitality(6, 100), entity.NewAttack(1, 0)))
	a.PutPlayer(entity.NewPlayer("u1", "Alpha", gameID, entity.NewVitality(6, 100), entity.NewAttack(1, 0)))
	bl.Record(nil, []events.PlayerJoinEvent{{Guild: "gu1", Name: "Alpha"}}, func(entity.GuildId) (platform.Localization, bool) {
		return platform.Localization{LogTemplates: map[platform.BattleLogKind][]string{platform.LogPlayerJoin: {"{PLAYER_NAME} joins"}}}, true
	})

	p := render.New(a, reg, bl, nil)
	bus := events.NewBus()
	bus.PublishGameDraw(events.GameDrawEvent{Guild: "gu1"})

	out := p.Produce(bus)
	require.Len(t, out, 1)
	assert.Equal(t, entity.InteractionId("int1"), out[0].Interaction)
	require.NotNil(t, out[0].Ongoing)
	require.Len(t, out[0].Ongoing.Players, 2)
	assert.Equal(t, "Alpha", out[0].Ongoing.Players[0].Name, "sorted by UserId, u1 before u2")
	assert.Equal(t, []string{"Alpha joins"}, out[0].Ongoing.LogLines)
	assert.Empty(t, bl.Drain("gu1"), "draining the snapshot clears the buffer")
}

func TestProduce_FinishedGameOmitsOngoingPayload(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusWon, StartTime: time.Now()})

	p := render.New(a, reg, bl, nil)
	bus := events.NewBus()
	bus.PublishGameDraw(events.GameDrawEvent{Guild: "gu1"})

	out := p.Produce(bus)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Finished)
	assert.Equal(t, platform.StatusWon, out[0].Finished.Status)
	assert.Nil(t, out[0].Ongoing)
}

func TestProduce_ProgressUpdateCarriesGamesInteractionAndLocalization(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now(), Interaction: "int1",
		Localization: platform.Localization{EnemyName: "_03"}})

	p := render.New(a, reg, bl, nil)
	bus := events.NewBus()
	bus.PublishProgressBarUpdate(events.ProgressBarUpdateEvent{Guild: "gu1", Progress: 0.4})

	out := p.Produce(bus)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Progress)
	assert.InDelta(t, 0.4, out[0].Progress.Progress, 1e-9)
	assert.Equal(t, entity.InteractionId("int1"), out[0].Interaction)
	assert.Equal(t, "_03", out[0].Localization.EnemyName)
}

func TestProduce_OneshotCarriesCollidingGamesLocalization(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	bl := battlelog.New(dice.NewMockRoller(0), nil)
	reg.Put("gu1", &registry.Game{Id: "g1", Status: platform.StatusOngoing, StartTime: time.Now(), Interaction: "int1",
		Localization: platform.Localization{EnemyName: "_03"}})

	p := render.New(a, reg, bl, nil)
	bus := events.NewBus()
	bus.PublishOneshot(events.OneshotEvent{Guild: "gu1", Kind: events.OneshotOtherGameInProgress})

	out := p.Produce(bus)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Oneshot)
	assert.Equal(t, platform.OneshotOtherGameInProgress, out[0].Oneshot.Kind)
	assert.Equal(t, "_03", out[0].Localization.EnemyName)
}

func TestProduce_DrawForUnknownGuildIsDropped(t *testing.T) {
	a := arena.New()
	reg := registry.New()
	bl := battlelog.New(dice.NewMockRoller(0), nil)

	p := render.New(a, reg, bl, nil)
	bus := events.NewBus()
	bus.PublishGameDraw(events.GameDrawEvent{Guild: "gu1"})

	assert.Empty(t, p.Produce(bus))
}
