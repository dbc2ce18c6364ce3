// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"sort"

	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/battlelog"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
)

// Producer is the Render Producer.
type Producer struct {
	arena     *arena.Arena
	registry  *registry.Registry
	battleLog *battlelog.Log
	log       *zap.Logger
}

// New returns a Producer backed by its collaborators.
func New(a *arena.Arena, reg *registry.Registry, bl *battlelog.Log, log *zap.Logger) *Producer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Producer{arena: a, registry: reg, battleLog: bl, log: log}
}

// Produce drains this tick's GameDraw, ProgressBarUpdate, and Oneshot
// events and returns the GameRenderEvents they become, in the order the
// three drains run: draws, then progress, then oneshots.
func (p *Producer) Produce(bus *events.Bus) []platform.GameRenderEvent {
	var out []platform.GameRenderEvent

	for _, ev := range bus.DrainGameDraw() {
		if render, ok := p.renderDraw(ev.Guild); ok {
			out = append(out, render)
		}
	}

	for _, ev := range bus.DrainProgressBarUpdate() {
		game, ok := p.registry.Get(ev.Guild)
		if !ok {
			p.log.Debug("dropping progress update: no game for guild", zap.String("guild_id", string(ev.Guild)))
			continue
		}
		out = append(out, platform.GameRenderEvent{
			Guild: ev.Guild, Interaction: game.Interaction, Localization: game.Localization,
			Progress: &platform.TurnProgressPayload{Progress: ev.Progress},
		})
	}

	for _, ev := range bus.DrainOneshot() {
		game, ok := p.registry.Get(ev.Guild)
		if !ok {
			p.log.Debug("dropping oneshot: no game for guild", zap.String("guild_id", string(ev.Guild)))
			continue
		}
		out = append(out, platform.GameRenderEvent{
			Guild: ev.Guild, Interaction: game.Interaction, Localization: game.Localization,
			Oneshot: &platform.OneshotMessagePayload{Kind: toPlatformOneshotKind(ev.Kind), RemainingSecs: ev.RemainingSecs},
		})
	}

	return out
}

func (p *Producer) renderDraw(guild entity.GuildId) (platform.GameRenderEvent, bool) {
	game, ok := p.registry.Get(guild)
	if !ok {
		p.log.Debug("dropping game draw: no game for guild", zap.String("guild_id", string(guild)))
		return platform.GameRenderEvent{}, false
	}

	base := platform.GameRenderEvent{Guild: guild, Interaction: game.Interaction, Localization: game.Localization}
	if game.Status != platform.StatusOngoing {
		base.Finished = &platform.FinishedGamePayload{Status: game.Status}
		return base, true
	}

	enemy, ok := p.arena.Enemy(game.Id)
	if !ok {
		p.log.Debug("dropping ongoing draw: no enemy row yet", zap.String("game_id", string(game.Id)))
		return platform.GameRenderEvent{}, false
	}

	players := p.arena.PlayersForGame(game.Id)
	sort.Slice(players, func(i, j int) bool { return players[i].UserId < players[j].UserId })
	snapshots := make([]platform.PlayerSnapshot, len(players))
	for i, pl := range players {
		snapshots[i] = platform.PlayerSnapshot{Name: pl.Name, Vitality: pl.Vitality}
	}

	base.Ongoing = &platform.OngoingGamePayload{
		Parts:    enemy.Parts,
		Attack:   enemy.Attack,
		Stage:    enemy.Stage,
		LogLines: p.battleLog.Drain(guild),
		Players:  snapshots,
	}
	return base, true
}

func toPlatformOneshotKind(k events.OneshotEventKind) platform.OneshotKind {
	switch k {
	case events.OneshotOtherGameInProgress:
		return platform.OneshotOtherGameInProgress
	case events.OneshotCooldown:
		return platform.OneshotCooldown
	default:
		return platform.OneshotOtherGameInProgress
	}
}
