// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battlelog

import (
	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/localization"
	"github.com/gainanist/bygone-bot/platform"
)

// LocalizationLookup resolves the bundle a guild's game was started
// with. Defined as a callback rather than a direct registry dependency
// so package battlelog never has to import package registry.
type LocalizationLookup func(guild entity.GuildId) (platform.Localization, bool)

// Log renders this tick's BattleLogEvents and PlayerJoinEvents into
// text and buffers them per guild until drained by the Render Producer.
type Log struct {
	roller dice.Roller
	log    *zap.Logger
	lines  map[entity.GuildId][]string
}

// New returns an empty Log, choosing among a kind's template variants
// via roller.
func New(roller dice.Roller, log *zap.Logger) *Log {
	if log == nil {
		log = zap.NewNop()
	}
	return &Log{roller: roller, log: log, lines: make(map[entity.GuildId][]string)}
}

// Record renders every queued combat event and join event into a line
// and appends it to its guild's buffer: every join line first (players
// entering the fray are logged before any combat resolves against them
// this tick), then every combat line, each slice in its input order.
func (l *Log) Record(logEvents []events.BattleLogEvent, joins []events.PlayerJoinEvent, lookup LocalizationLookup) {
	for _, ev := range joins {
		loc, ok := lookup(ev.Guild)
		if !ok {
			l.log.Debug("dropping join log line: no localization for guild", zap.String("guild_id", string(ev.Guild)))
			continue
		}
		l.append(ev.Guild, loc, platform.LogPlayerJoin, ev.Name, "")
	}
	for _, ev := range logEvents {
		loc, ok := lookup(ev.Guild)
		if !ok {
			l.log.Debug("dropping log line: no localization for guild", zap.String("guild_id", string(ev.Guild)))
			continue
		}
		l.append(ev.Guild, loc, toPlatformKind(ev.Kind), ev.Name, loc.PartLabel[ev.Part])
	}
}

func (l *Log) append(guild entity.GuildId, loc platform.Localization, kind platform.BattleLogKind, playerName, partName string) {
	templates := loc.LogTemplates[kind]
	if len(templates) == 0 {
		l.log.Debug("dropping log line: no template for kind", zap.Int("kind", int(kind)))
		return
	}
	tmpl, ok := dice.ChooseMut(l.roller, templates)
	if !ok {
		return
	}
	line := localization.Substitute(*tmpl, playerName, loc.EnemyName, partName, "")
	l.lines[guild] = append(l.lines[guild], line)
}

// Drain returns and clears guild's buffered lines, in the order they
// were recorded. Returns nil if nothing was buffered.
func (l *Log) Drain(guild entity.GuildId) []string {
	lines := l.lines[guild]
	delete(l.lines, guild)
	return lines
}

// Clear discards guild's buffered lines without returning them, used
// when a new GameStart replaces a finished game's record.
func (l *Log) Clear(guild entity.GuildId) {
	delete(l.lines, guild)
}

func toPlatformKind(k events.BattleLogEventKind) platform.BattleLogKind {
	switch k {
	case events.LogPlayerHit:
		return platform.LogPlayerHit
	case events.LogPlayerMiss:
		return platform.LogPlayerMiss
	case events.LogBygoneHit:
		return platform.LogBygoneHit
	case events.LogBygoneMiss:
		return platform.LogBygoneMiss
	case events.LogPlayerDead:
		return platform.LogPlayerDead
	case events.LogBygoneDead:
		return platform.LogBygoneDead
	default:
		return platform.LogPlayerHit
	}
}
