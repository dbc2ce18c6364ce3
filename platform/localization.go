// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package platform

import "github.com/gainanist/bygone-bot/entity"

// BattleLogKind enumerates the six battle-log event kinds the Combat
// Resolver emits, plus the player-join line rendered from the Input
// Dispatcher's PlayerJoinEvent.
type BattleLogKind int

const (
	LogPlayerHit BattleLogKind = iota
	LogPlayerMiss
	LogBygoneHit
	LogBygoneMiss
	LogPlayerDead
	LogBygoneDead
	LogPlayerJoin
)

// Localization is an opaque bundle of named strings and template lists
// supplied by the platform adapter. The engine never constructs or
// parses localized text itself; it only substitutes placeholders into
// the templates a bundle provides.
//
// Placeholder tokens recognized by the Battle Log when substituting into
// a chosen template: {PLAYER_NAME}, {ENEMY_NAME}, {BYGONE03_PART_NAME},
// {DURATION}.
type Localization struct {
	// Titles and fixed labels.
	GameTitle   string
	EnemyName   string
	StatusLabel map[GameStatus]string
	StageLabel  map[entity.Bygone03Stage]string
	PartLabel   map[entity.BygonePart]string

	// LogTemplates holds one or more templates per battle-log kind; the
	// Battle Log chooses among them uniformly via dice.ChooseMut.
	LogTemplates map[BattleLogKind][]string

	// FinishedMessages holds the templates shown for each terminal
	// GameStatus (Won, Lost, Expired).
	FinishedMessages map[GameStatus][]string

	// CooldownTemplate and OtherGameInProgressTemplate back the two
	// oneshot payloads.
	CooldownTemplate            []string
	OtherGameInProgressTemplate []string
}
