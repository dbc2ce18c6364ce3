// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "github.com/gainanist/bygone-bot/entity"

// GameStartEvent mirrors an admitted InputEvent::GameStart. The tick
// loop drains it at the Spawner stage; the Spawner itself builds rows
// from the BygoneSpawnEvent and PlayerJoinEvent published alongside it.
type GameStartEvent struct {
	InitialPlayer entity.UserId
	Name          string
	Difficulty    entity.Difficulty
	Guild         entity.GuildId
	GameId        entity.GameId
}

// BygoneSpawnEvent tells the Spawner to populate the enemy row for a
// freshly started game.
type BygoneSpawnEvent struct {
	Difficulty entity.Difficulty
	GameId     entity.GameId
}

// PlayerJoinEvent tells the Spawner to populate a player row, and the
// Battle Log to render a join line.
type PlayerJoinEvent struct {
	Player entity.UserId
	Name   string
	GameId entity.GameId
	Guild  entity.GuildId
}

// PlayerAttackEvent is a dispatcher-admitted attack, already bound to a
// GameId, fanned out to the Turn Timer (to lazily start the clock) and
// the Combat Resolver (to resolve the hit).
type PlayerAttackEvent struct {
	Player entity.UserId
	Name   string
	Guild  entity.GuildId
	GameId entity.GameId
	Target entity.BygonePart
}

// EnemyAttackEvent fires when the Turn Timer's enemy-attack delay
// elapses for a game.
type EnemyAttackEvent struct {
	Guild  entity.GuildId
	GameId entity.GameId
}

// BygonePartDeathEvent fires when a part's health reaches zero.
type BygonePartDeathEvent struct {
	GameId entity.GameId
	Part   entity.BygonePart
	Guild  entity.GuildId
}

// DeactivateEvent fires when an entity (player or enemy) should be
// stripped of its Active tag.
type DeactivateEvent struct {
	GameId      entity.GameId
	EntityIsEnemy bool
	Player      entity.UserId // zero value when EntityIsEnemy
}

// TurnEndEvent fires when a game's turn duration elapses.
type TurnEndEvent struct {
	GameId entity.GameId
}

// GameDrawEvent requests a render snapshot for guild.
type GameDrawEvent struct {
	Guild entity.GuildId
}

// ProgressBarUpdateEvent reports fractional progress through the
// current turn for guild.
type ProgressBarUpdateEvent struct {
	Guild    entity.GuildId
	Progress float64
}

// BattleLogEvent tells the Battle Log to render and buffer a line.
type BattleLogEvent struct {
	Guild entity.GuildId
	Kind  BattleLogEventKind
	// Name and Part are the substitution values available to the
	// chosen template; not every kind uses both.
	Name string
	Part entity.BygonePart
}

// BattleLogEventKind mirrors platform.BattleLogKind but stays internal
// to the engine's event vocabulary so engine/events does not have to
// import platform for a single enum.
type BattleLogEventKind int

const (
	LogPlayerHit BattleLogEventKind = iota
	LogPlayerMiss
	LogBygoneHit
	LogBygoneMiss
	LogPlayerDead
	LogBygoneDead
)

// DeallocateGameResourcesEvent tells Cleanup (and the arena) to reap
// every row belonging to a game superseded by a new GameStart. Expiry
// does not publish it.
type DeallocateGameResourcesEvent struct {
	GameId entity.GameId
}

// OneshotEvent fires when the Input Dispatcher rejects a GameStart for
// cooldown or concurrency reasons. The Render Producer turns it into a
// GameRenderEvent carrying a OneshotMessage payload; it is never
// time-shifted through the Delay Queue.
type OneshotEvent struct {
	Guild         entity.GuildId
	Interaction   entity.InteractionId
	Kind          OneshotEventKind
	RemainingSecs float64
}

// OneshotEventKind mirrors platform.OneshotKind, kept internal to the
// engine's event vocabulary for the same reason BattleLogEventKind is.
type OneshotEventKind int

const (
	OneshotOtherGameInProgress OneshotEventKind = iota
	OneshotCooldown
)
