// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

// Bus holds one queue per event kind the core recognizes. Every queue
// supports append (Publish) and read-and-clear (Drain); a queue nobody
// drains this tick simply carries its contents into the next one.
type Bus struct {
	gameStart               []GameStartEvent
	bygoneSpawn             []BygoneSpawnEvent
	playerJoin              []PlayerJoinEvent
	playerAttack            []PlayerAttackEvent
	enemyAttack             []EnemyAttackEvent
	bygonePartDeath         []BygonePartDeathEvent
	deactivate              []DeactivateEvent
	turnEnd                 []TurnEndEvent
	gameDraw                []GameDrawEvent
	progressBarUpdate       []ProgressBarUpdateEvent
	battleLog               []BattleLogEvent
	deallocateGameResources []DeallocateGameResourcesEvent
	oneshot                 []OneshotEvent
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// PublishGameStart appends a GameStartEvent.
func (b *Bus) PublishGameStart(e GameStartEvent) { b.gameStart = append(b.gameStart, e) }

// DrainGameStart returns and clears the queued GameStartEvents.
func (b *Bus) DrainGameStart() []GameStartEvent {
	out := b.gameStart
	b.gameStart = nil
	return out
}

// PublishBygoneSpawn appends a BygoneSpawnEvent.
func (b *Bus) PublishBygoneSpawn(e BygoneSpawnEvent) { b.bygoneSpawn = append(b.bygoneSpawn, e) }

// DrainBygoneSpawn returns and clears the queued BygoneSpawnEvents.
func (b *Bus) DrainBygoneSpawn() []BygoneSpawnEvent {
	out := b.bygoneSpawn
	b.bygoneSpawn = nil
	return out
}

// PublishPlayerJoin appends a PlayerJoinEvent.
func (b *Bus) PublishPlayerJoin(e PlayerJoinEvent) { b.playerJoin = append(b.playerJoin, e) }

// DrainPlayerJoin returns and clears the queued PlayerJoinEvents.
func (b *Bus) DrainPlayerJoin() []PlayerJoinEvent {
	out := b.playerJoin
	b.playerJoin = nil
	return out
}

// PeekPlayerJoin returns the queued PlayerJoinEvents without clearing
// them, for consumers (Battle Log) that observe but do not own draining.
func (b *Bus) PeekPlayerJoin() []PlayerJoinEvent {
	return b.playerJoin
}

// PublishPlayerAttack appends a PlayerAttackEvent.
func (b *Bus) PublishPlayerAttack(e PlayerAttackEvent) { b.playerAttack = append(b.playerAttack, e) }

// DrainPlayerAttack returns and clears the queued PlayerAttackEvents.
func (b *Bus) DrainPlayerAttack() []PlayerAttackEvent {
	out := b.playerAttack
	b.playerAttack = nil
	return out
}

// PeekPlayerAttack returns the queued PlayerAttackEvents without
// clearing them, for the Turn Timer, which only observes them to decide
// whether to lazily start a timer.
func (b *Bus) PeekPlayerAttack() []PlayerAttackEvent {
	return b.playerAttack
}

// PublishEnemyAttack appends an EnemyAttackEvent.
func (b *Bus) PublishEnemyAttack(e EnemyAttackEvent) { b.enemyAttack = append(b.enemyAttack, e) }

// DrainEnemyAttack returns and clears the queued EnemyAttackEvents.
func (b *Bus) DrainEnemyAttack() []EnemyAttackEvent {
	out := b.enemyAttack
	b.enemyAttack = nil
	return out
}

// PublishBygonePartDeath appends a BygonePartDeathEvent.
func (b *Bus) PublishBygonePartDeath(e BygonePartDeathEvent) {
	b.bygonePartDeath = append(b.bygonePartDeath, e)
}

// DrainBygonePartDeath returns and clears the queued BygonePartDeathEvents.
func (b *Bus) DrainBygonePartDeath() []BygonePartDeathEvent {
	out := b.bygonePartDeath
	b.bygonePartDeath = nil
	return out
}

// PublishDeactivate appends a DeactivateEvent.
func (b *Bus) PublishDeactivate(e DeactivateEvent) { b.deactivate = append(b.deactivate, e) }

// DrainDeactivate returns and clears the queued DeactivateEvents.
func (b *Bus) DrainDeactivate() []DeactivateEvent {
	out := b.deactivate
	b.deactivate = nil
	return out
}

// PublishTurnEnd appends a TurnEndEvent.
func (b *Bus) PublishTurnEnd(e TurnEndEvent) { b.turnEnd = append(b.turnEnd, e) }

// DrainTurnEnd returns and clears the queued TurnEndEvents.
func (b *Bus) DrainTurnEnd() []TurnEndEvent {
	out := b.turnEnd
	b.turnEnd = nil
	return out
}

// PublishGameDraw appends a GameDrawEvent.
func (b *Bus) PublishGameDraw(e GameDrawEvent) { b.gameDraw = append(b.gameDraw, e) }

// DrainGameDraw returns and clears the queued GameDrawEvents.
func (b *Bus) DrainGameDraw() []GameDrawEvent {
	out := b.gameDraw
	b.gameDraw = nil
	return out
}

// PublishProgressBarUpdate appends a ProgressBarUpdateEvent.
func (b *Bus) PublishProgressBarUpdate(e ProgressBarUpdateEvent) {
	b.progressBarUpdate = append(b.progressBarUpdate, e)
}

// DrainProgressBarUpdate returns and clears the queued
// ProgressBarUpdateEvents.
func (b *Bus) DrainProgressBarUpdate() []ProgressBarUpdateEvent {
	out := b.progressBarUpdate
	b.progressBarUpdate = nil
	return out
}

// PublishBattleLog appends a BattleLogEvent.
func (b *Bus) PublishBattleLog(e BattleLogEvent) { b.battleLog = append(b.battleLog, e) }

// DrainBattleLog returns and clears the queued BattleLogEvents.
func (b *Bus) DrainBattleLog() []BattleLogEvent {
	out := b.battleLog
	b.battleLog = nil
	return out
}

// PublishDeallocateGameResources appends a DeallocateGameResourcesEvent.
func (b *Bus) PublishDeallocateGameResources(e DeallocateGameResourcesEvent) {
	b.deallocateGameResources = append(b.deallocateGameResources, e)
}

// DrainDeallocateGameResources returns and clears the queued
// DeallocateGameResourcesEvents.
func (b *Bus) DrainDeallocateGameResources() []DeallocateGameResourcesEvent {
	out := b.deallocateGameResources
	b.deallocateGameResources = nil
	return out
}

// PublishOneshot appends a OneshotEvent.
func (b *Bus) PublishOneshot(e OneshotEvent) { b.oneshot = append(b.oneshot, e) }

// DrainOneshot returns and clears the queued OneshotEvents.
func (b *Bus) DrainOneshot() []OneshotEvent {
	out := b.oneshot
	b.oneshot = nil
	return out
}
