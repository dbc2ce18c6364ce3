// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"time"

	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
)

// Game is one guild's battle record.
type Game struct {
	StartTime    time.Time
	Id           entity.GameId
	Interaction  entity.InteractionId
	Localization platform.Localization
	Status       platform.GameStatus
}

// Registry maps GuildId to Game. It is not safe for concurrent use: the
// tick loop is its only caller.
type Registry struct {
	games map[entity.GuildId]*Game
	now   func() time.Time
}

// New returns an empty Registry using time.Now for duration math.
func New() *Registry {
	return &Registry{
		games: make(map[entity.GuildId]*Game),
		now:   time.Now,
	}
}

// NewWithClock returns an empty Registry using the given clock, for
// deterministic tests.
func NewWithClock(now func() time.Time) *Registry {
	return &Registry{
		games: make(map[entity.GuildId]*Game),
		now:   now,
	}
}

// Get returns the game for guild, if any.
func (r *Registry) Get(guild entity.GuildId) (*Game, bool) {
	g, ok := r.games[guild]
	return g, ok
}

// Put inserts or replaces the game for guild, returning the previous
// record if one existed (the caller is responsible for reaping its
// entities via DeallocateGameResources).
func (r *Registry) Put(guild entity.GuildId, g *Game) (previous *Game, hadPrevious bool) {
	previous, hadPrevious = r.games[guild]
	r.games[guild] = g
	return previous, hadPrevious
}

// SetStatus updates the status of the game for guild, if one exists.
func (r *Registry) SetStatus(guild entity.GuildId, status platform.GameStatus) {
	if g, ok := r.games[guild]; ok {
		g.Status = status
	}
}

// All returns every (guild, game) pair currently registered, for the
// tick loop's per-tick scans. Order is unspecified.
func (r *Registry) All() map[entity.GuildId]*Game {
	return r.games
}

// DurationSecs returns how long g has been running. A clock that reads
// before g.StartTime (system clock jumped back) clamps to zero rather
// than returning a negative duration, favoring playability over strict
// time-bounds per the clock-skew error policy.
func (r *Registry) DurationSecs(g *Game) float64 {
	d := r.now().Sub(g.StartTime).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
