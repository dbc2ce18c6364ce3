// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package arena

import "github.com/gainanist/bygone-bot/entity"

type playerKey struct {
	game entity.GameId
	user entity.UserId
}

// Arena holds every entity row live in the process, indexed for the
// lookups the engine's subsystems need each tick. It is not safe for
// concurrent use: the tick loop is its only caller.
type Arena struct {
	players map[playerKey]*entity.Player
	enemies map[entity.GameId]*entity.Enemy
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{
		players: make(map[playerKey]*entity.Player),
		enemies: make(map[entity.GameId]*entity.Enemy),
	}
}

// PutPlayer inserts or replaces the player row for (p.GameId, p.UserId).
func (a *Arena) PutPlayer(p *entity.Player) {
	a.players[playerKey{game: p.GameId, user: p.UserId}] = p
}

// Player looks up the player row for (gameID, userID). Returns nil, false
// if no such row exists.
func (a *Arena) Player(gameID entity.GameId, userID entity.UserId) (*entity.Player, bool) {
	p, ok := a.players[playerKey{game: gameID, user: userID}]
	return p, ok
}

// PlayersForGame returns every player row for gameID, in no particular
// order. Callers that need a stable order (rendering) must sort.
func (a *Arena) PlayersForGame(gameID entity.GameId) []*entity.Player {
	var out []*entity.Player
	for k, p := range a.players {
		if k.game == gameID {
			out = append(out, p)
		}
	}
	return out
}

// ActivePlayersForGame returns the Active player rows for gameID.
func (a *Arena) ActivePlayersForGame(gameID entity.GameId) []*entity.Player {
	var out []*entity.Player
	for _, p := range a.PlayersForGame(gameID) {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// PutEnemy inserts or replaces the enemy row for e.GameId.
func (a *Arena) PutEnemy(e *entity.Enemy) {
	a.enemies[e.GameId] = e
}

// Enemy looks up the enemy row for gameID. Returns nil, false if absent.
func (a *Arena) Enemy(gameID entity.GameId) (*entity.Enemy, bool) {
	e, ok := a.enemies[gameID]
	return e, ok
}

// ActiveEnemy looks up the enemy row for gameID, returning nil, false if
// it is absent or inactive. At most one enemy row exists per GameId, so
// this is also "the" active enemy.
func (a *Arena) ActiveEnemy(gameID entity.GameId) (*entity.Enemy, bool) {
	e, ok := a.enemies[gameID]
	if !ok || !e.Active {
		return nil, false
	}
	return e, true
}

// HasAnyEntity reports whether any row (player or enemy) still exists
// for gameID, used by the state-machine driver to distinguish "game with
// no enemy yet" from "game whose enemy died".
func (a *Arena) HasAnyEntity(gameID entity.GameId) bool {
	if _, ok := a.enemies[gameID]; ok {
		return true
	}
	for k := range a.players {
		if k.game == gameID {
			return true
		}
	}
	return false
}

// DeallocateGame removes every row belonging to gameID: players and the
// enemy alike. Called when a game is replaced by a new GameStart; an
// expired game keeps its rows.
func (a *Arena) DeallocateGame(gameID entity.GameId) {
	for k := range a.players {
		if k.game == gameID {
			delete(a.players, k)
		}
	}
	delete(a.enemies, gameID)
}

// DeactivatePlayer strips the Active tag from the player row for
// (gameID, userID), if it exists. A no-op if the row is already gone.
func (a *Arena) DeactivatePlayer(gameID entity.GameId, userID entity.UserId) {
	if p, ok := a.players[playerKey{game: gameID, user: userID}]; ok {
		p.Active = false
	}
}

// DeactivateEnemy strips the Active tag from the enemy row for gameID,
// if it exists.
func (a *Arena) DeactivateEnemy(gameID entity.GameId) {
	if e, ok := a.enemies[gameID]; ok {
		e.Active = false
	}
}
