// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity

import "fmt"

// Enemy is the Bygone composite enemy. At most one Enemy row exists per
// GameId; the arena enforces this invariant.
type Enemy struct {
	GameId GameId
	Parts  BygoneParts
	Attack Attack
	Stage  Bygone03Stage

	// Active indicates the enemy still participates in resolution;
	// stripped when the Core reaches Defeated.
	Active bool
}

// NewEnemy constructs a freshly spawned, active enemy at the Armored stage.
func NewEnemy(gameID GameId, parts BygoneParts, attack Attack) *Enemy {
	return &Enemy{
		GameId: gameID,
		Parts:  parts,
		Attack: attack,
		Stage:  Armored,
		Active: true,
	}
}

// LogID identifies this row in log lines and metrics labels. One enemy
// row exists per game, so GameId alone is unique.
func (e *Enemy) LogID() string {
	return fmt.Sprintf("%s:bygone03", e.GameId)
}
