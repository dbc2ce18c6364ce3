// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package platform

import "github.com/gainanist/bygone-bot/entity"

// InputEvent is the union of events the platform adapter delivers to
// the Input Dispatcher. Exactly one of GameStart or PlayerAttack is set.
type InputEvent struct {
	GameStart   *GameStartInput
	PlayerAttack *PlayerAttackInput
}

// GameStartInput carries the fields of an admitted or rejected game
// start request.
type GameStartInput struct {
	InitialPlayer entity.UserId
	Name          string
	Difficulty    entity.Difficulty
	Guild         entity.GuildId
	Interaction   entity.InteractionId
	Localization  Localization
}

// PlayerAttackInput carries the fields of a player's attack intent.
type PlayerAttackInput struct {
	Player entity.UserId
	Name   string
	Guild  entity.GuildId
	Target entity.BygonePart
}
