// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package platform

import "github.com/gainanist/bygone-bot/entity"

// GameStatus is the outcome the Render Producer reports for a finished
// game.
type GameStatus int

const (
	// StatusOngoing means the game has not concluded.
	StatusOngoing GameStatus = iota
	// StatusWon means every enemy was defeated.
	StatusWon
	// StatusLost means every player was defeated.
	StatusLost
	// StatusExpired means the game was still Ongoing when it ran past
	// MaxGameDuration.
	StatusExpired
)

// OneshotKind distinguishes the two oneshot render payloads.
type OneshotKind int

const (
	// OneshotOtherGameInProgress is shown when a GameStart targets a
	// guild with an Ongoing game still inside its cooldown window.
	OneshotOtherGameInProgress OneshotKind = iota
	// OneshotCooldown is shown when a GameStart targets a guild whose
	// last game is no longer Ongoing but started less than GameCooldown
	// ago.
	OneshotCooldown
)

// PlayerSnapshot is one row of the ordered player list in an ongoing
// game's render payload.
type PlayerSnapshot struct {
	Name     string
	Vitality entity.Vitality
}

// OngoingGamePayload snapshots a game still in progress.
type OngoingGamePayload struct {
	Parts    entity.BygoneParts
	Attack   entity.Attack
	Stage    entity.Bygone03Stage
	LogLines []string
	Players  []PlayerSnapshot
}

// FinishedGamePayload reports a concluded game's outcome.
type FinishedGamePayload struct {
	Status GameStatus
}

// TurnProgressPayload reports fractional progress through the current
// turn, in [0, 1].
type TurnProgressPayload struct {
	Progress float64
}

// OneshotMessagePayload reports a one-off message not tied to an
// ongoing game.
type OneshotMessagePayload struct {
	Kind          OneshotKind
	RemainingSecs float64
}

// GameRenderEvent is the union of payloads the Render Producer emits to
// the platform adapter. Exactly one payload field is non-nil.
type GameRenderEvent struct {
	Guild        entity.GuildId
	Interaction  entity.InteractionId
	Localization Localization

	Ongoing  *OngoingGamePayload
	Finished *FinishedGamePayload
	Progress *TurnProgressPayload
	Oneshot  *OneshotMessagePayload
}
