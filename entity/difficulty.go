// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity

// Difficulty parameterizes a game's initial part health and enemy
// damage range.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	RealBullets
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case RealBullets:
		return "real_bullets"
	default:
		return "unknown"
	}
}

// IntRange is an inclusive [Min, Max] sampling range.
type IntRange struct {
	Min int
	Max int
}

// DifficultyStats is the starting-state recipe for one difficulty: every
// Bygone part's health is sampled uniformly from PartHealthRange (the
// wings share a single roll, so they always start even with each
// other), and the enemy's attack damage is sampled uniformly from
// AttackRange.
type DifficultyStats struct {
	PartHealthRange IntRange
	AttackRange     IntRange
}

// DifficultyTable holds the four built-in difficulty presets, matching
// Bygone03Bundle::with_difficulty in the original source exactly
// (src/bundles.rs): this resolves the spec's difficulty-table Open
// Question with the concrete ranges rather than an interpolation guess.
var DifficultyTable = map[Difficulty]DifficultyStats{
	Easy:        {PartHealthRange: IntRange{Min: 1, Max: 1}, AttackRange: IntRange{Min: 1, Max: 1}},
	Medium:      {PartHealthRange: IntRange{Min: 1, Max: 2}, AttackRange: IntRange{Min: 1, Max: 2}},
	Hard:        {PartHealthRange: IntRange{Min: 1, Max: 3}, AttackRange: IntRange{Min: 1, Max: 3}},
	RealBullets: {PartHealthRange: IntRange{Min: 1, Max: 3}, AttackRange: IntRange{Min: 6, Max: 6}},
}

// Per-part dodge values, fixed across every difficulty (src/bundles.rs:
// Core=70, Sensor=80, Gun=50, both wings=30).
const (
	CoreDodge  = 70
	SensorDodge = 80
	GunDodge    = 50
	WingDodge   = 30

	// EnemyAttackAccuracy is the Bygone's starting accuracy, before any
	// part-death penalties are applied.
	EnemyAttackAccuracy = 100
)

// PlayerStartingHealth and PlayerStartingDodge are the (health, dodge) every joining player
// starts a game with, independent of difficulty: a player's survival is
// the Bygone's damage roll, not the player's own defenses.
const (
	PlayerStartingHealth = 6
	PlayerStartingDodge  = 100
)

// PlayerAttackDamage and PlayerAttackAccuracy are the fixed attack every joining player starts a game
// with (src/bundles.rs PlayerBundle::new: damage 1, accuracy 0).
const (
	PlayerAttackDamage   = 1
	PlayerAttackAccuracy = 0
)

// DodgeForPart returns the fixed starting dodge for part.
func DodgeForPart(part BygonePart) int {
	switch part {
	case Core:
		return CoreDodge
	case Sensor:
		return SensorDodge
	case Gun:
		return GunDodge
	default: // LeftWing, RightWing
		return WingDodge
	}
}
