// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package spawn populates the arena's entity rows in response to the
// events the Input Dispatcher admits: a BygoneSpawnEvent rolls a fresh
// enemy into existence, a PlayerJoinEvent inserts a fresh player row.
//
// Purpose:
// Difficulty only parameterizes the enemy: every Bygone part's starting
// health is sampled uniformly from a difficulty-specific range (the two
// wings share one roll, so they start even with each other), and the
// enemy's attack damage is sampled the same way. A joining player's
// starting stats are fixed, independent of difficulty — see
// entity.DifficultyTable and entity.PlayerStartingHealth.
//
// Scope:
//   - Rolling and inserting a fresh Enemy row for a BygoneSpawnEvent.
//   - Inserting a fresh Player row for a PlayerJoinEvent.
//
// Non-Goals:
//   - Deciding whether a spawn should happen: package dispatch already
//     admitted the event before this package ever sees it.
//   - Combat resolution and part-death side effects: package combat.
package spawn
