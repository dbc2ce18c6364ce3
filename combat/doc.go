// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat resolves PlayerAttackEvents and EnemyAttackEvents
// against the arena's entity rows, and applies the Bygone's part-death
// side effects.
//
// Purpose:
// This is the core rules engine of a tick: it is the only package that
// calls entity.Attack.Attack, and the only package that decides when a
// part death cascades into a stage advance, an accuracy penalty, or a
// dodge penalty across the whole enemy.
//
// Non-Goals:
//   - Turn timing: package engine/timer decides when an EnemyAttackEvent
//     fires; this package only resolves it once it has.
//   - Status transitions: the state-machine driver, not this package,
//     decides when a game is Won or Lost from the deactivations this
//     package emits.
package combat
