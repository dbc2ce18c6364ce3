// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package entity provides the pure value types that make up a battle:
// health, dodge, attack, the Bygone's parts and stage, and the player and
// enemy rows the arena stores.
//
// Purpose:
// These are the only types in the engine allowed to mutate health. Every
// other package treats Vitality, Attack, and the part tables as data to
// read or pass to the methods here.
//
// Scope:
//   - Vitality (health + dodge) and its take-attack rule
//   - Attack (damage + accuracy) and its roll-driven resolution
//   - BygonePart / BygoneParts / Bygone03Stage
//   - Player and Enemy rows, including their Active/Ready tags
//   - Difficulty-parameterized starting stats
//
// Non-Goals:
//   - Storage and lookup: package arena owns the id -> row tables.
//   - Combat orchestration: package combat decides who attacks whom and
//     in what order; this package only answers "did it land".
package entity
