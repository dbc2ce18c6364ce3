// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package arena stores the engine's entity rows: players and the Bygone
// enemy, players keyed by (GameId, UserId) and enemies by GameId.
// Per-game player scans walk the whole player table.
//
// Purpose:
// Entities never hold pointers to each other or to their Game. They
// carry a GameId and the arena resolves lookups through those keys.
// This replaces the teacher's pointer/bundle ECS with a flat
// (key -> row) table per archetype, avoiding cyclic graphs and making
// DeallocateGameResources a single table sweep instead of a graph walk.
//
// Non-Goals:
//   - Concurrency control: the tick loop is the arena's sole owner and
//     never touches it from more than one goroutine at a time.
//   - Combat rules: the arena stores rows; package combat decides what
//     happens to them.
package arena
