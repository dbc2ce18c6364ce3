// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dispatch validates inbound InputEvents against the Game
// Registry and arena, enforces the cooldown and single-game-per-guild
// rules, and turns an admitted event into the internal events the rest
// of the tick consumes.
package dispatch
