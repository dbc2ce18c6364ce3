// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package timer implements the per-(guild, game) Turn Timer: the clock
// that fires the enemy's attack, progress-bar updates, and turn-end,
// all relative to the instant a game's turn began.
package timer
