// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cleanup reaps arena rows for superseded games and expires
// Ongoing games that have run past their maximum duration. It is the
// last subsystem visited each tick.
package cleanup
