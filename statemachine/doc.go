// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package statemachine implements the State-Machine Driver: the
// subsystem that turns this tick's deactivations into Active-tag
// removals, decides whether a game just finished, and re-readies
// players at turn end.
package statemachine
