// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package delay implements the core's delay queue: a strict FIFO that
// time-shifts GameDraw and PlayerAttack events by a fixed wall-clock
// delay, so a joiner's first attack lands behind its own spawn event.
package delay
