// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package engine wires every subsystem into the single-threaded
// cooperative tick loop: Input Dispatcher, Delay Queue, Turn Timer,
// Spawners, Combat Resolver, State-machine Driver, Battle Log, Render
// Producer, Cleanup, visited in that fixed order every tick.
package engine
