// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package events is the typed intra-tick event bus: producers append to
// a per-kind queue, consumers drain it, and whatever nobody drains
// survives into the next tick.
//
// Purpose:
// The teacher's events.Bus is a reflection-based, immediately-dispatched
// pub/sub built for an open-ended set of game events. This engine's
// event kinds are a small, closed set fixed by the tick-loop's
// subsystem order (see package engine), so this bus trades the
// teacher's reflection and handler registration for a concrete struct
// of typed queues — same "Bus"/"NewBus" shape, no handler indirection.
//
// Scope:
//   - One typed slice per event kind the core recognizes.
//   - Publish (append) and Drain (read-and-clear) per kind.
//   - No handler registration: the tick loop itself decides, in its
//     fixed order, which subsystem drains which kind.
//
// Non-Goals:
//   - Cross-tick scheduling: package engine/delay time-shifts events;
//     this bus only holds what's ready to be read this tick.
//   - Fan-out to multiple consumers of the same kind: every kind here
//     has exactly the producer/consumer set the design table specifies.
package events
