// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package delay

import (
	"time"

	"github.com/gainanist/bygone-bot/engine/events"
)

// entry is one queued item: exactly one of GameDraw or PlayerAttack is
// set, mirroring the DelayedEvent union in the design.
type entry struct {
	arrival      time.Time
	gameDraw     *events.GameDrawEvent
	playerAttack *events.PlayerAttackEvent
}

// Queue is a strict FIFO of delayed events. It is not safe for
// concurrent use: the tick loop is its only caller.
type Queue struct {
	entries []entry
	delay   time.Duration
}

// New returns an empty Queue releasing entries after delay has elapsed
// since enqueue.
func New(delay time.Duration) *Queue {
	return &Queue{delay: delay}
}

// EnqueueGameDraw delays e by the queue's configured delay, timestamped
// from now.
func (q *Queue) EnqueueGameDraw(now time.Time, e events.GameDrawEvent) {
	q.entries = append(q.entries, entry{arrival: now, gameDraw: &e})
}

// EnqueuePlayerAttack delays e by the queue's configured delay,
// timestamped from now.
func (q *Queue) EnqueuePlayerAttack(now time.Time, e events.PlayerAttackEvent) {
	q.entries = append(q.entries, entry{arrival: now, playerAttack: &e})
}

// Drain releases every entry whose delay has elapsed as of now, in
// strict FIFO order, routing each to the appropriate return slice.
// Because entries are enqueued in non-decreasing arrival order, it is
// sufficient to pop from the front until an entry isn't ready yet.
func (q *Queue) Drain(now time.Time) (gameDraws []events.GameDrawEvent, playerAttacks []events.PlayerAttackEvent) {
	i := 0
	for ; i < len(q.entries); i++ {
		e := q.entries[i]
		if now.Sub(e.arrival) < q.delay {
			break
		}
		if e.gameDraw != nil {
			gameDraws = append(gameDraws, *e.gameDraw)
		}
		if e.playerAttack != nil {
			playerAttacks = append(playerAttacks, *e.playerAttack)
		}
	}
	q.entries = q.entries[i:]
	return gameDraws, playerAttacks
}

// Len reports how many entries remain queued.
func (q *Queue) Len() int {
	return len(q.entries)
}
