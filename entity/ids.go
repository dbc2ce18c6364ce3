// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"
)

// GuildId, UserId, and InteractionId are opaque identifiers supplied by
// the chat platform. The engine only hashes and compares them.
type (
	GuildId       string
	UserId        string
	InteractionId string
)

// GameId is a monotonic value unique across a process's lifetime,
// derived from wall-clock nanoseconds plus a random salt so two games
// allocated in the same nanosecond never collide.
type GameId string

var gameIDSequence atomic.Uint64

// NewGameId mints a fresh GameId. Not cryptographically sensitive; the
// salt only disambiguates same-nanosecond allocations within a process.
func NewGameId() GameId {
	var salt [4]byte
	if _, err := rand.Read(salt[:]); err != nil {
		// crypto/rand failure is unrecoverable; fall back to the
		// monotonic sequence alone so game creation never panics.
		binary.BigEndian.PutUint32(salt[:], uint32(gameIDSequence.Add(1)))
	}
	ns := time.Now().UnixNano()
	return GameId(fmt.Sprintf("%d-%x-%d", ns, salt, gameIDSequence.Add(1)))
}
