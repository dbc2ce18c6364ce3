// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Roller is the interface for random number generation in the dice package.
// Implementations must be safe for concurrent use. All randomness used by
// the engine flows through a Roller; no other package calls the system RNG.
//
//go:generate mockgen -destination=dicemock/mock_roller.go -package=dicemock github.com/gainanist/bygone-bot/dice Roller
type Roller interface {
	// Roll returns a uniformly distributed random integer in [0, n).
	// Returns an error if n <= 0.
	Roll(n int) (int, error)
}

// CryptoRoller implements Roller using crypto/rand for cryptographically
// secure randomness. This is the production roller; tests use MockRoller.
type CryptoRoller struct{}

// Roll returns a cryptographically secure random integer in [0, n).
func (c *CryptoRoller) Roll(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("dice: invalid range %d: %w", n, ErrInvalidRange)
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("dice: crypto/rand error: %w", err)
	}

	return int(v.Int64()), nil
}

// DefaultRoller is the process-global roller, a CryptoRoller. No package
// in this repository reads it: the engine receives its Roller by
// injection, and cmd/bygonebot passes a CryptoRoller of its own.
var DefaultRoller Roller = &CryptoRoller{}

// SetDefaultRoller allows changing the default roller (primarily for testing).
// This function is not safe for concurrent use with other dice operations.
func SetDefaultRoller(r Roller) {
	DefaultRoller = r
}
