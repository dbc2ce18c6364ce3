// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "errors"

// Common errors returned by the dice package.
var (
	// ErrInvalidRange indicates Roll was called with n <= 0.
	ErrInvalidRange = errors.New("dice: invalid range")

	// ErrNilRoller indicates a nil roller was provided.
	ErrNilRoller = errors.New("dice: roller cannot be nil")
)
