// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

// D100 samples a roll uniformly from [0, 100), the resolution used by
// every accuracy/dodge check in the combat resolver.
func D100(r Roller) (int, error) {
	if r == nil {
		return 0, ErrNilRoller
	}
	return r.Roll(100)
}

// Range samples a roll uniformly from the inclusive bounds [min, max],
// used by package spawn to roll starting part health and enemy attack
// damage from a difficulty's range. Panics if max < min: an inverted
// range is a construction bug in the difficulty table, not a runtime
// condition callers should handle.
func Range(r Roller, min, max int) (int, error) {
	if r == nil {
		return 0, ErrNilRoller
	}
	if max < min {
		panic("dice: invalid range, max < min")
	}
	roll, err := r.Roll(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + roll, nil
}

// ChooseMut uniformly selects one index from a non-empty slice and returns
// a pointer to that element so the caller can mutate it in place. Returns
// nil, false if the slice is empty — callers must not treat that as a bug,
// an empty candidate set (e.g. no living players) is a normal game state.
func ChooseMut[T any](r Roller, s []T) (*T, bool) {
	if len(s) == 0 {
		return nil, false
	}
	i, err := r.Roll(len(s))
	if err != nil {
		return nil, false
	}
	return &s[i], true
}
