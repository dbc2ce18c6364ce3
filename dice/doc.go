// Package dice provides cryptographically secure random number generation
// for the engine, without implementing any combat rules itself.
//
// Purpose:
// Every random decision in the engine — an accuracy roll, which player the
// enemy swings at — flows through a Roller, so tests can substitute a
// deterministic sequence and production can stay on crypto/rand without
// either caller changing.
//
// Scope:
//   - Uniform integer sampling in [0, n) (D100 is the accuracy/dodge roll)
//   - Uniform choice over a non-empty slice, returned by mutable pointer
//   - A process-global default roller plus dependency-injected instances
//   - A deterministic MockRoller for tests
//
// Non-Goals:
//   - Dice notation, pools, or modifiers: this engine has no tabletop
//     dice-pool mechanic, only a single d100-style roll per attack.
//   - Roll result interpretation: hit/miss and damage math live in
//     package entity.
//
// Integration:
// Used by package combat for attack rolls and target choice, by package
// spawn for part health and attack damage, and by package battlelog to
// pick a line template. Package entity takes the roll as a plain int.
package dice
