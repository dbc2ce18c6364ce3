// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render snapshots game state on draw and progress events and
// turns them into the GameRenderEvent payloads the platform adapter
// consumes. It is stateless beyond the battle-log buffer it drains
// through; idempotency on the receiving end is the adapter's concern.
package render
