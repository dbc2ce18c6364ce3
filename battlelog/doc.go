// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package battlelog renders this tick's combat and join events into
// localized text lines and buffers them per guild until the Render
// Producer drains them into the next snapshot.
package battlelog
