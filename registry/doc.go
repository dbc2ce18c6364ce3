// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package registry owns the Game records keyed by guild: status, start
// time, and the interaction handle a game was opened under.
//
// Purpose:
// At most one Game exists per guild at a time. The registry is the only
// place that answers "is there a game in this guild, and what state is
// it in" — entity rows live in package arena and reference a game only
// by GameId.
//
// Non-Goals:
//   - Entity storage: package arena owns player and enemy rows.
//   - Status transitions: only the state-machine driver and the
//     cleanup pass mutate Status; the registry just stores it.
package registry
