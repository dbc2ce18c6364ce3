// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package platform defines the contracts between the core engine and the
// chat-platform adapter that sits outside it: the shape of inbound
// InputEvents, outbound GameRenderEvents, and the localization bundle
// the adapter supplies.
//
// Purpose:
// The gateway, command registration, embed construction, and
// localization tables themselves are all explicitly out of scope for
// this repository; this package specifies only the abstract contract a
// platform adapter must satisfy to drive the engine.
//
// Non-Goals:
//   - Wire formats: how an adapter actually talks to Discord is its own
//     concern.
//   - Localized string content: Localization is an opaque bundle here;
//     package localization supplies one concrete implementation.
package platform
