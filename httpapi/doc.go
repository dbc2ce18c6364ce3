// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package httpapi is the ops-facing HTTP surface the core ships
// alongside the tick loop: a health probe and a Prometheus scrape
// endpoint, fronted by per-IP rate limiting and a permissive CORS
// policy. It never touches game state beyond a read-only active-game
// count.
package httpapi
