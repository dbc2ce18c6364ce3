// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes the tick loop's Prometheus instrumentation:
// active game count, attack throughput, and finish reasons. Labels are
// kept to a bounded, known set (finish reasons and oneshot kinds) to avoid the
// cardinality blowup per-guild or per-player labels would invite.
package metrics
