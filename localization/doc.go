// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package localization supplies the one concrete platform.Localization
// bundle this repository ships: the English strings for Bygone03,
// carried over from the original bot's template text. A deployment that
// wants another language builds its own platform.Localization value;
// nothing here is wired into that choice.
package localization
