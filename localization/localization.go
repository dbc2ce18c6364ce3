// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package localization

import "strings"

// Placeholder tokens substituted into a chosen battle-log or finished-
// message template. Matches the set platform.Localization documents.
const (
	tokenPlayerName = "{PLAYER_NAME}"
	tokenEnemyName  = "{ENEMY_NAME}"
	tokenPartName   = "{BYGONE03_PART_NAME}"
	tokenDuration   = "{DURATION}"
)

// Substitute replaces every recognized placeholder in template with the
// supplied values. A value left empty is substituted as-is: callers pass
// "" for placeholders a given template never uses.
func Substitute(template, playerName, enemyName, partName, duration string) string {
	r := strings.NewReplacer(
		tokenPlayerName, playerName,
		tokenEnemyName, enemyName,
		tokenPartName, partName,
		tokenDuration, duration,
	)
	return r.Replace(template)
}
