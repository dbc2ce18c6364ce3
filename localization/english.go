// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package localization

import (
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
)

// English returns the bundle this repository ships: the Bygone03
// template text from the original bot, carried over almost verbatim.
func English() platform.Localization {
	return platform.Localization{
		GameTitle: "Bygone03",
		EnemyName: "_03",
		StatusLabel: map[platform.GameStatus]string{
			platform.StatusOngoing: "ongoing",
			platform.StatusWon:     "won",
			platform.StatusLost:    "lost",
			platform.StatusExpired: "expired",
		},
		StageLabel: map[entity.Bygone03Stage]string{
			entity.Armored:  "armored",
			entity.Exposed:  "exposed",
			entity.Burning:  "burning",
			entity.Defeated: "destroyed",
		},
		PartLabel: map[entity.BygonePart]string{
			entity.Core:      "core",
			entity.Sensor:    "sensor",
			entity.Gun:       "gun",
			entity.LeftWing:  "left wing",
			entity.RightWing: "right wing",
		},
		LogTemplates: map[platform.BattleLogKind][]string{
			platform.LogPlayerJoin: {
				"*{PLAYER_NAME}* joins the fray",
			},
			platform.LogPlayerHit: {
				"*{PLAYER_NAME}* hits the *{BYGONE03_PART_NAME}*",
				"*{PLAYER_NAME}*'s shot lands on the *{BYGONE03_PART_NAME}*",
			},
			platform.LogPlayerMiss: {
				"*{PLAYER_NAME}* misses the *{BYGONE03_PART_NAME}*",
				"*{PLAYER_NAME}*'s shot goes wide",
			},
			platform.LogBygoneHit: {
				"*{ENEMY_NAME}* hits *{PLAYER_NAME}*",
			},
			platform.LogBygoneMiss: {
				"*{ENEMY_NAME}* misses *{PLAYER_NAME}*",
				"*{PLAYER_NAME}* dodges *{ENEMY_NAME}*'s attack",
			},
			platform.LogPlayerDead: {
				"*{PLAYER_NAME}* falls",
			},
			platform.LogBygoneDead: {
				"*{ENEMY_NAME}*'s *{BYGONE03_PART_NAME}* is destroyed",
			},
		},
		FinishedMessages: map[platform.GameStatus][]string{
			platform.StatusWon: {
				"*{ENEMY_NAME}* is destroyed. The players are victorious.",
			},
			platform.StatusLost: {
				"Every player has fallen. *{ENEMY_NAME}* stands.",
			},
			platform.StatusExpired: {
				"The battle against *{ENEMY_NAME}* times out, unresolved.",
			},
		},
		CooldownTemplate: []string{
			"*_03 is repairing itself, it will be ready in {DURATION}s*",
		},
		OtherGameInProgressTemplate: []string{
			"A battle against *{ENEMY_NAME}* is already underway in this server",
		},
	}
}
