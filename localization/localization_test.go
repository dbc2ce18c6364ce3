// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/localization"
	"github.com/gainanist/bygone-bot/platform"
)

func TestSubstitute_ReplacesEveryToken(t *testing.T) {
	got := localization.Substitute(
		"{PLAYER_NAME} hits {ENEMY_NAME}'s {BYGONE03_PART_NAME}, ready in {DURATION}s",
		"Ripley", "_03", "gun", "12",
	)
	assert.Equal(t, "Ripley hits _03's gun, ready in 12s", got)
}

func TestSubstitute_LeavesUnusedTokensAlone(t *testing.T) {
	got := localization.Substitute("{PLAYER_NAME} joins the fray", "Ripley", "", "", "")
	assert.Equal(t, "Ripley joins the fray", got)
}

func TestEnglish_CoversEveryBattleLogKindAndGameStatus(t *testing.T) {
	bundle := localization.English()

	for _, kind := range []platform.BattleLogKind{
		platform.LogPlayerHit, platform.LogPlayerMiss,
		platform.LogBygoneHit, platform.LogBygoneMiss,
		platform.LogPlayerDead, platform.LogBygoneDead, platform.LogPlayerJoin,
	} {
		assert.NotEmpty(t, bundle.LogTemplates[kind], "kind %d", kind)
	}

	for _, status := range []platform.GameStatus{platform.StatusWon, platform.StatusLost, platform.StatusExpired} {
		assert.NotEmpty(t, bundle.FinishedMessages[status], "status %d", status)
	}

	for _, part := range entity.AllBygoneParts {
		assert.NotEmpty(t, bundle.PartLabel[part], "part %d", part)
	}

	assert.NotEmpty(t, bundle.CooldownTemplate)
	assert.NotEmpty(t, bundle.OtherGameInProgressTemplate)
}
