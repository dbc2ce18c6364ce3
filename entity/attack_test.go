// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gainanist/bygone-bot/entity"
)

func TestAttack_Attack_HitExactThreshold(t *testing.T) {
	a := entity.NewAttack(5, 60)
	target := entity.NewVitality(10, 100)

	hit := a.Attack(&target, 40) // 60 + 40 = 100 >= 100
	assert.True(t, hit)
	assert.Equal(t, 5, target.Health.Current)
}

func TestAttack_Attack_MissBelowThreshold(t *testing.T) {
	a := entity.NewAttack(5, 60)
	target := entity.NewVitality(10, 100)

	hit := a.Attack(&target, 39)
	assert.False(t, hit)
	assert.Equal(t, 10, target.Health.Current)
}

func TestAttack_ModifyAccuracy(t *testing.T) {
	a := entity.NewAttack(5, 60)
	a.ModifyAccuracy(-25)
	assert.Equal(t, 35, a.Accuracy)
}
