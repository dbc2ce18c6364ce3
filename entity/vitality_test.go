// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gainanist/bygone-bot/entity"
)

func TestNewVitality(t *testing.T) {
	v := entity.NewVitality(10, 50)
	assert.Equal(t, 10, v.Health.Current)
	assert.Equal(t, 10, v.Health.Max)
	assert.Equal(t, 50, v.Dodge)
	assert.True(t, v.Health.Alive())
}

func TestNewHealth_PanicsOnZeroMax(t *testing.T) {
	assert.Panics(t, func() {
		entity.NewHealth(0)
	})
}

func TestHealth_Reduce_Saturates(t *testing.T) {
	h := entity.NewHealth(5)
	h.Reduce(100)
	assert.Equal(t, 0, h.Current)
	assert.False(t, h.Alive())
}

func TestHealth_Reduce_Partial(t *testing.T) {
	h := entity.NewHealth(5)
	h.Reduce(2)
	require.Equal(t, 3, h.Current)
	assert.True(t, h.Alive())
}

func TestVitality_TakeAttack_Hit(t *testing.T) {
	v := entity.NewVitality(10, 50)
	hit := v.TakeAttack(3, 50)
	assert.True(t, hit)
	assert.Equal(t, 7, v.Health.Current)
}

func TestVitality_TakeAttack_Miss(t *testing.T) {
	v := entity.NewVitality(10, 50)
	hit := v.TakeAttack(3, 49)
	assert.False(t, hit)
	assert.Equal(t, 10, v.Health.Current)
}

func TestVitality_ModifyDodge(t *testing.T) {
	v := entity.NewVitality(10, 50)
	v.ModifyDodge(-10)
	assert.Equal(t, 40, v.Dodge)
}
