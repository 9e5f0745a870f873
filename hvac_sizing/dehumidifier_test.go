package hvac_sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDehumidifierWithoutCooling(t *testing.T) {
	site := newTestSite(t)
	loads := &DuctLoads{DehumLat: 2000.0}

	t.Run("flat rating curve", func(t *testing.T) {
		got := NewDehumidifierSizer(site, &Biquadratic{1, 0, 0, 0, 0, 0}).Size(loads, nil, &EquipmentSizing{})
		assert.Zero(t, got.RuntimeFraction)
		assert.Zero(t, got.CoolLatCapacity)
		// 2000 Btu/hr of moisture is about 20.6 L/day
		assert.InDelta(t, 20.6466, got.WaterRemoval, 1e-3)
	})

	t.Run("default rating curve", func(t *testing.T) {
		got := NewDehumidifierSizer(site, nil).Size(loads, nil, &EquipmentSizing{})
		assert.InDelta(t, 23.5787, got.WaterRemoval, 1e-3)
	})

	t.Run("no latent load", func(t *testing.T) {
		got := NewDehumidifierSizer(site, nil).Size(&DuctLoads{}, nil, &EquipmentSizing{})
		assert.Zero(t, got.WaterRemoval)
	})
}

func TestDehumidifierWithCooling(t *testing.T) {
	site := newTestSite(t)
	perf := newTestCooling(t, 0.78, 1)
	sized := NewEquipmentCapacitySolver(site, newTestAC(t, 0.78, 1)).Solve(newTestDuctLoads(0, 16800, 3200, 56.4))
	sizer := NewDehumidifierSizer(site, &Biquadratic{1, 0, 0, 0, 0, 0})

	none := sizer.Size(&DuctLoads{DehumSens: 0.0, DehumLat: 2000.0}, perf, sized)
	assert.Zero(t, none.RuntimeFraction)
	assert.InDelta(t, 1483.26, none.CoolLatCapacity, 0.1)
	assert.InDelta(t, 20.6466, none.WaterRemoval, 1e-3)

	part := sizer.Size(&DuctLoads{DehumSens: 3000.0, DehumLat: 2000.0}, perf, sized)
	assert.InDelta(t, 3000.0/18516.74, part.RuntimeFraction, 1e-4)
	assert.Less(t, part.WaterRemoval, none.WaterRemoval)
	assert.Greater(t, part.WaterRemoval, 0.0)

	full := sizer.Size(&DuctLoads{DehumSens: 1e6, DehumLat: 1000.0}, perf, sized)
	assert.Equal(t, 1.0, full.RuntimeFraction)
	assert.Zero(t, full.WaterRemoval)
}
