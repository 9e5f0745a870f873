package hvac_sizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnit(t *testing.T, name string, surfaces []*Surface, equipment []Equipment) *Unit {
	t.Helper()
	u, err := NewUnit(name, 0, 0, newTestWeather(), newTestBuilding(t), newTestZones(t, surfaces...), nil, nil, nil, equipment, nil)
	require.NoError(t, err)
	return u
}

func TestSizeUnitSingleWall(t *testing.T) {
	furnace := &Furnace{EquipmentBase: EquipmentBase{name: "furnace"}, t_supply: 120.0}
	ac := &CentralAC{EquipmentBase: EquipmentBase{name: "ac"}, cooling: newTestCooling(t, 0.78, 1)}
	u := newTestUnit(t, "unit 1", []*Surface{newTestWall("south", 0.1, 100.0)}, []Equipment{furnace, ac})

	got, err := SizeUnit(u)
	require.NoError(t, err)

	assert.Equal(t, "unit 1", got.UnitName)
	assert.InDelta(t, 450.0, got.HeatLoad, 1e-9)
	assert.InDelta(t, 315.4, got.CoolLoadSens, 1e-9)
	assert.Zero(t, got.CoolLoadLat)
	assert.Zero(t, got.HeatLoadDucts)
	assert.Equal(t, 1.0, got.RegainFactor)

	require.Len(t, got.Zones, 1)
	z := got.Zones[0]
	assert.Zero(t, z.Cool.Windows)
	assert.Zero(t, z.Cool.Doors)
	assert.Zero(t, z.Cool.InfilSens)
	assert.Zero(t, z.Cool.IntGainsSens)
	assert.InDelta(t, z.Cool.Walls, z.Cool.Sens(), 1e-9)
	assert.InDelta(t, z.Heat.Walls, z.Heat.Sens(), 1e-9)

	assert.InDelta(t, 450.0, got.HeatCapacity, 1e-9)
	assert.InDelta(t, 450.0/(1.1*50.0), got.HeatAirflow, 1e-9)
	assert.LessOrEqual(t, got.CoolCapacity, 1.15*315.4)
	assert.GreaterOrEqual(t, got.CoolCapacity, 315.4)

	cfm_per_ton := got.CoolAirflow / (got.CoolCapacity / btu_per_ton)
	assert.GreaterOrEqual(t, cfm_per_ton, cfm_per_ton_min)
	assert.LessOrEqual(t, cfm_per_ton, cfm_per_ton_max)
	assert.Equal(t, max(got.HeatAirflow, got.CoolAirflow), got.FanAirflow)
}

func TestSizeUnitWithoutEquipment(t *testing.T) {
	u := newTestUnit(t, "bare", []*Surface{newTestWall("south", 0.1, 100.0)}, nil)

	got, err := SizeUnit(u)
	require.NoError(t, err)
	assert.Equal(t, BranchNone, got.Branch)
	assert.Zero(t, got.CoolCapacity)
	assert.Zero(t, got.HeatCapacity)
	assert.Zero(t, got.HeatAirflow)
	assert.InDelta(t, 315.4/(1.1*17.0), got.CoolAirflow, 1e-9)
}

func TestSizeUnitWithAtticDucts(t *testing.T) {
	furnace := &Furnace{EquipmentBase: EquipmentBase{name: "furnace"}, t_supply: 120.0}
	ac := &CentralAC{EquipmentBase: EquipmentBase{name: "ac"}, cooling: newTestCooling(t, 0.78, 1)}
	ducts, err := NewDuctSystem(SpaceAtticVented, 200.0, 50.0, 6.0, 6.0, 0.05, 0.04)
	require.NoError(t, err)

	walls := []*Surface{newTestWall("south", 0.1, 1000.0)}
	u, err := NewUnit("ducted", 70.0, 75.0, newTestWeather(), newTestBuilding(t), newTestZones(t, walls...), nil, nil, ducts, []Equipment{furnace, ac}, nil)
	require.NoError(t, err)

	got, err := SizeUnit(u)
	require.NoError(t, err)
	assert.Greater(t, got.HeatLoad, 4500.0)
	assert.InDelta(t, got.HeatLoad-4500.0, got.HeatLoadDucts, 1e-6)
	assert.Greater(t, got.CoolLoadSens, 3154.0)
	assert.Equal(t, 0.10, got.RegainFactor)
}

func TestSizeUnitReportsAtticNonConvergence(t *testing.T) {
	furnace := &Furnace{EquipmentBase: EquipmentBase{name: "furnace"}, t_supply: 120.0}
	ducts, err := NewDuctSystem(SpaceAtticVented, 200.0, 50.0, 6.0, 6.0, 0.05, 0.04)
	require.NoError(t, err)
	attic := NewBufferSpace(SpaceAtticVented, 0.0005, 0.0005, 0.0, 38.0, 0.0)

	walls := []*Surface{newTestWall("south", 0.1, 1000.0)}
	u, err := NewUnit("hot attic", 70.0, 75.0, newTestWeather(), newTestBuilding(t), newTestZones(t, walls...), []*BufferSpace{attic}, nil, ducts, []Equipment{furnace}, nil)
	require.NoError(t, err)

	got, err := SizeUnit(u)
	require.NoError(t, err)
	assert.True(t, hasDiagnostic(got.Diagnostics, DiagNonConvergence))
	assert.GreaterOrEqual(t, got.HeatLoad, 4500.0)
	assert.Equal(t, got.HeatLoad, got.HeatCapacity)
}

func TestSizeUnitErrors(t *testing.T) {
	t.Run("surface without construction", func(t *testing.T) {
		bare := &Surface{name: "bare wall", kind: SurfaceWall, adjacent: SpaceOutdoors, area: 100.0}
		_, err := SizeUnit(newTestUnit(t, "unit 2", []*Surface{bare}, nil))
		require.ErrorIs(t, err, ErrMissingData)

		var lce *LoadCalcError
		require.ErrorAs(t, err, &lce)
		assert.Equal(t, "unit 2", lce.Unit)
		assert.Equal(t, "living", lce.Zone)
		assert.Equal(t, "bare wall", lce.Surface)
	})

	t.Run("crawlspace without UA values", func(t *testing.T) {
		floor := &Surface{name: "floor", kind: SurfaceFloor, adjacent: SpaceCrawlspaceVented, area: 1000.0, u_value: 0.05}
		_, err := SizeUnit(newTestUnit(t, "unit 3", []*Surface{floor}, nil))
		assert.ErrorIs(t, err, ErrMissingData)
	})

	t.Run("two cooling systems", func(t *testing.T) {
		perf := newTestCooling(t, 0.78, 1)
		_, err := NewUnit("unit 4", 0, 0, newTestWeather(), newTestBuilding(t), newTestZones(t), nil, nil, nil, []Equipment{
			&CentralAC{EquipmentBase: EquipmentBase{name: "ac 1"}, cooling: perf},
			&CentralAC{EquipmentBase: EquipmentBase{name: "ac 2"}, cooling: perf},
		}, nil)
		require.ErrorIs(t, err, ErrMultipleEquipment)

		var lce *LoadCalcError
		require.ErrorAs(t, err, &lce)
		assert.Equal(t, "unit 4", lce.Unit)
	})

	t.Run("missing weather", func(t *testing.T) {
		_, err := NewUnit("unit 5", 0, 0, nil, newTestBuilding(t), newTestZones(t), nil, nil, nil, nil, nil)
		assert.ErrorIs(t, err, ErrMissingData)
	})
}

func TestSizeUnits(t *testing.T) {
	good := newTestUnit(t, "good", []*Surface{newTestWall("south", 0.1, 100.0)}, nil)
	bad := newTestUnit(t, "bad", []*Surface{{name: "bare", kind: SurfaceDoor, adjacent: SpaceOutdoors, area: 20.0}}, nil)
	other := newTestUnit(t, "other", []*Surface{newTestWall("south", 0.2, 100.0)}, nil)

	for _, workers := range []int{0, 1, 4} {
		results, errs := SizeUnits(context.Background(), []*Unit{good, bad, other}, workers)
		require.Len(t, results, 3)
		require.Len(t, errs, 3)

		assert.NoError(t, errs[0])
		assert.InDelta(t, 450.0, results[0].HeatLoad, 1e-9)

		assert.ErrorIs(t, errs[1], ErrMissingData)
		assert.Nil(t, results[1])

		assert.NoError(t, errs[2])
		assert.InDelta(t, 900.0, results[2].HeatLoad, 1e-9)
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, errs := SizeUnits(ctx, []*Unit{good}, 1)
		assert.ErrorIs(t, errs[0], context.Canceled)
	})
}
