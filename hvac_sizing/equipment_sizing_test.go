package hvac_sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDuctLoads(heat float64, sens float64, lat float64, lat_t float64) *DuctLoads {
	return &DuctLoads{
		HeatLoad: heat,
		CoolSens: sens,
		CoolLat:  lat,
		CoolTot:  sens + lat,
		LAT:      lat_t,
	}
}

func newTestAC(t *testing.T, shr float64, n_stages int) *UnitEquipment {
	t.Helper()
	return newTestACWithCurve(t, shr, n_stages, flat_cap_ft)
}

func newTestACWithCurve(t *testing.T, shr float64, n_stages int, cap_ft Biquadratic) *UnitEquipment {
	t.Helper()
	ac := &CentralAC{EquipmentBase: EquipmentBase{name: "ac"}, cooling: newTestCoolingWithCurve(t, shr, n_stages, cap_ft)}
	ue, err := NewUnitEquipment([]Equipment{ac})
	require.NoError(t, err)
	return ue
}

func hasDiagnostic(ds []Diagnostic, kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func TestCoolingSizingBranches(t *testing.T) {
	site := newTestSite(t)

	tests := []struct {
		name     string
		loads    *DuctLoads
		shr      float64
		n_stages int
		branch   CoolingSizingBranch
		capacity float64
		clamped  bool
	}{
		{"total load", newTestDuctLoads(0, 16800, 3200, 56.4), 0.78, 1, BranchTotal, 20000.0, false},
		{"sensible shortfall", newTestDuctLoads(0, 19200, 4800, 54), 0.75, 1, BranchSensible, 25561.24, false},
		{"latent shortfall", newTestDuctLoads(0, 21000, 9000, 54), 0.8, 1, BranchLatent, 34500.0, true},
		{"latent shortfall two speeds", newTestDuctLoads(0, 21000, 9000, 54), 0.8, 2, BranchLatent, 36000.0, true},
		{"latent shortfall three speeds", newTestDuctLoads(0, 21000, 9000, 54), 0.8, 3, BranchLatent, 36776.92, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEquipmentCapacitySolver(site, newTestAC(t, tt.shr, tt.n_stages)).Solve(tt.loads)

			assert.Equal(t, tt.branch, got.Branch)
			assert.InDelta(t, tt.capacity, got.CoolCapacity, 0.01)
			assert.InDelta(t, got.CoolCapacity, got.CoolCapacityDesign, 1e-9)
			assert.InDelta(t, got.CoolCapacity*tt.shr, got.CoolCapacitySens, 1e-6)
			assert.Equal(t, tt.clamped, hasDiagnostic(got.Diagnostics, DiagClamped))
		})
	}
}

func TestCoolingCapacityWithinOversizeLimit(t *testing.T) {
	site := newTestSite(t)

	curves := map[string]Biquadratic{
		"flat":    flat_cap_ft,
		"derated": {0.9, 0, 0, 0, 0, 0},
		"boosted": {1.1, 0, 0, 0, 0, 0},
		"steep":   {0.5, 0, 0, 0, 0, 0},
		// falls with outdoor temperature, about 0.89 at the design condition
		"sloped": {1.6, 0.0, 0.0, -0.0075, 0, 0},
	}

	for curve_name, cap_ft := range curves {
		for n := 1; n <= 3; n++ {
			limit := newTestCooling(t, 0.75, n).get_oversize_limit()

			for _, l := range []*DuctLoads{
				newTestDuctLoads(0, 16800, 3200, 56.4),
				newTestDuctLoads(0, 19200, 4800, 54),
				newTestDuctLoads(0, 21000, 9000, 54),
				newTestDuctLoads(0, 12000, 12000, 54),
				newTestDuctLoads(0, 30000, 0, 58),
			} {
				got := NewEquipmentCapacitySolver(site, newTestACWithCurve(t, 0.75, n, cap_ft)).Solve(l)
				assert.LessOrEqual(t, got.CoolCapacity, limit*l.CoolTot+1e-6, "%s curve, %d speeds, load %.0f", curve_name, n, l.CoolTot)
			}
		}
	}
}

func TestDeratedLatentSizingKeepsRatedCapacityInLimit(t *testing.T) {
	site := newTestSite(t)
	ue := newTestACWithCurve(t, 0.75, 1, Biquadratic{0.9, 0, 0, 0, 0, 0})

	got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(0, 21000, 9000, 54))

	assert.Equal(t, BranchLatent, got.Branch)
	assert.InDelta(t, 1.15*30000.0, got.CoolCapacity, 1e-6)
	assert.InDelta(t, 1.15*30000.0*0.9, got.CoolCapacityDesign, 1e-6)
	assert.True(t, hasDiagnostic(got.Diagnostics, DiagClamped))
}

func TestCoolingAirflowPerTon(t *testing.T) {
	site := newTestSite(t)

	for _, shr := range []float64{0.7, 0.75, 0.78, 0.85} {
		for _, l := range []*DuctLoads{
			newTestDuctLoads(0, 16800, 3200, 56.4),
			newTestDuctLoads(0, 19200, 4800, 54),
			newTestDuctLoads(0, 20400, 3600, 58),
			newTestDuctLoads(0, 30000, 0, 58),
		} {
			got := NewEquipmentCapacitySolver(site, newTestAC(t, shr, 1)).Solve(l)
			cfm_per_ton := got.CoolAirflow / (got.CoolCapacity / btu_per_ton)
			assert.GreaterOrEqual(t, cfm_per_ton, cfm_per_ton_min, "SHR %g, load %.0f", shr, l.CoolTot)
			assert.LessOrEqual(t, cfm_per_ton, cfm_per_ton_max, "SHR %g, load %.0f", shr, l.CoolTot)
		}
	}

	t.Run("high airflow is trimmed", func(t *testing.T) {
		got := NewEquipmentCapacitySolver(site, newTestAC(t, 0.78, 1)).Solve(newTestDuctLoads(0, 20400, 3600, 58))
		assert.InDelta(t, cfm_per_ton_max_trim, got.CoolAirflow/(got.CoolCapacity/btu_per_ton), 1e-9)
		assert.True(t, hasDiagnostic(got.Diagnostics, DiagClamped))
	})
}

func TestMinimumCooling(t *testing.T) {
	site := newTestSite(t)

	got := NewEquipmentCapacitySolver(site, newTestAC(t, 0.75, 1)).Solve(newTestDuctLoads(0, 0.5, 0, 58))

	assert.Equal(t, BranchMinimum, got.Branch)
	assert.Equal(t, min_capacity, got.CoolCapacity)
	assert.InDelta(t, min_capacity*min_shr, got.CoolCapacitySens, 1e-12)
	assert.InDelta(t, min_cfm_per_ton/btu_per_ton, got.CoolAirflow, 1e-12)
}

func TestNoCoolingSystem(t *testing.T) {
	site := newTestSite(t)
	ue, err := NewUnitEquipment([]Equipment{&Boiler{EquipmentBase: EquipmentBase{name: "boiler"}}})
	require.NoError(t, err)

	got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(30000, 16800, 3200, 56.4))
	assert.Equal(t, BranchNone, got.Branch)
	assert.Zero(t, got.CoolCapacity)
	assert.Zero(t, got.CoolAirflow)
	assert.Equal(t, 30000.0, got.HeatCapacity)
	assert.Zero(t, got.HeatAirflow)
}

func TestInvalidCapacityCurve(t *testing.T) {
	site := newTestSite(t)
	st, err := NewCoolingStage(1.0, 0.78, Biquadratic{-1, 0, 0, 0, 0, 0}, 0.0)
	require.NoError(t, err)
	perf, err := NewCoolingPerformance([]CoolingStage{st})
	require.NoError(t, err)
	ue, err := NewUnitEquipment([]Equipment{&CentralAC{EquipmentBase: EquipmentBase{name: "ac"}, cooling: perf}})
	require.NoError(t, err)

	got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(0, 16800, 3200, 56.4))
	assert.True(t, hasDiagnostic(got.Diagnostics, DiagClamped))
	assert.Equal(t, BranchTotal, got.Branch)
	assert.InDelta(t, 20000.0, got.CoolCapacity, 1e-9)
}

func TestRoomACSizing(t *testing.T) {
	site := newTestSite(t)

	tests := []struct {
		name     string
		tc       float64
		capacity float64
		design   float64
		clamped  bool
	}{
		{"rated from curve", 0.9, 12000.0 / 0.9, 12000.0, false},
		{"oversize limit", 0.8, 1.15 * 12000.0, 1.15 * 12000.0 * 0.8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewCoolingStage(1.0, 0.7, Biquadratic{tt.tc, 0, 0, 0, 0, 0}, 350.0)
			require.NoError(t, err)
			perf, err := NewCoolingPerformance([]CoolingStage{st})
			require.NoError(t, err)
			ue, err := NewUnitEquipment([]Equipment{&RoomAC{EquipmentBase: EquipmentBase{name: "room"}, cooling: perf}})
			require.NoError(t, err)

			got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(0, 9000, 3000, 54))

			assert.Equal(t, BranchRated, got.Branch)
			assert.InDelta(t, tt.capacity, got.CoolCapacity, 1e-6)
			assert.InDelta(t, tt.design, got.CoolCapacityDesign, 1e-6)
			assert.InDelta(t, tt.capacity*0.7, got.CoolCapacitySens, 1e-6)
			assert.InDelta(t, 350.0*tt.capacity/btu_per_ton, got.CoolAirflow, 1e-6)
			assert.Equal(t, tt.clamped, hasDiagnostic(got.Diagnostics, DiagClamped))
		})
	}
}

func TestMiniSplitRatedAirflow(t *testing.T) {
	site := newTestSite(t)
	st, err := NewCoolingStage(1.0, 0.78, flat_cap_ft, 400.0)
	require.NoError(t, err)
	perf, err := NewCoolingPerformance([]CoolingStage{st})
	require.NoError(t, err)
	ue, err := NewUnitEquipment([]Equipment{&MiniSplitHP{EquipmentBase: EquipmentBase{name: "mshp"}, HeatPump: HeatPump{cooling: perf}}})
	require.NoError(t, err)

	got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(10000, 16800, 3200, 56.4))
	assert.InDelta(t, 20000.0, got.CoolCapacity, 1e-9)
	assert.InDelta(t, 400.0*20000.0/btu_per_ton, got.CoolAirflow, 1e-9)

	// ductless: no supply temperature, so no heating airflow
	assert.Equal(t, 20000.0, got.HeatCapacity)
	assert.Zero(t, got.HeatAirflow)
}

func TestCondenserTemperature(t *testing.T) {
	site := newTestSite(t)
	perf := newTestCooling(t, 0.78, 1)

	gshp := &GroundSourceHP{EquipmentBase: EquipmentBase{name: "gshp"}, HeatPump: HeatPump{cooling: perf, t_supply: 105.0, ducted: true}, t_entering_fluid: 80.0}
	ue, err := NewUnitEquipment([]Equipment{gshp})
	require.NoError(t, err)
	assert.Equal(t, 80.0, NewEquipmentCapacitySolver(site, ue).get_condenser_temp())

	assert.Equal(t, site.CoolingDrybulb, NewEquipmentCapacitySolver(site, newTestAC(t, 0.78, 1)).get_condenser_temp())
}

func TestHeatPumpHeating(t *testing.T) {
	site := newTestSite(t)
	perf := newTestCooling(t, 0.78, 1)

	newHP := func(hp HeatPump) *UnitEquipment {
		hp.cooling = perf
		hp.t_supply = 105.0
		hp.ducted = true
		ue, err := NewUnitEquipment([]Equipment{&AirSourceHP{EquipmentBase: EquipmentBase{name: "hp"}, HeatPump: hp}})
		require.NoError(t, err)
		return ue
	}

	t.Run("supplemental heat covers the shortfall", func(t *testing.T) {
		got := NewEquipmentCapacitySolver(site, newHP(HeatPump{})).Solve(newTestDuctLoads(30000, 16800, 3200, 56.4))
		assert.InDelta(t, 20000.0, got.HeatCapacity, 1e-9)
		assert.InDelta(t, 10000.0, got.HeatCapacitySupp, 1e-9)
		assert.InDelta(t, 20000.0/(1.1*35.0), got.HeatAirflow, 1e-9)
		assert.Equal(t, got.CoolAirflow, got.FanAirflow)
	})

	t.Run("no supplemental heat", func(t *testing.T) {
		got := NewEquipmentCapacitySolver(site, newHP(HeatPump{})).Solve(newTestDuctLoads(10000, 16800, 3200, 56.4))
		assert.InDelta(t, 20000.0, got.HeatCapacity, 1e-9)
		assert.Zero(t, got.HeatCapacitySupp)
	})

	t.Run("fixed capacities", func(t *testing.T) {
		got := NewEquipmentCapacitySolver(site, newHP(HeatPump{
			fixed_heat: ptr(24000.0),
			fixed_cool: ptr(36000.0),
			fixed_supp: ptr(5000.0),
		})).Solve(newTestDuctLoads(30000, 16800, 3200, 56.4))

		assert.Equal(t, 36000.0, got.CoolCapacity)
		assert.InDelta(t, 36000.0*0.78, got.CoolCapacitySens, 1e-6)
		assert.Equal(t, 24000.0, got.HeatCapacity)
		assert.Equal(t, 5000.0, got.HeatCapacitySupp)
	})
}

func TestFurnaceHeating(t *testing.T) {
	site := newTestSite(t)

	furnace := &Furnace{EquipmentBase: EquipmentBase{name: "furnace"}, t_supply: 120.0}
	ue, err := NewUnitEquipment([]Equipment{furnace})
	require.NoError(t, err)
	got := NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(40000, 0, 0, 58))
	assert.Equal(t, 40000.0, got.HeatCapacity)
	assert.InDelta(t, 40000.0/(1.1*50.0), got.HeatAirflow, 1e-9)
	assert.Equal(t, got.HeatAirflow, got.FanAirflow)

	furnace.fixed_heat = ptr(60000.0)
	got = NewEquipmentCapacitySolver(site, ue).Solve(newTestDuctLoads(40000, 0, 0, 58))
	assert.Equal(t, 60000.0, got.HeatCapacity)
}
