package hvac_sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeavingAirTemp(t *testing.T) {
	tests := []struct {
		shr  float64
		want float64
	}{
		{0.60, 54.0},
		{0.80, 54.0},
		{0.825, 56.0},
		{0.85, 58.0},
		{0.95, 58.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, get_leaving_air_temp(tt.shr), 1e-9, "SHR %g", tt.shr)
	}

	// continuous at both ends of the ramp
	assert.InDelta(t, get_leaving_air_temp(0.80-1e-9), get_leaving_air_temp(0.80+1e-9), 1e-6)
	assert.InDelta(t, get_leaving_air_temp(0.85-1e-9), get_leaving_air_temp(0.85+1e-9), 1e-6)
}

func TestSHR(t *testing.T) {
	assert.Equal(t, 1.0, get_shr(0.0, 0.0))
	assert.Equal(t, 1.0, get_shr(-100.0, 0.0))
	assert.InDelta(t, 0.8, get_shr(800.0, 200.0), 1e-12)
	assert.Equal(t, 1.0, get_shr(800.0, 0.0))
}

func TestAggregateUnitLoads(t *testing.T) {
	site := newTestSite(t)

	cs := []*ZoneLoadComponents{
		{
			ZoneName: "a",
			Heat:     LoadSet{Walls: 1000.0},
			Cool:     LoadSet{Walls: 500.0, InfilLat: 200.0},
		},
		{
			ZoneName: "b",
			Heat:     LoadSet{Windows: 500.0},
			Cool:     LoadSet{Windows: 300.0, IntGainsLat: 100.0},
			Dehum:    LoadSet{Windows: 50.0, IntGainsLat: 100.0},
		},
	}

	t.Run("forced air heating", func(t *testing.T) {
		u := AggregateUnitLoads(cs, site, 120.0)

		assert.InDelta(t, 1500.0, u.HeatLoad, 1e-9)
		assert.InDelta(t, 800.0, u.CoolSens, 1e-9)
		assert.InDelta(t, 300.0, u.CoolLat, 1e-9)
		assert.InDelta(t, u.CoolSens+u.CoolLat, u.CoolTot, 1e-9)
		assert.InDelta(t, 50.0, u.DehumSens, 1e-9)
		assert.InDelta(t, 100.0, u.DehumLat, 1e-9)

		assert.InDelta(t, 800.0/1100.0, u.SHR, 1e-12)
		assert.Equal(t, 54.0, u.LAT)
		assert.InDelta(t, 1500.0/(1.1*50.0), u.HeatAirflow, 1e-9)
		assert.InDelta(t, 800.0/(1.1*21.0), u.CoolAirflow, 1e-9)
	})

	t.Run("no forced air heating", func(t *testing.T) {
		assert.Zero(t, AggregateUnitLoads(cs, site, 0.0).HeatAirflow)
	})

	t.Run("negative latent is clamped", func(t *testing.T) {
		dry := []*ZoneLoadComponents{{Cool: LoadSet{Walls: 900.0, InfilLat: -500.0}}}
		u := AggregateUnitLoads(dry, site, 0.0)
		assert.Zero(t, u.CoolLat)
		assert.InDelta(t, u.CoolSens, u.CoolTot, 1e-9)
		assert.Equal(t, 1.0, u.SHR)
		assert.Equal(t, 58.0, u.LAT)
	})
}

func TestCalcZoneLoads(t *testing.T) {
	site := newTestSite(t)
	temps := newTestTemps(t, site)

	gains, err := NewGainSource("appliances", 600.0, 100.0, nil, nil)
	require.NoError(t, err)

	z := NewZone(1, "living", 1000.0, 8000.0, []*Surface{newTestWall("south", 0.1, 100.0)}, []*GainSource{gains})
	oa := unitOutdoorAir{
		heat: airflowOA{sens: 100.0, lat: 100.0},
		cool: airflowOA{sens: 100.0, lat: 100.0},
	}

	c, err := CalcZoneLoads(z, site, temps, oa)
	require.NoError(t, err)

	assert.Equal(t, "living", c.ZoneName)
	assert.InDelta(t, 450.0, c.Heat.Walls, 1e-9)
	assert.InDelta(t, 315.4, c.Cool.Walls, 1e-9)
	assert.InDelta(t, 1.1*100.0*45.0, c.Heat.InfilSens, 1e-9)
	assert.InDelta(t, 1.1*100.0*20.0, c.Cool.InfilSens, 1e-9)
	assert.Greater(t, c.Cool.InfilLat, 0.0)

	// heating ignores internal gains
	assert.Zero(t, c.Heat.IntGainsSens)
	assert.Zero(t, c.Heat.Lat())
	assert.InDelta(t, 600.0, c.Cool.IntGainsSens, 1e-9)
	assert.InDelta(t, 100.0, c.Cool.IntGainsLat, 1e-9)
}

func TestCalcZoneLoadsLocatesErrors(t *testing.T) {
	site := newTestSite(t)
	temps := newTestTemps(t, site)

	bare := &Surface{name: "bare", kind: SurfaceDoor, adjacent: SpaceOutdoors, area: 20.0}
	_, err := CalcZoneLoads(NewZone(1, "den", 100.0, 800.0, []*Surface{bare}, nil), site, temps, unitOutdoorAir{})
	require.ErrorIs(t, err, ErrMissingData)

	var lce *LoadCalcError
	require.ErrorAs(t, err, &lce)
	assert.Equal(t, "den", lce.Zone)
	assert.Equal(t, "bare", lce.Surface)
}
