package hvac_sizing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Mild climate: HTD 45 F, CTD 20 F, medium daily range, sea level.
func newTestWeather() *WeatherDesign {
	return &WeatherDesign{
		HeatingDrybulb:        25.0,
		CoolingDrybulb:        95.0,
		DehumidDrybulb:        80.0,
		CoolingHumidityRatio:  0.0130,
		DehumidHumidityRatio:  0.0150,
		DailyTemperatureRange: 20.0,
		CoolingWindspeed:      7.5,
		HeatingWindspeed:      15.0,
		Latitude:              40.0,
		Altitude:              0.0,
		GroundHeatingTemp:     50.0,
		GroundCoolingTemp:     65.0,
	}
}

// One-story building without leakage.
func newTestBuilding(t *testing.T) *Building {
	t.Helper()
	b, err := NewBuilding(1, 10.0, 0.6, nil, 0, InfiltrationACH50, 0.0, 0.0)
	require.NoError(t, err)
	return b
}

func newTestSite(t *testing.T) *SiteDesignParameters {
	t.Helper()
	site, err := NewSiteDesignParameters(newTestWeather(), 70.0, 75.0, newTestBuilding(t))
	require.NoError(t, err)
	return site
}

func newTestTemps(t *testing.T, site *SiteDesignParameters, spaces ...SpaceType) *ZoneDesignTemperatures {
	t.Helper()
	temps, err := NewZoneDesignTemperatures(site, spaces, nil)
	require.NoError(t, err)
	return temps
}

func newTestWall(name string, u float64, area float64) *Surface {
	return &Surface{
		name:     name,
		kind:     SurfaceWall,
		adjacent: SpaceOutdoors,
		area:     area,
		azimuth:  180.0,
		u_value:  u,
		color:    ColorMedium,
	}
}

// Single zone of 1000 ft2 and 8000 ft3.
func newTestZones(t *testing.T, surfaces ...*Surface) *Zones {
	t.Helper()
	zs, err := NewZones([]*Zone{NewZone(1, "living", 1000.0, 8000.0, surfaces, nil)})
	require.NoError(t, err)
	return zs
}

// Constant capacity curve, so rated capacity equals design capacity.
var flat_cap_ft = Biquadratic{1, 0, 0, 0, 0, 0}

func newTestCooling(t *testing.T, shr float64, n_stages int) *CoolingPerformance {
	t.Helper()
	return newTestCoolingWithCurve(t, shr, n_stages, flat_cap_ft)
}

func newTestCoolingWithCurve(t *testing.T, shr float64, n_stages int, cap_ft Biquadratic) *CoolingPerformance {
	t.Helper()
	stages := make([]CoolingStage, n_stages)
	for i := range stages {
		st, err := NewCoolingStage(float64(i+1)/float64(n_stages), shr, cap_ft, 0.0)
		require.NoError(t, err)
		stages[i] = st
	}
	perf, err := NewCoolingPerformance(stages)
	require.NoError(t, err)
	return perf
}
