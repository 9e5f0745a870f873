package hvac_sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltitudeCorrectionFactor(t *testing.T) {
	tests := []struct {
		altitude float64
		want     float64
	}{
		{0.0, 1.0},
		{500.0, 0.985},
		{1000.0, 0.97},
		{5500.0, 0.82},
		{12000.0, 0.63},
	}
	for _, tt := range tests {
		acf, err := get_acf(tt.altitude)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, acf, 1e-12, "altitude %g", tt.altitude)
	}

	t.Run("table edges are exact", func(t *testing.T) {
		acf, err := get_acf(0.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, acf)

		acf, err = get_acf(12000.0)
		require.NoError(t, err)
		assert.Equal(t, 0.63, acf)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, alt := range []float64{-1.0, 12000.1, math.NaN()} {
			_, err := get_acf(alt)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestShelterClass(t *testing.T) {
	near := 5.0
	far := 50.0
	tests := []struct {
		name     string
		exposed  float64
		neighbor *float64
		want     int
	}{
		{"exposed, no neighbors", 0.6, nil, 2},
		{"exposed, far neighbor", 0.6, &far, 3},
		{"exposed, near neighbor", 0.6, &near, 4},
		{"partly exposed, no neighbors", 0.3, nil, 2},
		{"sheltered, no neighbors", 0.2, nil, 3},
		{"sheltered, far neighbor", 0.2, &far, 4},
		{"sheltered, near neighbor", 0.2, &near, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get_shelter_class(tt.exposed, tt.neighbor, 20.0))
		})
	}

	t.Run("explicit class wins", func(t *testing.T) {
		b, err := NewBuilding(2, 20.0, 0.6, nil, 5, InfiltrationACH50, 3.0, 0.0)
		require.NoError(t, err)
		assert.Equal(t, 5, b.ShelterClass())
	})

	t.Run("invalid class", func(t *testing.T) {
		_, err := NewBuilding(2, 20.0, 0.6, nil, 6, InfiltrationACH50, 3.0, 0.0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestStackAndWindCoefficients(t *testing.T) {
	b, err := NewBuilding(2, 20.0, 0.6, nil, 3, InfiltrationACH50, 3.0, 0.0)
	require.NoError(t, err)

	scale := math.Pow(2.0, 0.4)
	assert.InDelta(t, 0.015*scale, b.get_c_s(), 1e-12)
	assert.InDelta(t, 0.0065*scale, b.get_c_w(), 1e-12)
}

func TestSiteDesignParameters(t *testing.T) {
	site := newTestSite(t)

	assert.Equal(t, 20.0, site.CTD)
	assert.Equal(t, 45.0, site.HTD)
	assert.Equal(t, 5.0, site.DTD)
	assert.Equal(t, DailyRangeMedium, site.DailyRangeClass)
	assert.Equal(t, 1.0, site.ACF)
	assert.Equal(t, 7, site.DesignMonth)
	assert.InDelta(t, p_std, site.Pressure, 1e-9)
	assert.InDelta(t, 0.0130*grains_per_lb, site.CoolDesignGrains, 1e-9)
	assert.Greater(t, site.DehumidIndoorGrains, site.CoolIndoorGrains)
	assert.Less(t, site.CoolIndoorWetbulb, site.CoolSetpoint)
	assert.InDelta(t, 1.1, site.sens_factor(), 1e-12)
	assert.InDelta(t, 0.68, site.lat_factor(), 1e-12)

	t.Run("cooling below setpoint", func(t *testing.T) {
		w := newTestWeather()
		w.CoolingDrybulb = 70.0
		site, err := NewSiteDesignParameters(w, 70.0, 75.0, newTestBuilding(t))
		require.NoError(t, err)
		assert.Equal(t, 0.0, site.CTD)
	})

	t.Run("invalid design month", func(t *testing.T) {
		w := newTestWeather()
		w.DesignMonth = 13
		_, err := NewSiteDesignParameters(w, 70.0, 75.0, newTestBuilding(t))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDailyRangeClass(t *testing.T) {
	assert.Equal(t, DailyRangeLow, get_daily_range_class(15.9))
	assert.Equal(t, DailyRangeMedium, get_daily_range_class(16.0))
	assert.Equal(t, DailyRangeMedium, get_daily_range_class(25.0))
	assert.Equal(t, DailyRangeHigh, get_daily_range_class(25.1))
}
