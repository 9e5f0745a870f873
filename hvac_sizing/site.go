package hvac_sizing

// **** Site design conditions ****
// ACCA Manual J 8th edition, Section 3 "Design Conditions"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Daily temperature range class
type DailyRangeClass int

const (
	DailyRangeLow    DailyRangeClass = iota // less than 16 F
	DailyRangeMedium                        // 16 F to 25 F
	DailyRangeHigh                          // more than 25 F
)

func (c DailyRangeClass) String() string {
	return [...]string{"low", "medium", "high"}[c]
}

func get_daily_range_class(daily_range float64) DailyRangeClass {
	if daily_range < 16.0 {
		return DailyRangeLow
	} else if daily_range > 25.0 {
		return DailyRangeHigh
	}
	return DailyRangeMedium
}

//---------------------------------------------------------------------------------------------------//

// Outdoor design-day statistics of a site
type WeatherDesign struct {
	HeatingDrybulb        float64 // heating design dry-bulb, F
	CoolingDrybulb        float64 // cooling design dry-bulb, F
	DehumidDrybulb        float64 // dehumidification design dry-bulb, F
	CoolingHumidityRatio  float64 // coincident humidity ratio at cooling design, lb/lb
	DehumidHumidityRatio  float64 // humidity ratio at dehumidification design, lb/lb
	DailyTemperatureRange float64 // mean daily range in the cooling month, F
	CoolingWindspeed      float64 // coincident wind speed at cooling design, mph
	HeatingWindspeed      float64 // coincident wind speed at heating design, mph
	Latitude              float64 // deg
	Altitude              float64 // ft
	LocalPressure         float64 // psia, derived from altitude when zero
	GroundHeatingTemp     float64 // ground temperature at heating design, F
	GroundCoolingTemp     float64 // ground temperature at cooling design, F
	DesignMonth           int     // representative cooling month 1..12
}

/*
Design conditions of one dwelling unit.

Notes:
	Immutable once created by NewSiteDesignParameters.
*/
type SiteDesignParameters struct {
	HeatSetpoint         float64         // indoor heating setpoint, F
	CoolSetpoint         float64         // indoor cooling setpoint, F
	HeatingDrybulb       float64         // outdoor heating design dry-bulb, F
	CoolingDrybulb       float64         // outdoor cooling design dry-bulb, F
	DehumidDrybulb       float64         // outdoor dehumidification design dry-bulb, F
	CoolOutdoorW         float64         // outdoor cooling humidity ratio, lb/lb
	DehumidOutdoorW      float64         // outdoor dehumidification humidity ratio, lb/lb
	CoolDesignGrains     float64         // outdoor cooling humidity ratio, gr/lb
	DehumidDesignGrains  float64         // outdoor dehumidification humidity ratio, gr/lb
	CoolIndoorW          float64         // indoor humidity ratio at 55 %RH, lb/lb
	DehumidIndoorW       float64         // indoor humidity ratio at 60 %RH, lb/lb
	CoolIndoorGrains     float64         // indoor humidity ratio at 55 %RH, gr/lb
	DehumidIndoorGrains  float64         // indoor humidity ratio at 60 %RH, gr/lb
	CoolIndoorWetbulb    float64         // indoor wet-bulb at cooling design, F
	DehumidIndoorWetbulb float64         // indoor wet-bulb at dehumidification design, F
	CoolIndoorEnthalpy   float64         // indoor enthalpy at cooling design, Btu/lb
	CTD                  float64         // cooling design temperature difference, F
	HTD                  float64         // heating design temperature difference, F
	DTD                  float64         // dehumidification design temperature difference, F
	DailyRange           float64         // daily temperature range, F
	DailyRangeClass      DailyRangeClass // daily temperature range class
	ACF                  float64         // altitude correction factor, -
	Cs                   float64         // stack coefficient, cfm^2/(in^4 F)
	Cw                   float64         // wind coefficient, cfm^2/(in^4 mph^2)
	Latitude             float64         // deg
	CoolingWindspeed     float64         // mph
	HeatingWindspeed     float64         // mph
	Pressure             float64         // local pressure, psia
	AirDensity           float64         // indoor air density at cooling setpoint, lb/ft3
	GroundHeatingTemp    float64         // F
	GroundCoolingTemp    float64         // F
	DesignMonth          int             // 1..12
}

const (
	rh_indoor_cool    = 0.55
	rh_indoor_dehumid = 0.60
)

/*
Derive the design conditions of a unit.

	Args:
		w: outdoor design-day statistics
		heat_setpoint: indoor heating setpoint, F
		cool_setpoint: indoor cooling setpoint, F
		b: building (stories, shelter class)

	Returns:
		site design parameters
*/
func NewSiteDesignParameters(
	w *WeatherDesign,
	heat_setpoint float64,
	cool_setpoint float64,
	b *Building,
) (*SiteDesignParameters, error) {
	acf, err := get_acf(w.Altitude)
	if err != nil {
		return nil, err
	}

	p := w.LocalPressure
	if p <= 0 {
		p = get_p_from_altitude(w.Altitude)
	}

	month := w.DesignMonth
	if month == 0 {
		month = 7
	} else if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: design month %d", ErrInvalidInput, month)
	}

	cool_indoor_w := get_w_from_t_rh(cool_setpoint, rh_indoor_cool, p)
	dehum_indoor_w := get_w_from_t_rh(cool_setpoint, rh_indoor_dehumid, p)

	return &SiteDesignParameters{
		HeatSetpoint:         heat_setpoint,
		CoolSetpoint:         cool_setpoint,
		HeatingDrybulb:       w.HeatingDrybulb,
		CoolingDrybulb:       w.CoolingDrybulb,
		DehumidDrybulb:       w.DehumidDrybulb,
		CoolOutdoorW:         w.CoolingHumidityRatio,
		DehumidOutdoorW:      w.DehumidHumidityRatio,
		CoolDesignGrains:     w.CoolingHumidityRatio * grains_per_lb,
		DehumidDesignGrains:  w.DehumidHumidityRatio * grains_per_lb,
		CoolIndoorW:          cool_indoor_w,
		DehumidIndoorW:       dehum_indoor_w,
		CoolIndoorGrains:     cool_indoor_w * grains_per_lb,
		DehumidIndoorGrains:  dehum_indoor_w * grains_per_lb,
		CoolIndoorWetbulb:    get_t_wb(cool_setpoint, cool_indoor_w, p),
		DehumidIndoorWetbulb: get_t_wb(cool_setpoint, dehum_indoor_w, p),
		CoolIndoorEnthalpy:   get_h(cool_setpoint, cool_indoor_w),
		CTD:                  math.Max(w.CoolingDrybulb-cool_setpoint, 0.0),
		HTD:                  math.Max(heat_setpoint-w.HeatingDrybulb, 0.0),
		DTD:                  w.DehumidDrybulb - cool_setpoint,
		DailyRange:           w.DailyTemperatureRange,
		DailyRangeClass:      get_daily_range_class(w.DailyTemperatureRange),
		ACF:                  acf,
		Cs:                   b.get_c_s(),
		Cw:                   b.get_c_w(),
		Latitude:             w.Latitude,
		CoolingWindspeed:     w.CoolingWindspeed,
		HeatingWindspeed:     w.HeatingWindspeed,
		Pressure:             p,
		AirDensity:           get_rho_air(cool_setpoint, p),
		GroundHeatingTemp:    w.GroundHeatingTemp,
		GroundCoolingTemp:    w.GroundCoolingTemp,
		DesignMonth:          month,
	}, nil
}

/*
Altitude correction factor.

	Args:
		altitude: site elevation, ft

	Returns:
		altitude correction factor, -

	Notes:
		Manual J Table 10A, linear interpolation between 1000 ft rows.
*/
func get_acf(altitude float64) (float64, error) {
	lo := acf_altitudes[0]
	hi := acf_altitudes[len(acf_altitudes)-1]
	if math.IsNaN(altitude) || altitude < lo || altitude > hi {
		return 0.0, fmt.Errorf("%w: altitude %g ft is outside %g..%g ft", ErrInvalidInput, altitude, lo, hi)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(acf_altitudes, acf_factors); err != nil {
		return 0.0, err
	}
	return pl.Predict(altitude), nil
}

// Sensible air heat transfer factor 1.1 corrected for altitude, Btu/(hr cfm F)
func (s *SiteDesignParameters) sens_factor() float64 {
	return 1.1 * s.ACF
}

// Latent air heat transfer factor 0.68 corrected for altitude, Btu/(hr cfm gr/lb)
func (s *SiteDesignParameters) lat_factor() float64 {
	return 0.68 * s.ACF
}

func (s *SiteDesignParameters) daily_range_index() int {
	return int(s.DailyRangeClass)
}
