package hvac_sizing

// **** Internal gains ****

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Heat gain source of a zone with an hourly schedule
type GainSource struct {
	name     string
	sensible float64     // sensible gain at full schedule, Btu/hr
	latent   float64     // latent gain at full schedule, Btu/hr
	schedule [24]float64 // hourly fraction, -
	monthly  [12]float64 // monthly multiplier, -
}

func NewGainSource(name string, sensible float64, latent float64, schedule []float64, monthly []float64) (*GainSource, error) {
	g := &GainSource{name: name, sensible: sensible, latent: latent}

	switch len(schedule) {
	case 0:
		for h := range g.schedule {
			g.schedule[h] = 1.0
		}
	case 24:
		copy(g.schedule[:], schedule)
	default:
		return nil, fmt.Errorf("%w: gain %q needs 24 hourly values, got %d", ErrInvalidInput, name, len(schedule))
	}

	switch len(monthly) {
	case 0:
		for m := range g.monthly {
			g.monthly[m] = 1.0
		}
	case 12:
		copy(g.monthly[:], monthly)
	default:
		return nil, fmt.Errorf("%w: gain %q needs 12 monthly values, got %d", ErrInvalidInput, name, len(monthly))
	}

	return g, nil
}

// Internal gains used by the cooling and dehumidification loads, Btu/hr
type internalGains struct {
	cool_sens  float64
	cool_lat   float64
	dehum_sens float64
	dehum_lat  float64
	hr_cool    int // hour of the maximum total gain
	hr_dehum   int // hour of the maximum latent gain
}

/*
Internal gains of a zone at the design hours.

	Args:
		gs: gain sources
		month: representative month 1..12

	Returns:
		internal gains, Btu/hr

	Notes:
		Cooling uses the hour with the largest total gain and dehumidification
		the hour with the largest latent gain.
*/
func get_internal_gains(gs []*GainSource, month int) internalGains {
	if len(gs) == 0 {
		return internalGains{}
	}

	// gains of source k at hour h, Btu/hr, [k, 24]
	q_sens_ks_hs := mat.NewDense(len(gs), 24, nil)
	q_lat_ks_hs := mat.NewDense(len(gs), 24, nil)
	for k, g := range gs {
		m := g.monthly[month-1]
		for h := 0; h < 24; h++ {
			q_sens_ks_hs.Set(k, h, g.sensible*g.schedule[h]*m)
			q_lat_ks_hs.Set(k, h, g.latent*g.schedule[h]*m)
		}
	}

	q_sens_hs := make([]float64, 24)
	q_lat_hs := make([]float64, 24)
	for h := 0; h < 24; h++ {
		q_sens_hs[h] = mat.Sum(q_sens_ks_hs.ColView(h))
		q_lat_hs[h] = mat.Sum(q_lat_ks_hs.ColView(h))
	}

	q_tot_hs := make([]float64, 24)
	floats.AddTo(q_tot_hs, q_sens_hs, q_lat_hs)

	hr_cool := floats.MaxIdx(q_tot_hs)
	hr_dehum := floats.MaxIdx(q_lat_hs)

	return internalGains{
		cool_sens:  q_sens_hs[hr_cool],
		cool_lat:   q_lat_hs[hr_cool],
		dehum_sens: q_sens_hs[hr_dehum],
		dehum_lat:  q_lat_hs[hr_dehum],
		hr_cool:    hr_cool,
		hr_dehum:   hr_dehum,
	}
}
