package hvac_sizing

// **** Supplemental dehumidifier ****

import (
	"math"
)

const (
	dehum_rated_rh   = 60.0    // relative humidity of the removal rating, %
	btu_per_lb_water = 1055.0  // latent heat of water, Btu/lb
	lb_per_ft3_water = 62.4    // density of water, lb/ft3
	liter_per_ft3    = 28.3168 // L/ft3
	hours_per_day    = 24.0    // h/day
)

// Dehumidifier sizing result
type DehumidifierSizing struct {
	RuntimeFraction float64 // cooling runtime at dehumidification design, -
	CoolLatCapacity float64 // latent capacity of the cooling system at dehumidification design, Btu/hr
	WaterRemoval    float64 // rated water removal required, L/day
}

type DehumidifierSizer struct {
	site  *SiteDesignParameters
	curve Biquadratic // water removal ratio, f(inlet dry-bulb C, inlet RH %)
}

func NewDehumidifierSizer(site *SiteDesignParameters, curve *Biquadratic) *DehumidifierSizer {
	c := dehumidifier_water_curve_default
	if curve != nil {
		c = *curve
	}
	return &DehumidifierSizer{site: site, curve: c}
}

/*
Rated water removal a dehumidifier needs to cover the latent load the
cooling system leaves at dehumidification design.

	Args:
		loads: unit loads including duct losses
		perf: cooling performance, nil without cooling
		sized: sized cooling capacity and airflow

	Returns:
		runtime fraction and required water removal

	Notes:
		The cooling system runs only as long as the sensible load needs it, so
		its latent removal is scaled by the runtime fraction.
*/
func (s *DehumidifierSizer) Size(loads *DuctLoads, perf *CoolingPerformance, sized *EquipmentSizing) DehumidifierSizing {
	var out DehumidifierSizing

	if perf != nil && sized.CoolCapacity > min_capacity {
		stage := perf.stages[sized.SizingSpeed]

		tot_cap := stage.cap_ft.Evaluate(s.site.DehumidIndoorWetbulb, s.site.DehumidDrybulb) * sized.CoolCapacity

		cfm_per_ton := sized.CoolAirflow / (sized.CoolCapacity / btu_per_ton)
		sens_cap := shr_curve_coeffs.Evaluate(cfm_per_ton, s.site.DehumidDrybulb) * sized.CoolCapacitySens

		if sens_cap > 0 {
			out.RuntimeFraction = math.Min(math.Max(loads.DehumSens/sens_cap, 0.0), 1.0)
		}
		out.CoolLatCapacity = math.Max(tot_cap-sens_cap, 0.0)
	}

	q_lat := math.Max(loads.DehumLat-out.RuntimeFraction*out.CoolLatCapacity, 0.0)
	water := q_lat / btu_per_lb_water / lb_per_ft3_water * liter_per_ft3 * hours_per_day

	// rated removal at the indoor condition
	ratio := s.curve.Evaluate(f_to_c(s.site.CoolSetpoint), dehum_rated_rh)
	if ratio > 0 {
		water /= ratio
	}
	out.WaterRemoval = water

	return out
}
