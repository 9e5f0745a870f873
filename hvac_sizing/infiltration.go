package hvac_sizing

// **** Infiltration and mechanical ventilation ****
// ASHRAE HOF 2009 Ch.16 "Ventilation and Infiltration", Eq.(48) and Eq.(49)

import (
	"fmt"
	"math"
)

// Whole-house mechanical ventilation type
type VentilationType int

const (
	VentilationNone     VentilationType = iota // none
	VentilationExhaust                         // exhaust only
	VentilationSupply                          // supply only
	VentilationBalanced                        // balanced, with or without heat/energy recovery
)

func (v VentilationType) String() string {
	return [...]string{"none", "exhaust", "supply", "balanced"}[v]
}

func VentilationTypeFromString(s string) (VentilationType, error) {
	v, ok := map[string]VentilationType{
		"":         VentilationNone,
		"none":     VentilationNone,
		"exhaust":  VentilationExhaust,
		"supply":   VentilationSupply,
		"balanced": VentilationBalanced,
		"hrv":      VentilationBalanced,
		"erv":      VentilationBalanced,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: ventilation type %q", ErrInvalidInput, s)
	}
	return v, nil
}

type MechanicalVentilation struct {
	vent_type    VentilationType // type
	flow_rate    float64         // outdoor air flow rate, cfm
	sensible_eff float64         // sensible recovery effectiveness, -
	latent_eff   float64         // latent recovery effectiveness, -
}

func NewMechanicalVentilation(vent_type VentilationType, flow_rate float64, sensible_eff float64, latent_eff float64) (*MechanicalVentilation, error) {
	if flow_rate < 0 {
		return nil, fmt.Errorf("%w: ventilation flow rate %g", ErrInvalidInput, flow_rate)
	}
	if sensible_eff < 0 || sensible_eff > 1 || latent_eff < 0 || latent_eff > 1 {
		return nil, fmt.Errorf("%w: recovery effectiveness must be within 0..1", ErrInvalidInput)
	}
	return &MechanicalVentilation{
		vent_type:    vent_type,
		flow_rate:    flow_rate,
		sensible_eff: sensible_eff,
		latent_eff:   latent_eff,
	}, nil
}

/*
Unbalanced and balanced ventilation flows.

	Returns:
		unbalanced flow, cfm
		balanced flow seen as a sensible load, cfm
		balanced flow seen as a latent load, cfm
*/
func (v *MechanicalVentilation) get_flows() (float64, float64, float64) {
	if v == nil {
		return 0.0, 0.0, 0.0
	}
	switch v.vent_type {
	case VentilationExhaust, VentilationSupply:
		return v.flow_rate, 0.0, 0.0
	case VentilationBalanced:
		return 0.0, v.flow_rate * (1.0 - v.sensible_eff), v.flow_rate * (1.0 - v.latent_eff)
	}
	return 0.0, 0.0, 0.0
}

//---------------------------------------------------------------------------------------------------//

// Outdoor air flow of the unit for one design condition, cfm
type airflowOA struct {
	sens float64 // flow carrying a sensible load
	lat  float64 // flow carrying a latent load
}

/*
Infiltration of the unit.

	Args:
		b: building
		site: site design parameters
		v_cond: conditioned volume, ft3
		a_cfa: conditioned floor area, ft2
		delta_t: indoor-outdoor temperature difference, F
		windspeed: wind speed, mph

	Returns:
		infiltration, cfm

	Notes:
		Q = ELA * (Cs |dT| + Cw U^2)^0.5
*/
func get_infiltration_cfm(
	b *Building,
	site *SiteDesignParameters,
	v_cond float64,
	a_cfa float64,
	delta_t float64,
	windspeed float64,
) float64 {
	switch b.infiltration_method {
	case InfiltrationConstantACH:
		return b.ach_natural * v_cond / 60.0
	}

	ela := b.get_ela(v_cond, a_cfa)
	return ela * math.Sqrt(site.Cs*math.Abs(delta_t)+site.Cw*windspeed*windspeed)
}

/*
Infiltration combined with mechanical ventilation.

	Args:
		icfm: infiltration, cfm
		v: mechanical ventilation, nil if none

	Returns:
		outdoor air flow, cfm

	Notes:
		Unbalanced flow, supply or exhaust, combines with infiltration in
		quadrature. The balanced flow that is not recovered adds directly.
*/
func get_combined_oa(icfm float64, v *MechanicalVentilation) airflowOA {
	q_unb, q_bal_sens, q_bal_lat := v.get_flows()
	q_mix := math.Sqrt(icfm*icfm + q_unb*q_unb)
	return airflowOA{
		sens: q_bal_sens + q_mix,
		lat:  q_bal_lat + q_mix,
	}
}

// Outdoor air flows of the unit at heating, cooling and dehumidification design
type unitOutdoorAir struct {
	heat  airflowOA
	cool  airflowOA
	dehum airflowOA
}

func get_unit_outdoor_air(
	b *Building,
	site *SiteDesignParameters,
	v *MechanicalVentilation,
	v_cond float64,
	a_cfa float64,
) unitOutdoorAir {
	return unitOutdoorAir{
		heat:  get_combined_oa(get_infiltration_cfm(b, site, v_cond, a_cfa, site.HTD, site.HeatingWindspeed), v),
		cool:  get_combined_oa(get_infiltration_cfm(b, site, v_cond, a_cfa, site.CTD, site.CoolingWindspeed), v),
		dehum: get_combined_oa(get_infiltration_cfm(b, site, v_cond, a_cfa, site.DTD, site.CoolingWindspeed), v),
	}
}

// scale returns the share of the unit flows that belongs to one zone.
func (u unitOutdoorAir) scale(f float64) unitOutdoorAir {
	return unitOutdoorAir{
		heat:  airflowOA{sens: u.heat.sens * f, lat: u.heat.lat * f},
		cool:  airflowOA{sens: u.cool.sens * f, lat: u.cool.lat * f},
		dehum: airflowOA{sens: u.dehum.sens * f, lat: u.dehum.lat * f},
	}
}
