package hvac_sizing

// **** Duct losses ****
// ASHRAE Standard 152-2004 "Method of Test for Determining the Design and
// Seasonal Efficiencies of Residential Thermal Distribution Systems", Section 6

import (
	"fmt"
	"math"
)

const (
	duct_tolerance      = 0.001 // relative change at convergence, -
	duct_max_iters      = 50
	duct_heat_max_iters = 20
	attic_max_iters     = 20
	de_corr_min         = 0.25
	de_corr_max         = 1.00
)

// Forced-air duct system of a unit
type DuctSystem struct {
	location SpaceType // space containing the ducts
	a_s      float64   // supply duct surface area, ft2
	a_r      float64   // return duct surface area, ft2
	r_s      float64   // supply duct R-value including air films, hr ft2 F/Btu
	r_r      float64   // return duct R-value including air films, hr ft2 F/Btu
	f_leak_s float64   // supply leakage as a fraction of fan airflow, -
	f_leak_r float64   // return leakage as a fraction of fan airflow, -
}

func NewDuctSystem(location SpaceType, a_s float64, a_r float64, r_s float64, r_r float64, f_leak_s float64, f_leak_r float64) (*DuctSystem, error) {
	if location == SpaceGround {
		return nil, fmt.Errorf("%w: ducts cannot be located in %s", ErrInvalidInput, location)
	}
	if a_s < 0 || a_r < 0 {
		return nil, fmt.Errorf("%w: duct surface area must not be negative", ErrInvalidInput)
	}
	if (a_s > 0 && r_s <= 0) || (a_r > 0 && r_r <= 0) {
		return nil, fmt.Errorf("%w: duct R-value is required for ducts with surface area", ErrMissingData)
	}
	if f_leak_s < 0 || f_leak_s >= 1 || f_leak_r < 0 || f_leak_r >= 1 {
		return nil, fmt.Errorf("%w: duct leakage fraction must be within 0..1", ErrInvalidInput)
	}
	return &DuctSystem{
		location: location,
		a_s:      a_s,
		a_r:      a_r,
		r_s:      r_s,
		r_r:      r_r,
		f_leak_s: f_leak_s,
		f_leak_r: f_leak_r,
	}, nil
}

func (d *DuctSystem) Location() SpaceType {
	return d.location
}

// is_inside reports whether the ducts are entirely within conditioned space.
func (d *DuctSystem) is_inside() bool {
	return d == nil || d.location == SpaceConditioned
}

/*
Fraction of the duct losses that are regained by the conditioned space.

	Args:
		location: duct location
		buffer: buffer space at the duct location, nil if unknown

	Returns:
		regain factor, -

	Notes:
		ASHRAE 152 Table 6.3. Basements and crawlspaces without a buffer
		description are taken as uninsulated.
*/
func get_regain_factor(location SpaceType, buffer *BufferSpace) (float64, error) {
	ceiling_ins := buffer != nil && buffer.is_ceiling_insulated()
	walls_ins := buffer != nil && buffer.is_walls_insulated()

	switch location {
	case SpaceConditioned:
		return 1.0, nil
	case SpaceOutdoors, SpacePierBeam:
		return 0.0, nil
	case SpaceAtticVented, SpaceAtticUnvented:
		return 0.10, nil
	case SpaceGarage:
		return 0.05, nil
	case SpaceBasementUnconditioned:
		if ceiling_ins {
			return 0.30, nil
		} else if walls_ins {
			return 0.75, nil
		}
		return 0.50, nil
	case SpaceCrawlspaceVented:
		return crawl_regain([4]float64{0.17, 0.12, 0.66, 0.50}, ceiling_ins, walls_ins), nil
	case SpaceCrawlspaceUnvented:
		return crawl_regain([4]float64{0.30, 0.16, 0.76, 0.60}, ceiling_ins, walls_ins), nil
	}
	return 0.0, fmt.Errorf("%w: duct location %s", ErrUnknownSpace, location)
}

// crawl_regain picks from {both insulated, ceiling only, walls only, neither}.
func crawl_regain(f [4]float64, ceiling_ins bool, walls_ins bool) float64 {
	switch {
	case ceiling_ins && walls_ins:
		return f[0]
	case ceiling_ins:
		return f[1]
	case walls_ins:
		return f[2]
	}
	return f[3]
}

//---------------------------------------------------------------------------------------------------//

// Conduction and leakage factors at one fan airflow
type ductFactors struct {
	a_s float64 // supply air delivered fraction, -
	a_r float64 // return air from conditioned space fraction, -
	b_s float64 // supply conduction fraction, -
	b_r float64 // return conduction fraction, -
}

/*
Duct conduction and leakage factors.

	Args:
		cfm: fan airflow, cfm
		rho: air density, lb/ft3

	Returns:
		conduction and leakage factors

	Notes:
		B = exp(-A / (60 cfm rho cp R)), a = (cfm - leakage) / cfm
*/
func (d *DuctSystem) get_factors(cfm float64, rho float64) ductFactors {
	mcp := 60.0 * cfm * rho * cp_air
	b := func(a, r float64) float64 {
		if a <= 0 {
			return 1.0
		}
		return math.Exp(-a / (mcp * r))
	}
	return ductFactors{
		a_s: (cfm - d.f_leak_s*cfm) / cfm,
		a_r: (cfm - d.f_leak_r*cfm) / cfm,
		b_s: b(d.a_s, d.r_s),
		b_r: b(d.a_r, d.r_r),
	}
}

/*
Delivery effectiveness in heating.

	Args:
		f: duct factors
		dt_e: temperature rise across the heat exchanger, F
		dt_s: indoor minus supply duct ambient temperature, F
		dt_r: indoor minus return duct ambient temperature, F

	Returns:
		delivery effectiveness, -

	Notes:
		ASHRAE 152 Eq.(6.23). A cooling load passed as negative dt_e with
		the matching temperature differences gives the cooling effectiveness
		without latent effects.
*/
func get_de_heating(f ductFactors, dt_e float64, dt_s float64, dt_r float64) float64 {
	return f.a_s*f.b_s -
		f.a_s*f.b_s*(1.0-f.a_r*f.b_r)*dt_r/dt_e -
		f.a_s*(1.0-f.b_s)*dt_s/dt_e
}

/*
Delivery effectiveness in cooling.

	Args:
		f: duct factors
		m_dot: fan air mass flow, lb/hr
		q_tot: total cooling load, Btu/hr
		h_r: enthalpy of air at the return duct location, Btu/lb
		h_in: enthalpy of indoor air, Btu/lb
		dt_r: indoor minus return duct ambient temperature, F
		t_lat: coil leaving air temperature, F
		t_amb_s: supply duct ambient temperature, F

	Returns:
		delivery effectiveness, -

	Notes:
		ASHRAE 152 Eq.(6.25)
*/
func get_de_cooling(f ductFactors, m_dot float64, q_tot float64, h_r float64, h_in float64, dt_r float64, t_lat float64, t_amb_s float64) float64 {
	return f.a_s * (1.0 - m_dot/q_tot*((1.0-f.a_r)*(h_r-h_in)+
		f.a_r*cp_air*(f.b_r-1.0)*dt_r+
		cp_air*(f.b_s-1.0)*(t_lat-t_amb_s)))
}

/*
Delivery effectiveness corrected for regain.

	Notes:
		DEcorr = DE + F (1 - DE) + Br (a_r F - F), within 0.25..1.00
*/
func get_de_corr(de float64, f_regain float64, f ductFactors) float64 {
	de_corr := de + f_regain*(1.0-de) + f.b_r*(f.a_r*f_regain-f_regain)
	return math.Max(de_corr_min, math.Min(de_corr_max, de_corr))
}

//---------------------------------------------------------------------------------------------------//

// Loads after duct losses
type DuctLoads struct {
	HeatLoad       float64 // Btu/hr
	HeatDucts      float64 // Btu/hr
	CoolSens       float64 // Btu/hr
	CoolLat        float64 // Btu/hr
	CoolTot        float64 // Btu/hr
	CoolDuctsSens  float64 // Btu/hr
	CoolDuctsLat   float64 // Btu/hr
	DehumSens      float64 // Btu/hr
	DehumLat       float64 // Btu/hr
	DehumDuctsSens float64 // Btu/hr
	DehumDuctsLat  float64 // Btu/hr
	HeatAirflow    float64 // cfm
	CoolAirflow    float64 // cfm
	LAT            float64 // F
	RegainFactor   float64 // -
	Diagnostics    []Diagnostic
}

// passthrough returns the loads without duct losses.
func passthrough(init *UnitInitialLoads) *DuctLoads {
	return &DuctLoads{
		HeatLoad:     init.HeatLoad,
		CoolSens:     init.CoolSens,
		CoolLat:      init.CoolLat,
		CoolTot:      init.CoolTot,
		DehumSens:    init.DehumSens,
		DehumLat:     init.DehumLat,
		HeatAirflow:  init.HeatAirflow,
		CoolAirflow:  init.CoolAirflow,
		LAT:          init.LAT,
		RegainFactor: 1.0,
	}
}

// Duct loss solver for one unit
type DuctLossSolver struct {
	site          *SiteDesignParameters
	ducts         *DuctSystem
	buffer        *BufferSpace // buffer space at the duct location, may be nil
	t_supply_heat float64      // heating supply air temperature, F
	heat_ducted   bool         // heating delivered through the ducts
	cool_ducted   bool         // cooling delivered through the ducts
}

func NewDuctLossSolver(
	site *SiteDesignParameters,
	ducts *DuctSystem,
	buffer *BufferSpace,
	t_supply_heat float64,
	heat_ducted bool,
	cool_ducted bool,
) *DuctLossSolver {
	return &DuctLossSolver{
		site:          site,
		ducts:         ducts,
		buffer:        buffer,
		t_supply_heat: t_supply_heat,
		heat_ducted:   heat_ducted,
		cool_ducted:   cool_ducted,
	}
}

/*
Loads of the unit including duct losses.

	Args:
		init: unit loads before duct losses
		temps: design temperatures, including the duct location

	Returns:
		loads after duct losses

	Notes:
		Ducts in an attic with a known heat balance iterate the attic
		temperature against the duct losses released into it.
*/
func (s *DuctLossSolver) Solve(init *UnitInitialLoads, temps *ZoneDesignTemperatures) (*DuctLoads, error) {
	if s.ducts.is_inside() || (!s.heat_ducted && !s.cool_ducted) {
		return passthrough(init), nil
	}

	f_regain, err := get_regain_factor(s.ducts.location, s.buffer)
	if err != nil {
		return nil, err
	}

	t_amb, err := temps.Get(s.ducts.location)
	if err != nil {
		return nil, err
	}

	out := passthrough(init)
	out.RegainFactor = f_regain

	attic := s.ducts.location.IsAttic() && s.buffer != nil && s.buffer.ua_total() > 0

	// heating
	if s.heat_ducted && init.HeatLoad > 0 {
		var heat heatResult
		if attic {
			ua := s.buffer.ua_total()
			fp := IterateToConvergence(t_amb.Heat, func(t float64) float64 {
				heat = s.solve_heating(init, f_regain, t)
				return t_amb.Heat + (heat.load-init.HeatLoad)/ua
			}, duct_tolerance, attic_max_iters)
			if !fp.Converged {
				out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagNonConvergence, "attic_temperature", "heating attic temperature did not converge in %d iterations (last %.2f F)", fp.Iterations, fp.Value))
			}
		} else {
			heat = s.solve_heating(init, f_regain, t_amb.Heat)
		}
		if !heat.converged {
			out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagNonConvergence, "duct_heating", "duct heating load did not converge in %d iterations", duct_heat_max_iters))
		}
		out.HeatLoad = heat.load
		out.HeatDucts = heat.load - init.HeatLoad
		out.HeatAirflow = heat.airflow
	}

	// cooling
	if s.cool_ducted && init.CoolSens > 0 {
		var cool coolResult
		if attic {
			ua := s.buffer.ua_total()
			fp := IterateToConvergence(t_amb.Cool, func(t float64) float64 {
				cool = s.solve_cooling(init, f_regain, t)
				return t_amb.Cool - (cool.sens-init.CoolSens)/ua
			}, duct_tolerance, attic_max_iters)
			if !fp.Converged {
				out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagNonConvergence, "attic_temperature", "cooling attic temperature did not converge in %d iterations (last %.2f F)", fp.Iterations, fp.Value))
			}
		} else {
			cool = s.solve_cooling(init, f_regain, t_amb.Cool)
		}
		if !cool.converged {
			out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagNonConvergence, "duct_cooling", "duct cooling load did not converge in %d iterations", duct_max_iters))
		}
		out.CoolSens = cool.sens
		out.CoolLat = cool.lat
		out.CoolTot = cool.sens + cool.lat
		out.CoolDuctsSens = cool.sens - init.CoolSens
		out.CoolDuctsLat = cool.lat - init.CoolLat
		out.CoolAirflow = cool.airflow

		// dehumidification at the cooling airflow
		dehum := s.solve_dehumidification(init, f_regain, t_amb.Dehum, cool.airflow)
		out.DehumSens = dehum.sens
		out.DehumLat = dehum.lat
		out.DehumDuctsSens = dehum.sens - init.DehumSens
		out.DehumDuctsLat = dehum.lat - init.DehumLat
	}

	return out, nil
}

type heatResult struct {
	load      float64
	airflow   float64
	converged bool
}

// solve_heating iterates load = initial / DEcorr at a duct ambient temperature.
func (s *DuctLossSolver) solve_heating(init *UnitInitialLoads, f_regain float64, t_amb float64) heatResult {
	rho := s.site.AirDensity
	dt := s.site.HeatSetpoint - t_amb

	var cfm float64
	fp := IterateToConvergence(init.HeatLoad, func(load float64) float64 {
		cfm = get_heat_airflow(s.site, load, s.t_supply_heat)
		if cfm <= 0 {
			return load
		}
		f := s.ducts.get_factors(cfm, rho)
		dt_e := load / (60.0 * cfm * rho * cp_air)
		de := get_de_heating(f, dt_e, dt, dt)
		return init.HeatLoad / get_de_corr(de, f_regain, f)
	}, duct_tolerance, duct_heat_max_iters)

	return heatResult{
		load:      fp.Value,
		airflow:   get_heat_airflow(s.site, fp.Value, s.t_supply_heat),
		converged: fp.Converged,
	}
}

type coolResult struct {
	sens      float64
	lat       float64
	airflow   float64
	converged bool
}

// Latent gain of air drawn into the return ducts, Btu/hr
func (s *DuctLossSolver) get_return_leak_latent(cfm float64, grains_out float64, grains_in float64) float64 {
	return math.Max(0.0, s.site.lat_factor()*s.ducts.f_leak_r*cfm*(grains_out-grains_in))
}

/*
Cooling loads with duct losses.

	Notes:
		The total load is iterated; each step splits it into the latent load
		(zone latent plus return leakage) and the remaining sensible load
		that fixes the airflow.
*/
func (s *DuctLossSolver) solve_cooling(init *UnitInitialLoads, f_regain float64, t_amb float64) coolResult {
	site := s.site
	rho := site.AirDensity
	dt_r := site.CoolSetpoint - t_amb
	h_r := get_h(t_amb, site.CoolOutdoorW)
	h_in := site.CoolIndoorEnthalpy

	cfm := init.CoolAirflow
	// sens + lat == tot; the latent share is capped at the total
	split := func(tot float64) (float64, float64) {
		lat := init.CoolLat + s.get_return_leak_latent(cfm, site.CoolDesignGrains, site.CoolIndoorGrains)
		sens := math.Max(tot-lat, 0.0)
		return sens, tot - sens
	}
	// a fully latent split keeps the zone airflow
	airflow := func(sens float64) float64 {
		if sens <= 0 {
			return init.CoolAirflow
		}
		return get_cool_airflow(site, sens, init.LAT)
	}

	fp := IterateToConvergence(init.CoolTot, func(tot float64) float64 {
		sens, _ := split(tot)
		cfm = airflow(sens)
		if cfm <= 0 {
			return tot
		}
		f := s.ducts.get_factors(cfm, rho)
		m_dot := 60.0 * cfm * rho
		de := get_de_cooling(f, m_dot, tot, h_r, h_in, dt_r, init.LAT, t_amb)
		return init.CoolTot / get_de_corr(de, f_regain, f)
	}, duct_tolerance, duct_max_iters)

	sens, lat := split(fp.Value)
	return coolResult{
		sens:      sens,
		lat:       lat,
		airflow:   airflow(sens),
		converged: fp.Converged,
	}
}

type dehumResult struct {
	sens float64
	lat  float64
}

/*
Dehumidification loads with duct losses.

	Notes:
		Single pass at the cooling airflow, with cooling treated as negative
		heating in the heating effectiveness.
*/
func (s *DuctLossSolver) solve_dehumidification(init *UnitInitialLoads, f_regain float64, t_amb float64, cfm float64) dehumResult {
	site := s.site
	out := dehumResult{sens: init.DehumSens, lat: init.DehumLat}
	if cfm <= 0 {
		return out
	}

	rho := site.AirDensity
	f := s.ducts.get_factors(cfm, rho)

	if init.DehumSens > 0 {
		dt := site.CoolSetpoint - t_amb
		dt_e := -init.DehumSens / (60.0 * cfm * rho * cp_air)
		de := get_de_heating(f, dt_e, dt, dt)
		out.sens = init.DehumSens / get_de_corr(de, f_regain, f)
	}

	out.lat = init.DehumLat + s.get_return_leak_latent(cfm, site.DehumidDesignGrains, site.DehumidIndoorGrains)
	return out
}
