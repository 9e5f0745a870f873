package hvac_sizing

// **** Equipment capacity and airflow ****
// Manual S style selection of rated capacities from the design loads.

import (
	"math"
)

const (
	min_capacity         = 1.0     // smallest sized capacity, Btu/hr
	min_shr              = 0.78    // sensible heat ratio at the smallest capacity, -
	min_cfm_per_ton      = 400.0   // airflow at the smallest capacity, cfm/ton
	undersize_limit      = 0.9     // minimum ratio of design sensible capacity to sensible load, -
	cfm_per_ton_max      = 500.0   // cfm/ton
	cfm_per_ton_min      = 200.0   // cfm/ton
	cfm_per_ton_max_trim = 499.0   // cfm/ton
	cfm_per_ton_min_trim = 201.0   // cfm/ton
	btu_per_ton          = 12000.0 // Btu/hr
)

// Policy that set the cooling capacity
type CoolingSizingBranch int

const (
	BranchNone     CoolingSizingBranch = iota // no cooling system
	BranchMinimum                             // design load below the smallest capacity
	BranchLatent                              // sized to meet the latent load
	BranchSensible                            // sized to meet 90 % of the sensible load
	BranchTotal                               // sized to the total load
	BranchRated                               // room unit sized at rated airflow
)

func (b CoolingSizingBranch) String() string {
	return [...]string{"none", "minimum", "latent", "sensible", "total", "rated"}[b]
}

// Sized capacities and airflows of a unit
type EquipmentSizing struct {
	CoolCapacity       float64 // rated total cooling capacity, Btu/hr
	CoolCapacitySens   float64 // rated sensible cooling capacity, Btu/hr
	CoolCapacityDesign float64 // total cooling capacity at design conditions, Btu/hr
	CoolAirflow        float64 // cfm
	HeatCapacity       float64 // Btu/hr
	HeatCapacitySupp   float64 // supplemental heating capacity, Btu/hr
	HeatAirflow        float64 // cfm
	FanAirflow         float64 // cfm
	SizingSpeed        int     // compressor speed used for sizing
	Branch             CoolingSizingBranch
	Diagnostics        []Diagnostic
}

// Sizes the equipment of one unit
type EquipmentCapacitySolver struct {
	site      *SiteDesignParameters
	equipment *UnitEquipment
}

func NewEquipmentCapacitySolver(site *SiteDesignParameters, equipment *UnitEquipment) *EquipmentCapacitySolver {
	return &EquipmentCapacitySolver{site: site, equipment: equipment}
}

/*
Size the equipment.

	Args:
		loads: unit loads including duct losses

	Returns:
		capacities and airflows
*/
func (s *EquipmentCapacitySolver) Solve(loads *DuctLoads) *EquipmentSizing {
	out := &EquipmentSizing{}
	s.size_cooling(loads, out)
	s.size_heating(loads, out)
	out.FanAirflow = math.Max(out.HeatAirflow, out.CoolAirflow)
	return out
}

// Condenser entering temperature at cooling design, F
func (s *EquipmentCapacitySolver) get_condenser_temp() float64 {
	if gshp, ok := s.equipment.cooling.(*GroundSourceHP); ok {
		return gshp.t_entering_fluid
	}
	return s.site.CoolingDrybulb
}

// Fixed cooling capacity of the cooling system, Btu/hr, nil if sized
func (s *EquipmentCapacitySolver) get_fixed_cooling() *float64 {
	switch eq := s.equipment.cooling.(type) {
	case *CentralAC:
		return eq.fixed_cool
	case *RoomAC:
		return eq.fixed_cool
	case *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		return heat_pump(eq).fixed_cool
	}
	return nil
}

/*
Design sensible capacity consistent with the airflow it needs.

	Args:
		rated: rated total capacity, Btu/hr
		stage: sizing speed
		k: sensible airflow factor, Btu/hr/cfm
		t_cond: condenser entering temperature, F

	Returns:
		design sensible capacity, Btu/hr, negative if no positive solution exists

	Notes:
		The sensible ratio curve is linear in cfm/ton, so the airflow that
		carries the sensible capacity at the leaving air temperature can be
		solved in closed form.
*/
func get_design_sensible(rated float64, stage CoolingStage, k float64, t_cond float64) float64 {
	a := shr_curve_coeffs[0] + shr_curve_coeffs[3]*t_cond
	b := btu_per_ton * (shr_curve_coeffs[1] + shr_curve_coeffs[5]*t_cond) / k
	d := 1.0 - stage.shr_rated*b
	if d <= 0 {
		return -1.0
	}
	return rated * stage.shr_rated * a / d
}

func (s *EquipmentCapacitySolver) size_cooling(loads *DuctLoads, out *EquipmentSizing) {
	perf := s.equipment.cooling_performance()
	if perf == nil {
		out.Branch = BranchNone
		return
	}

	speed := perf.get_sizing_speed()
	stage := perf.stages[speed]
	out.SizingSpeed = speed

	name := s.equipment.cooling.Name()

	if loads.CoolTot < min_capacity {
		out.Branch = BranchMinimum
		out.CoolCapacity = min_capacity
		out.CoolCapacityDesign = min_capacity
		out.CoolCapacitySens = min_capacity * min_shr
		out.CoolAirflow = min_cfm_per_ton * min_capacity / btu_per_ton
		s.apply_fixed_cooling(out)
		return
	}

	t_cond := s.get_condenser_temp()
	tc := stage.cap_ft.Evaluate(s.site.CoolIndoorWetbulb, t_cond)
	if tc <= 0 {
		out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagClamped, name, "capacity curve value %.3f at design conditions replaced by 1.0", tc))
		tc = 1.0
	}

	// The rated capacity stays within the oversize limit, so the design
	// capacity ceiling shrinks when the curve derates the equipment.
	limit := perf.get_oversize_limit()
	ceiling := limit * loads.CoolTot * math.Min(tc, 1.0)

	if _, ok := s.equipment.cooling.(*RoomAC); ok {
		out.Branch = BranchRated
		out.CoolCapacityDesign = s.limit_design(loads.CoolTot, ceiling, limit, out)
		out.CoolCapacity = out.CoolCapacityDesign / tc
		out.CoolCapacitySens = out.CoolCapacity * stage.shr_rated
		out.CoolAirflow = stage.cfm_per_ton * out.CoolCapacity / btu_per_ton
		s.clamp_airflow(out, name)
		s.apply_fixed_cooling(out)
		return
	}

	k := s.site.sens_factor() * (s.site.CoolSetpoint - loads.LAT)

	// naive sizing to the total load
	rated := loads.CoolTot / tc
	sens_design := get_design_sensible(rated, stage, k, t_cond)
	lat_design := math.Max(loads.CoolTot-sens_design, 1.0)

	var cap_design float64
	switch {
	case lat_design < loads.CoolLat:
		out.Branch = BranchLatent

		// sensible capacity that leaves exactly the latent load to the coil
		a := shr_curve_coeffs[0] + shr_curve_coeffs[3]*t_cond
		b := btu_per_ton * (shr_curve_coeffs[1] + shr_curve_coeffs[5]*t_cond) / k
		den := (tc/stage.shr_rated-b*tc)/a - 1.0
		cap_design = ceiling
		shr_design := stage.shr_rated
		if den > 0 {
			sens_cap := loads.CoolLat / den
			cap_design = sens_cap + loads.CoolLat
			shr_design = sens_cap / cap_design
		}
		cap_design = s.limit_design(cap_design, ceiling, limit, out)
		sens_design = shr_design * cap_design

	case sens_design < undersize_limit*loads.CoolSens:
		out.Branch = BranchSensible

		sens_target := undersize_limit * loads.CoolSens
		per_rated := get_design_sensible(1.0, stage, k, t_cond)
		if per_rated > 0 {
			cap_design = sens_target / per_rated * tc
		} else {
			cap_design = ceiling
		}
		cap_design = s.limit_design(cap_design, ceiling, limit, out)
		sens_design = get_design_sensible(cap_design/tc, stage, k, t_cond)

	default:
		out.Branch = BranchTotal
		cap_design = s.limit_design(loads.CoolTot, ceiling, limit, out)
		if cap_design < loads.CoolTot {
			sens_design = get_design_sensible(cap_design/tc, stage, k, t_cond)
		}
	}

	out.CoolCapacityDesign = cap_design
	out.CoolCapacity = cap_design / tc
	out.CoolCapacitySens = out.CoolCapacity * stage.shr_rated

	if _, ok := s.equipment.cooling.(*MiniSplitHP); ok && stage.cfm_per_ton > 0 {
		out.CoolAirflow = stage.cfm_per_ton * out.CoolCapacity / btu_per_ton
	} else {
		out.CoolAirflow = math.Max(sens_design, 0.0) / k
	}

	s.clamp_airflow(out, name)
	s.apply_fixed_cooling(out)
}

// Cap a design capacity at the oversize ceiling.
func (s *EquipmentCapacitySolver) limit_design(cap_design float64, ceiling float64, limit float64, out *EquipmentSizing) float64 {
	if cap_design <= ceiling {
		return cap_design
	}
	out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagClamped, s.equipment.cooling.Name(), "cooling capacity limited to %.0f %% of the design load", limit*100))
	return ceiling
}

// Keep the cooling airflow within 200 to 500 cfm per rated ton.
func (s *EquipmentCapacitySolver) clamp_airflow(out *EquipmentSizing, name string) {
	tons := out.CoolCapacity / btu_per_ton
	if tons <= 0 {
		return
	}
	cfm_per_ton := out.CoolAirflow / tons
	if cfm_per_ton > cfm_per_ton_max {
		out.CoolAirflow = cfm_per_ton_max_trim * tons
		out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagClamped, name, "cooling airflow %.0f cfm/ton reduced to %.0f", cfm_per_ton, cfm_per_ton_max_trim))
	} else if cfm_per_ton < cfm_per_ton_min {
		out.CoolAirflow = cfm_per_ton_min_trim * tons
		out.Diagnostics = append(out.Diagnostics, newDiagnostic(DiagClamped, name, "cooling airflow %.0f cfm/ton raised to %.0f", cfm_per_ton, cfm_per_ton_min_trim))
	}
}

// Replace the sized cooling capacity with a fixed one, keeping cfm/ton.
func (s *EquipmentCapacitySolver) apply_fixed_cooling(out *EquipmentSizing) {
	fixed := s.get_fixed_cooling()
	if fixed == nil || out.CoolCapacity <= 0 {
		return
	}
	f := *fixed / out.CoolCapacity
	out.CoolCapacity = *fixed
	out.CoolCapacitySens *= f
	out.CoolCapacityDesign *= f
	out.CoolAirflow *= f
}

func (s *EquipmentCapacitySolver) size_heating(loads *DuctLoads, out *EquipmentSizing) {
	load := math.Max(loads.HeatLoad, 0.0)

	switch eq := s.equipment.heating.(type) {
	case nil:
		return

	case *Furnace:
		out.HeatCapacity = fixed_or(eq.fixed_heat, load)
		out.HeatAirflow = get_heat_airflow(s.site, out.HeatCapacity, eq.t_supply)

	case *Boiler:
		out.HeatCapacity = fixed_or(eq.fixed_heat, load)

	case *ElectricResistance:
		out.HeatCapacity = fixed_or(eq.fixed_heat, load)

	case *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		hp := heat_pump(eq)
		heat := load
		if out.CoolCapacity > min_capacity {
			heat = out.CoolCapacity
		}
		out.HeatCapacity = fixed_or(hp.fixed_heat, heat)
		out.HeatCapacitySupp = fixed_or(hp.fixed_supp, math.Max(load-out.HeatCapacity, 0.0))
		out.HeatAirflow = get_heat_airflow(s.site, out.HeatCapacity, hp.t_supply)
	}
}

func fixed_or(fixed *float64, sized float64) float64 {
	if fixed != nil {
		return *fixed
	}
	return sized
}
