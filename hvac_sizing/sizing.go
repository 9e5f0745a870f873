package hvac_sizing

// **** Unit sizing ****

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	heat_setpoint_default = 70.0 // F
	cool_setpoint_default = 75.0 // F
)

// Dwelling unit served by one set of heating and cooling equipment
type Unit struct {
	name          string
	heat_setpoint float64 // F
	cool_setpoint float64 // F
	weather       *WeatherDesign
	building      *Building
	zones         *Zones
	buffers       map[SpaceType]*BufferSpace // buffer space descriptions by type
	ventilation   *MechanicalVentilation     // nil if none
	ducts         *DuctSystem                // nil if none
	equipment     *UnitEquipment
	dehum_curve   *Biquadratic // dehumidifier water removal curve, nil for the default
	diagnostics   []Diagnostic // warnings raised while reading the unit
}

func NewUnit(
	name string,
	heat_setpoint float64,
	cool_setpoint float64,
	weather *WeatherDesign,
	building *Building,
	zones *Zones,
	buffers []*BufferSpace,
	ventilation *MechanicalVentilation,
	ducts *DuctSystem,
	equipment []Equipment,
	dehum_curve *Biquadratic,
) (*Unit, error) {
	if weather == nil || building == nil || zones == nil {
		return nil, &LoadCalcError{Unit: name, Err: fmt.Errorf("%w: weather, building and zones are required", ErrMissingData)}
	}

	if heat_setpoint == 0 {
		heat_setpoint = heat_setpoint_default
	}
	if cool_setpoint == 0 {
		cool_setpoint = cool_setpoint_default
	}

	bs := make(map[SpaceType]*BufferSpace, len(buffers))
	for _, b := range buffers {
		bs[b.space_type] = b
	}

	ue, err := NewUnitEquipment(equipment)
	if err != nil {
		return nil, &LoadCalcError{Unit: name, Err: err}
	}

	return &Unit{
		name:          name,
		heat_setpoint: heat_setpoint,
		cool_setpoint: cool_setpoint,
		weather:       weather,
		building:      building,
		zones:         zones,
		buffers:       bs,
		ventilation:   ventilation,
		ducts:         ducts,
		equipment:     ue,
		dehum_curve:   dehum_curve,
	}, nil
}

func (u *Unit) Name() string {
	return u.name
}

//---------------------------------------------------------------------------------------------------//

// Final loads, capacities and airflows of a unit
type UnitFinalLoads struct {
	UnitName string

	// loads including ducts, Btu/hr
	HeatLoad           float64
	HeatLoadDucts      float64
	CoolLoadSens       float64
	CoolLoadLat        float64
	CoolLoadDuctsSens  float64
	CoolLoadDuctsLat   float64
	DehumLoadSens      float64
	DehumLoadLat       float64
	DehumLoadDuctsSens float64
	DehumLoadDuctsLat  float64

	// airflows, cfm
	HeatAirflow float64
	CoolAirflow float64
	FanAirflow  float64

	// capacities, Btu/hr
	CoolCapacity     float64
	CoolCapacitySens float64
	HeatCapacity     float64
	HeatCapacitySupp float64

	RegainFactor         float64             // duct regain factor, -
	DehumRuntimeFraction float64             // -
	DehumWaterRemoval    float64             // L/day
	Branch               CoolingSizingBranch // cooling sizing policy
	SizingSpeed          int                 // compressor speed used for sizing

	Zones       []*ZoneLoadComponents
	Diagnostics []Diagnostic
}

/*
Size one unit.

	Args:
		u: unit

	Returns:
		final loads, capacities and airflows

	Notes:
		site -> design temperatures -> zone loads -> unit loads -> ducts
		-> equipment -> dehumidifier
*/
func SizeUnit(u *Unit) (*UnitFinalLoads, error) {
	out, err := size_unit(u)
	if err != nil {
		return nil, withUnit(u.name, err)
	}
	return out, nil
}

func size_unit(u *Unit) (*UnitFinalLoads, error) {
	site, err := NewSiteDesignParameters(u.weather, u.heat_setpoint, u.cool_setpoint, u.building)
	if err != nil {
		return nil, err
	}

	// design temperatures of every space the unit touches
	spaces := u.zones.space_types()
	if u.ducts != nil && u.ducts.location != SpaceConditioned {
		spaces = append(spaces, u.ducts.location)
	}
	temps, err := NewZoneDesignTemperatures(site, spaces, u.buffers)
	if err != nil {
		return nil, err
	}

	// zone loads, outdoor air split by volume
	oa := get_unit_outdoor_air(u.building, site, u.ventilation, u.zones.total_volume(), u.zones.total_floor_area())
	f_is := u.zones.get_volume_fraction_is()

	cs := make([]*ZoneLoadComponents, u.zones.n_zn)
	for i, z := range u.zones.zns {
		cs[i], err = CalcZoneLoads(z, site, temps, oa.scale(f_is.AtVec(i)))
		if err != nil {
			return nil, err
		}
	}

	t_supply_heat := u.equipment.heat_supply_temp()
	init := AggregateUnitLoads(cs, site, t_supply_heat)

	// ducts
	loads := passthrough(init)
	if u.ducts != nil {
		solver := NewDuctLossSolver(
			site,
			u.ducts,
			u.buffers[u.ducts.location],
			t_supply_heat,
			u.equipment.is_heat_ducted(),
			u.equipment.is_cool_ducted(),
		)
		loads, err = solver.Solve(init, temps)
		if err != nil {
			return nil, err
		}
	}

	// equipment
	sized := NewEquipmentCapacitySolver(site, u.equipment).Solve(loads)
	dehum := NewDehumidifierSizer(site, u.dehum_curve).Size(loads, u.equipment.cooling_performance(), sized)

	out := &UnitFinalLoads{
		UnitName:             u.name,
		HeatLoad:             loads.HeatLoad,
		HeatLoadDucts:        loads.HeatDucts,
		CoolLoadSens:         loads.CoolSens,
		CoolLoadLat:          loads.CoolLat,
		CoolLoadDuctsSens:    loads.CoolDuctsSens,
		CoolLoadDuctsLat:     loads.CoolDuctsLat,
		DehumLoadSens:        loads.DehumSens,
		DehumLoadLat:         loads.DehumLat,
		DehumLoadDuctsSens:   loads.DehumDuctsSens,
		DehumLoadDuctsLat:    loads.DehumDuctsLat,
		HeatAirflow:          loads.HeatAirflow,
		CoolAirflow:          loads.CoolAirflow,
		CoolCapacity:         sized.CoolCapacity,
		CoolCapacitySens:     sized.CoolCapacitySens,
		HeatCapacity:         sized.HeatCapacity,
		HeatCapacitySupp:     sized.HeatCapacitySupp,
		RegainFactor:         loads.RegainFactor,
		DehumRuntimeFraction: dehum.RuntimeFraction,
		DehumWaterRemoval:    dehum.WaterRemoval,
		Branch:               sized.Branch,
		SizingSpeed:          sized.SizingSpeed,
		Zones:                cs,
	}

	// sized airflows replace the load airflows when the equipment exists
	if u.equipment.heating != nil {
		out.HeatAirflow = sized.HeatAirflow
	}
	if u.equipment.cooling != nil {
		out.CoolAirflow = sized.CoolAirflow
	}
	out.FanAirflow = max(out.HeatAirflow, out.CoolAirflow)

	out.Diagnostics = append(out.Diagnostics, u.diagnostics...)
	out.Diagnostics = append(out.Diagnostics, loads.Diagnostics...)
	out.Diagnostics = append(out.Diagnostics, sized.Diagnostics...)

	return out, nil
}

/*
Size several units in parallel.

	Args:
		ctx: context
		units: units
		workers: number of units sized at once, 0 or less for no limit

	Returns:
		results and errors in the order of units; a failed unit has a nil
		result and does not stop the others
*/
func SizeUnits(ctx context.Context, units []*Unit, workers int) ([]*UnitFinalLoads, []error) {
	results := make([]*UnitFinalLoads, len(units))
	errs := make([]error, len(units))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = SizeUnit(u)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
