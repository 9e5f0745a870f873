package hvac_sizing

// **** HVAC equipment ****

import (
	"fmt"
)

// Biquadratic performance curve: c0 + c1 x + c2 x^2 + c3 y + c4 y^2 + c5 x y
type Biquadratic [6]float64

func (c Biquadratic) Evaluate(x float64, y float64) float64 {
	return c[0] + c[1]*x + c[2]*x*x + c[3]*y + c[4]*y*y + c[5]*x*y
}

func NewBiquadratic(cs []float64) (Biquadratic, error) {
	var c Biquadratic
	if len(cs) != 6 {
		return c, fmt.Errorf("%w: a biquadratic curve needs 6 coefficients, got %d", ErrMissingData, len(cs))
	}
	copy(c[:], cs)
	return c, nil
}

//---------------------------------------------------------------------------------------------------//

// One compressor speed of a cooling system
type CoolingStage struct {
	capacity_ratio float64     // capacity relative to the nominal capacity, -
	shr_rated      float64     // rated sensible heat ratio, -
	cap_ft         Biquadratic // total capacity ratio, f(indoor wet-bulb F, outdoor dry-bulb F)
	cfm_per_ton    float64     // rated airflow, cfm/ton, zero when not rated
}

func NewCoolingStage(capacity_ratio float64, shr_rated float64, cap_ft Biquadratic, cfm_per_ton float64) (CoolingStage, error) {
	if shr_rated <= 0 || shr_rated > 1 {
		return CoolingStage{}, fmt.Errorf("%w: rated SHR %g must be within (0, 1]", ErrMissingData, shr_rated)
	}
	if capacity_ratio <= 0 {
		capacity_ratio = 1.0
	}
	return CoolingStage{
		capacity_ratio: capacity_ratio,
		shr_rated:      shr_rated,
		cap_ft:         cap_ft,
		cfm_per_ton:    cfm_per_ton,
	}, nil
}

// Cooling performance of a compressor system
type CoolingPerformance struct {
	stages []CoolingStage
}

func NewCoolingPerformance(stages []CoolingStage) (*CoolingPerformance, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: cooling performance needs at least one stage", ErrMissingData)
	}
	return &CoolingPerformance{stages: stages}, nil
}

/*
Speed used for sizing.

	Returns:
		index of the stage whose capacity ratio is closest to 1.0

	Notes:
		Ties go to the higher speed.
*/
func (p *CoolingPerformance) get_sizing_speed() int {
	speed := 0
	best := -1.0
	for i, st := range p.stages {
		d := st.capacity_ratio - 1.0
		if d < 0 {
			d = -d
		}
		if best < 0 || d <= best {
			best = d
			speed = i
		}
	}
	return speed
}

// Ratio of the maximum rated capacity to the design load by number of speeds
func (p *CoolingPerformance) get_oversize_limit() float64 {
	switch n := len(p.stages); {
	case n <= 1:
		return 1.15
	case n == 2:
		return 1.20
	}
	return 1.30
}

//---------------------------------------------------------------------------------------------------//

// Equipment is one of Furnace, Boiler, ElectricResistance, CentralAC,
// AirSourceHP, MiniSplitHP, GroundSourceHP or RoomAC.
type Equipment interface {
	Name() string
	equipment()
}

type EquipmentBase struct {
	id   int    // id
	name string // name
}

func (e *EquipmentBase) Name() string {
	return e.name
}

func (e *EquipmentBase) equipment() {}

type Furnace struct {
	EquipmentBase
	t_supply   float64  // supply air temperature, F
	fixed_heat *float64 // fixed heating capacity, Btu/hr
}

type Boiler struct {
	EquipmentBase
	fixed_heat *float64 // fixed heating capacity, Btu/hr
}

type ElectricResistance struct {
	EquipmentBase
	fixed_heat *float64 // fixed heating capacity, Btu/hr
}

type CentralAC struct {
	EquipmentBase
	cooling    *CoolingPerformance
	fixed_cool *float64 // fixed cooling capacity, Btu/hr
}

type RoomAC struct {
	EquipmentBase
	cooling    *CoolingPerformance
	fixed_cool *float64 // fixed cooling capacity, Btu/hr
}

// Common part of the heat pumps
type HeatPump struct {
	cooling       *CoolingPerformance
	n_heat_stages int      // number of heating speeds
	t_supply      float64  // heating supply air temperature, F
	ducted        bool     // delivers air through the duct system
	fixed_heat    *float64 // fixed heating capacity, Btu/hr
	fixed_cool    *float64 // fixed cooling capacity, Btu/hr
	fixed_supp    *float64 // fixed supplemental heating capacity, Btu/hr
}

type AirSourceHP struct {
	EquipmentBase
	HeatPump
}

type MiniSplitHP struct {
	EquipmentBase
	HeatPump
}

type GroundSourceHP struct {
	EquipmentBase
	HeatPump
	t_entering_fluid float64 // entering fluid temperature at cooling design, F
}

// heats reports whether the equipment provides heating.
func heats(e Equipment) bool {
	switch e.(type) {
	case *Furnace, *Boiler, *ElectricResistance, *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		return true
	}
	return false
}

// cools reports whether the equipment provides cooling.
func cools(e Equipment) bool {
	switch e.(type) {
	case *CentralAC, *RoomAC, *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		return true
	}
	return false
}

// heat_pump returns the heat pump part of a heat pump, nil otherwise.
func heat_pump(e Equipment) *HeatPump {
	switch eq := e.(type) {
	case *AirSourceHP:
		return &eq.HeatPump
	case *MiniSplitHP:
		return &eq.HeatPump
	case *GroundSourceHP:
		return &eq.HeatPump
	}
	return nil
}

// Heating and cooling systems of a unit
type UnitEquipment struct {
	heating Equipment // nil if none
	cooling Equipment // nil if none
}

/*
Assign equipment to the heating and cooling roles of a unit.

	Args:
		es: equipment of the unit

	Returns:
		heating and cooling systems

	Notes:
		A heat pump fills both roles. More than one system per role is not
		supported.
*/
func NewUnitEquipment(es []Equipment) (*UnitEquipment, error) {
	ue := &UnitEquipment{}
	for _, e := range es {
		if heats(e) {
			if ue.heating != nil {
				return nil, fmt.Errorf("%w: heating systems %q and %q", ErrMultipleEquipment, ue.heating.Name(), e.Name())
			}
			ue.heating = e
		}
		if cools(e) {
			if ue.cooling != nil {
				return nil, fmt.Errorf("%w: cooling systems %q and %q", ErrMultipleEquipment, ue.cooling.Name(), e.Name())
			}
			ue.cooling = e
		}
	}
	return ue, nil
}

// Heating supply air temperature, F, zero without forced-air heating.
func (ue *UnitEquipment) heat_supply_temp() float64 {
	switch eq := ue.heating.(type) {
	case *Furnace:
		return eq.t_supply
	case *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		if hp := heat_pump(eq); hp.ducted {
			return hp.t_supply
		}
	}
	return 0.0
}

// is_heat_ducted reports whether heating is delivered through the duct system.
func (ue *UnitEquipment) is_heat_ducted() bool {
	return ue.heat_supply_temp() > 0
}

// is_cool_ducted reports whether cooling is delivered through the duct system.
func (ue *UnitEquipment) is_cool_ducted() bool {
	switch eq := ue.cooling.(type) {
	case *CentralAC:
		return true
	case *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		return heat_pump(eq).ducted
	}
	return false
}

// cooling_performance returns the cooling performance of the cooling system, nil if none.
func (ue *UnitEquipment) cooling_performance() *CoolingPerformance {
	switch eq := ue.cooling.(type) {
	case *CentralAC:
		return eq.cooling
	case *RoomAC:
		return eq.cooling
	case *AirSourceHP, *MiniSplitHP, *GroundSourceHP:
		return heat_pump(eq).cooling
	}
	return nil
}

//---------------------------------------------------------------------------------------------------//

var unsupported_equipment_types = map[string]bool{
	"wall_furnace":       true,
	"floor_furnace":      true,
	"stove":              true,
	"fireplace":          true,
	"portable_heater":    true,
	"evaporative_cooler": true,
}

/*
Create equipment from its JSON description.

	Args:
		eq: equipment description

	Returns:
		equipment, or nil with a diagnostic for types that are not sized
*/
func CreateEquipment(eq *EquipmentJson) (Equipment, *Diagnostic, error) {
	base := EquipmentBase{id: eq.Id, name: eq.Name}
	prop := &eq.Property

	wrap := func(err error) error {
		return fmt.Errorf("equipment %q: %w", eq.Name, err)
	}

	switch eq.EquipmentType {
	case "furnace":
		if prop.SupplyAirTemp <= 0 {
			return nil, nil, wrap(fmt.Errorf("%w: supply air temperature", ErrMissingData))
		}
		return &Furnace{EquipmentBase: base, t_supply: prop.SupplyAirTemp, fixed_heat: prop.FixedHeatingCapacity}, nil, nil

	case "boiler":
		return &Boiler{EquipmentBase: base, fixed_heat: prop.FixedHeatingCapacity}, nil, nil

	case "electric_resistance":
		return &ElectricResistance{EquipmentBase: base, fixed_heat: prop.FixedHeatingCapacity}, nil, nil

	case "central_air_conditioner":
		perf, err := create_cooling_performance(prop.CoolingStages)
		if err != nil {
			return nil, nil, wrap(err)
		}
		return &CentralAC{EquipmentBase: base, cooling: perf, fixed_cool: prop.FixedCoolingCapacity}, nil, nil

	case "room_air_conditioner":
		perf, err := create_cooling_performance(prop.CoolingStages)
		if err != nil {
			return nil, nil, wrap(err)
		}
		if perf.stages[perf.get_sizing_speed()].cfm_per_ton <= 0 {
			return nil, nil, wrap(fmt.Errorf("%w: rated cfm/ton", ErrMissingData))
		}
		return &RoomAC{EquipmentBase: base, cooling: perf, fixed_cool: prop.FixedCoolingCapacity}, nil, nil

	case "air_source_heat_pump", "mini_split_heat_pump", "ground_source_heat_pump":
		hp, err := create_heat_pump(eq.EquipmentType, prop)
		if err != nil {
			return nil, nil, wrap(err)
		}
		switch eq.EquipmentType {
		case "air_source_heat_pump":
			return &AirSourceHP{EquipmentBase: base, HeatPump: *hp}, nil, nil
		case "mini_split_heat_pump":
			return &MiniSplitHP{EquipmentBase: base, HeatPump: *hp}, nil, nil
		}
		if prop.EnteringFluidTemp == nil {
			return nil, nil, wrap(fmt.Errorf("%w: entering fluid temperature", ErrMissingData))
		}
		return &GroundSourceHP{EquipmentBase: base, HeatPump: *hp, t_entering_fluid: *prop.EnteringFluidTemp}, nil, nil
	}

	var d Diagnostic
	if unsupported_equipment_types[eq.EquipmentType] {
		d = newDiagnostic(DiagUnsupportedEquipment, eq.Name, "%s is not sized and is left out", eq.EquipmentType)
	} else {
		d = newDiagnostic(DiagUnsupportedEquipment, eq.Name, "unknown equipment type %q is left out", eq.EquipmentType)
	}
	return nil, &d, nil
}

func create_cooling_performance(ds []CoolingStageJson) (*CoolingPerformance, error) {
	stages := make([]CoolingStage, len(ds))
	for i, d := range ds {
		cap_ft, err := NewBiquadratic(d.CapFT)
		if err != nil {
			return nil, err
		}
		stages[i], err = NewCoolingStage(d.CapacityRatio, d.RatedSHR, cap_ft, d.RatedCfmPerTon)
		if err != nil {
			return nil, err
		}
	}
	return NewCoolingPerformance(stages)
}

func create_heat_pump(equipment_type string, prop *EquipmentPropertyJson) (*HeatPump, error) {
	perf, err := create_cooling_performance(prop.CoolingStages)
	if err != nil {
		return nil, err
	}

	// mini-splits are ductless unless stated otherwise
	ducted := equipment_type != "mini_split_heat_pump"
	if prop.Ducted != nil {
		ducted = *prop.Ducted
	}
	if ducted && prop.SupplyAirTemp <= 0 {
		return nil, fmt.Errorf("%w: supply air temperature", ErrMissingData)
	}

	n_heat_stages := prop.HeatingStages
	if n_heat_stages == 0 {
		n_heat_stages = 1
	}

	return &HeatPump{
		cooling:       perf,
		n_heat_stages: n_heat_stages,
		t_supply:      prop.SupplyAirTemp,
		ducted:        ducted,
		fixed_heat:    prop.FixedHeatingCapacity,
		fixed_cool:    prop.FixedCoolingCapacity,
		fixed_supp:    prop.FixedSupplementalCapacity,
	}, nil
}
