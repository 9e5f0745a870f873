package hvac_sizing

// **** Building-level parameters for infiltration ****
// ACCA Manual J 8th edition, Section 5 / ASHRAE HOF 2009 Ch.16 "Ventilation and Infiltration"

import (
	"fmt"
	"math"
)

// Infiltration input method
type InfiltrationMethod int

const (
	InfiltrationACH50       InfiltrationMethod = iota // blower door air changes at 50 Pa
	InfiltrationConstantACH                           // natural air changes per hour
)

func (m InfiltrationMethod) String() string {
	return [...]string{"ach50", "constant_ach"}[m]
}

func InfiltrationMethodFromString(s string) (InfiltrationMethod, error) {
	m, ok := map[string]InfiltrationMethod{
		"ach50":        InfiltrationACH50,
		"constant_ach": InfiltrationConstantACH,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: infiltration method %q", ErrInvalidInput, s)
	}
	return m, nil
}

//---------------------------------------------------------------------------------------------------//

type Building struct {
	n_stories           int                // number of stories above grade
	height              float64            // building height, ft
	exposed_wall_ratio  float64            // ratio of exterior wall area exposed to wind, -
	neighbor_distance   *float64           // distance to the nearest neighbor building, ft, nil if none
	shelter_class       int                // shelter class 1..5
	infiltration_method InfiltrationMethod // infiltration method
	ach50               float64            // air changes per hour at 50 Pa, 1/h
	ach_natural         float64            // natural air changes per hour, 1/h
}

func NewBuilding(
	n_stories int,
	height float64,
	exposed_wall_ratio float64,
	neighbor_distance *float64,
	shelter_class int,
	infiltration_method InfiltrationMethod,
	ach50 float64,
	ach_natural float64,
) (*Building, error) {
	if n_stories < 1 {
		return nil, fmt.Errorf("%w: number of stories %d", ErrInvalidInput, n_stories)
	}

	// Derive the shelter class when not given explicitly.
	if shelter_class == 0 {
		shelter_class = get_shelter_class(exposed_wall_ratio, neighbor_distance, height)
	} else if shelter_class < 1 || shelter_class > 5 {
		return nil, fmt.Errorf("%w: shelter class %d", ErrInvalidInput, shelter_class)
	}

	switch infiltration_method {
	case InfiltrationACH50:
		if ach50 < 0 {
			return nil, fmt.Errorf("%w: ach50 %g", ErrInvalidInput, ach50)
		}
	case InfiltrationConstantACH:
		if ach_natural < 0 {
			return nil, fmt.Errorf("%w: natural ach %g", ErrInvalidInput, ach_natural)
		}
	}

	return &Building{
		n_stories:           n_stories,
		height:              height,
		exposed_wall_ratio:  exposed_wall_ratio,
		neighbor_distance:   neighbor_distance,
		shelter_class:       shelter_class,
		infiltration_method: infiltration_method,
		ach50:               ach50,
		ach_natural:         ach_natural,
	}, nil
}

func CreateBuilding(d *BuildingJson) (*Building, error) {
	method, err := InfiltrationMethodFromString(d.Infiltration.Method)
	if err != nil {
		return nil, err
	}

	return NewBuilding(
		d.Stories,
		d.Height,
		d.ExposedWallRatio,
		d.NeighborDistance,
		d.ShelterClass,
		method,
		d.Infiltration.ACH50,
		d.Infiltration.ConstantACH,
	)
}

func (b *Building) ShelterClass() int {
	return b.shelter_class
}

/*
Shelter class from the wind exposure of the building.

	Args:
		exposed_wall_ratio: ratio of exterior wall area exposed to wind, -
		neighbor_distance: distance to the nearest neighbor, ft (nil if none)
		height: building height, ft

	Returns:
		shelter class 1..5

	Notes:
		Neighbors farther away than the building height do not shelter it.
*/
func get_shelter_class(exposed_wall_ratio float64, neighbor_distance *float64, height float64) int {
	if exposed_wall_ratio > 0.5 {
		if neighbor_distance == nil {
			return 2
		} else if *neighbor_distance > height {
			return 3
		}
		return 4
	}

	if neighbor_distance == nil {
		if exposed_wall_ratio > 0.25 {
			return 2
		}
		return 3
	} else if *neighbor_distance > height {
		return 4
	}
	return 5
}

/*
Stack coefficient.

	Returns:
		stack coefficient, cfm^2/(in^4 F)

	Notes:
		ASHRAE HOF 2009 Ch.16 Table 4, scaled by (stories)^0.4
*/
func (b *Building) get_c_s() float64 {
	return 0.015 * math.Pow(float64(b.n_stories), 0.4)
}

/*
Wind coefficient.

	Returns:
		wind coefficient, cfm^2/(in^4 mph^2)

	Notes:
		ASHRAE HOF 2009 Ch.16 Table 5, scaled by (stories)^0.4
*/
func (b *Building) get_c_w() float64 {
	return wind_coefficient_shelter[b.shelter_class-1] * math.Pow(float64(b.n_stories), 0.4)
}

/*
Effective leakage area from the blower door result.

	Args:
		v_cond: conditioned volume, ft3
		a_cfa: conditioned floor area, ft2

	Returns:
		effective leakage area at 4 Pa, in2

	Notes:
		Specific leakage area is derived with a flow exponent of 0.65.
*/
func (b *Building) get_ela(v_cond float64, a_cfa float64) float64 {
	if a_cfa <= 0 {
		return 0.0
	}
	n_i := 0.65
	sla := b.ach50 * 0.283316 * math.Pow(4.0, n_i) * v_cond / (a_cfa * 144.0 * math.Pow(50.0, n_i) * 60.0)
	return sla * a_cfa * 144.0
}
