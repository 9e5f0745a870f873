package hvac_sizing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Conditioned thermal zone
type Zone struct {
	id       int           // id
	name     string        // name
	a_f      float64       // floor area, ft2
	v        float64       // volume, ft3
	surfaces []*Surface    // envelope surfaces
	gains    []*GainSource // internal gain sources, occupants included
}

func NewZone(id int, name string, a_f float64, v float64, surfaces []*Surface, gains []*GainSource) *Zone {
	return &Zone{
		id:       id,
		name:     name,
		a_f:      a_f,
		v:        v,
		surfaces: surfaces,
		gains:    gains,
	}
}

func (z *Zone) Name() string {
	return z.name
}

// windows returns the windows of the zone that face outdoors.
func (z *Zone) windows() []*Surface {
	var ws []*Surface
	for _, s := range z.surfaces {
		if s.kind == SurfaceWindow && s.adjacent == SpaceOutdoors {
			ws = append(ws, s)
		}
	}
	return ws
}

// Conditioned zones of a unit
type Zones struct {
	n_zn   int           // number of zones
	zns    []*Zone       // zones, [I]
	a_f_is *mat.VecDense // floor area of zone i, ft2, [I]
	v_is   *mat.VecDense // volume of zone i, ft3, [I]
}

func NewZones(zns []*Zone) (*Zones, error) {
	n_zn := len(zns)
	if n_zn == 0 {
		return nil, fmt.Errorf("%w: a unit needs at least one conditioned zone", ErrMissingData)
	}

	a_f_is := make([]float64, n_zn)
	v_is := make([]float64, n_zn)
	for i, z := range zns {
		if z.v <= 0 {
			return nil, &LoadCalcError{Zone: z.name, Err: fmt.Errorf("%w: zone volume must be positive", ErrInvalidInput)}
		}
		a_f_is[i] = z.a_f
		v_is[i] = z.v
	}

	return &Zones{
		n_zn:   n_zn,
		zns:    zns,
		a_f_is: mat.NewVecDense(n_zn, a_f_is),
		v_is:   mat.NewVecDense(n_zn, v_is),
	}, nil
}

// Conditioned floor area, ft2
func (zs *Zones) total_floor_area() float64 {
	return mat.Sum(zs.a_f_is)
}

// Conditioned volume, ft3
func (zs *Zones) total_volume() float64 {
	return mat.Sum(zs.v_is)
}

/*
Share of each zone in the conditioned volume.

	Returns:
		volume fraction of zone i, -, [I]

	Notes:
		Unit infiltration is distributed to zones by volume.
*/
func (zs *Zones) get_volume_fraction_is() *mat.VecDense {
	f_is := mat.NewVecDense(zs.n_zn, nil)
	f_is.ScaleVec(1.0/zs.total_volume(), zs.v_is)
	return f_is
}

// space_types lists the adjacent spaces referenced by the zones' surfaces.
func (zs *Zones) space_types() []SpaceType {
	seen := map[SpaceType]bool{}
	var sts []SpaceType
	for _, z := range zs.zns {
		for _, s := range z.surfaces {
			if !seen[s.adjacent] {
				seen[s.adjacent] = true
				sts = append(sts, s.adjacent)
			}
		}
	}
	return sts
}
