package hvac_sizing

// **** Envelope surfaces ****
// ACCA Manual J 8th edition, Tables 4A (U-factors), 4B-4C (CLTD), Appendix 3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Surface category
type SurfaceKind int

const (
	SurfaceWindow          SurfaceKind = iota // window or glass door
	SurfaceDoor                               // opaque door
	SurfaceWall                               // above-grade wall
	SurfaceRoof                               // roof or ceiling
	SurfaceFloor                              // framed floor
	SurfaceFoundationWall                     // below-grade wall
	SurfaceSlab                               // slab on grade
	SurfaceBelowGradeFloor                    // basement floor
)

func (k SurfaceKind) String() string {
	return [...]string{"window", "door", "wall", "roof", "floor", "foundation_wall", "slab", "below_grade_floor"}[k]
}

func SurfaceKindFromString(s string) (SurfaceKind, error) {
	k, ok := map[string]SurfaceKind{
		"window":            SurfaceWindow,
		"door":              SurfaceDoor,
		"wall":              SurfaceWall,
		"roof":              SurfaceRoof,
		"ceiling":           SurfaceRoof,
		"floor":             SurfaceFloor,
		"foundation_wall":   SurfaceFoundationWall,
		"slab":              SurfaceSlab,
		"below_grade_floor": SurfaceBelowGradeFloor,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: surface type %q", ErrInvalidInput, s)
	}
	return k, nil
}

//---------------------------------------------------------------------------------------------------//

// Exterior finish color
type Color int

const (
	ColorLight      Color = iota // light
	ColorMedium                  // medium
	ColorDark                    // dark
	ColorReflective              // white or reflective roof
)

func (c Color) String() string {
	return [...]string{"light", "medium", "dark", "reflective"}[c]
}

func ColorFromString(s string) Color {
	c, ok := map[string]Color{
		"light":      ColorLight,
		"medium":     ColorMedium,
		"dark":       ColorDark,
		"reflective": ColorReflective,
		"white":      ColorReflective,
	}[s]
	if !ok {
		return ColorMedium
	}
	return c
}

// Roofing material
type RoofMaterial int

const (
	RoofAsphaltShingles RoofMaterial = iota // asphalt or fiberglass shingles
	RoofWoodShakes                          // wood shakes
	RoofTile                                // clay or concrete tile
	RoofMetal                               // metal
	RoofMembrane                            // single-ply or built-up membrane
)

func (m RoofMaterial) String() string {
	return [...]string{"asphalt_shingles", "wood_shakes", "tile", "metal", "membrane"}[m]
}

func RoofMaterialFromString(s string) RoofMaterial {
	m, ok := map[string]RoofMaterial{
		"asphalt_shingles": RoofAsphaltShingles,
		"wood_shakes":      RoofWoodShakes,
		"tile":             RoofTile,
		"metal":            RoofMetal,
		"membrane":         RoofMembrane,
	}[s]
	if !ok {
		return RoofAsphaltShingles
	}
	return m
}

//---------------------------------------------------------------------------------------------------//

// Horizontal overhang above a window
type Overhang struct {
	depth  float64 // projection from the wall, ft
	offset float64 // vertical distance from the overhang to the window head, ft
	height float64 // window height, ft
}

func NewOverhang(depth float64, offset float64, height float64) *Overhang {
	return &Overhang{depth: depth, offset: offset, height: height}
}

type Surface struct {
	name           string
	kind           SurfaceKind
	adjacent       SpaceType
	area           float64   // ft2
	azimuth        float64   // deg, north 0 clockwise
	u_value        float64   // Btu/(hr ft2 F), zero when resolved from layers
	layers_r       []float64 // layer R-values, hr ft2 F/Btu
	cavity_r       float64   // cavity insulation R-value, hr ft2 F/Btu
	rigid_r        float64   // continuous rigid insulation R-value, hr ft2 F/Btu
	finish_density float64   // interior finish density, lb/ft3
	color          Color
	roof_material  RoofMaterial
	shgc           float64 // solar heat gain coefficient, -
	interior_shade float64 // summer interior shade coefficient, -
	overhang       *Overhang
	perimeter      float64 // exposed slab perimeter, ft
	f_factor       float64 // slab edge F-factor, Btu/(hr ft F)
}

/*
Create a surface from its JSON description.

	Args:
		d: surface description

	Returns:
		surface

	Notes:
		Surfaces without an adjacent space face outdoors.
*/
func CreateSurface(d *SurfaceJson) (*Surface, error) {
	kind, err := SurfaceKindFromString(d.SurfaceType)
	if err != nil {
		return nil, &LoadCalcError{Surface: d.Name, Err: err}
	}

	adjacent := SpaceOutdoors
	if d.Adjacent != "" {
		adjacent, err = SpaceTypeFromString(d.Adjacent)
		if err != nil {
			return nil, &LoadCalcError{Surface: d.Name, Err: err}
		}
	}

	if d.Area < 0 {
		return nil, &LoadCalcError{Surface: d.Name, Err: fmt.Errorf("%w: area %g", ErrInvalidInput, d.Area)}
	}

	layers_r := make([]float64, len(d.Layers))
	for i, l := range d.Layers {
		layers_r[i] = l.ThermalResistance
	}

	var overhang *Overhang
	if o := d.Overhang; o != nil && o.Depth > 0 {
		overhang = NewOverhang(o.Depth, o.Offset, o.WindowHeight)
	}

	return &Surface{
		name:           d.Name,
		kind:           kind,
		adjacent:       adjacent,
		area:           d.Area,
		azimuth:        d.Azimuth,
		u_value:        d.UValue,
		layers_r:       layers_r,
		cavity_r:       d.CavityR,
		rigid_r:        d.RigidR,
		finish_density: d.FinishDensity,
		color:          ColorFromString(d.Color),
		roof_material:  RoofMaterialFromString(d.RoofMaterial),
		shgc:           d.SHGC,
		interior_shade: d.InteriorShade,
		overhang:       overhang,
		perimeter:      d.Perimeter,
		f_factor:       d.FFactor,
	}, nil
}

func (s *Surface) Name() string {
	return s.name
}

func (s *Surface) Kind() SurfaceKind {
	return s.kind
}

func (s *Surface) Adjacent() SpaceType {
	return s.adjacent
}

/*
U-factor of the surface.

	Returns:
		U-factor, Btu/(hr ft2 F)

	Notes:
		An explicit U-factor wins; otherwise the layers are summed in series.
*/
func (s *Surface) get_u() (float64, error) {
	if s.u_value > 0 {
		return s.u_value, nil
	}
	if r := floats.Sum(s.layers_r); r > 0 {
		return 1.0 / r, nil
	}
	return 0.0, &LoadCalcError{
		Surface: s.name,
		Err:     fmt.Errorf("%w: %s has neither a U-factor nor a construction", ErrMissingData, s.kind),
	}
}

func (s *Surface) get_ua() (float64, error) {
	u, err := s.get_u()
	if err != nil {
		return 0.0, err
	}
	return u * s.area, nil
}

/*
Wall group of the construction.

	Args:
		cavity_r: cavity insulation R-value, hr ft2 F/Btu
		rigid_r: rigid insulation R-value, hr ft2 F/Btu
		finish_density: interior finish density, lb/ft3

	Returns:
		wall group 1 (A) .. 11 (K)

	Notes:
		Heavier and better insulated walls move to later groups, which
		have a smaller and more delayed cooling load temperature difference.
*/
func get_wall_group(cavity_r float64, rigid_r float64, finish_density float64) int {
	group := 1
	if cavity_r >= 19 {
		group = 3
	} else if cavity_r >= 11 {
		group = 2
	}

	if rigid_r > 7 {
		if cavity_r < 2 {
			group += 4
		} else {
			group += 6
		}
	} else if rigid_r > 1 {
		if cavity_r < 2 {
			group += 2
		} else {
			group += 4
		}
	}

	if finish_density > 100 {
		group += 2
	} else if finish_density > 50 {
		group += 1
	}

	if group > 11 {
		group = 11
	}
	return group
}

func get_wall_color_multiplier(c Color) float64 {
	switch c {
	case ColorDark:
		return 1.0
	case ColorMedium:
		return 0.83
	}
	return 0.65
}

// Walls facing within 22.5 deg of north are treated as shaded.
func is_north_facing(azimuth float64) bool {
	az := normalize_azimuth(azimuth)
	return az <= 22.5 || az >= 337.5
}

func normalize_azimuth(azimuth float64) float64 {
	az := math.Mod(azimuth, 360.0)
	if az < 0 {
		az += 360.0
	}
	return az
}

/*
Cooling load temperature difference of an exterior wall.

	Args:
		site: site design parameters

	Returns:
		CLTD, F

	Notes:
		Base values are at CTD = 20 F and a medium daily range.
*/
func (s *Surface) get_cltd_wall(site *SiteDesignParameters) float64 {
	dr := site.daily_range_index()
	i := get_wall_group(s.cavity_r, s.rigid_r, s.finish_density) - 1

	var cltd float64
	if is_north_facing(s.azimuth) {
		cltd = cltd_base_shade[i]
	} else {
		cltd = cltd_base_sun[i]
	}
	cltd *= get_wall_color_multiplier(s.color)

	if site.CTD >= 10 {
		cltd += (site.CTD - 20.0) + daily_range_temp_adjust[dr]
	} else {
		corr := site.CTD - wall_low_ctd_offset[dr] - daily_range_temp_adjust[dr]
		cltd = math.Max(cltd+corr, 0.0)
	}
	return cltd
}

/*
Cooling load temperature difference of an exterior roof.

	Args:
		site: site design parameters
		u: U-factor of the roof assembly, Btu/(hr ft2 F)

	Returns:
		CLTD, F
*/
func (s *Surface) get_cltd_roof(site *SiteDesignParameters, u float64) float64 {
	r_total := 1.0 / u

	i := len(roof_cltd_r_bins)
	for j, r := range roof_cltd_r_bins {
		if r_total <= r {
			i = j
			break
		}
	}
	cltd := roof_cltd_base[i]

	switch s.color {
	case ColorDark:
		if s.roof_material == RoofTile || s.roof_material == RoofWoodShakes {
			cltd *= 0.83
		}
	case ColorMedium, ColorLight:
		if s.roof_material == RoofTile {
			cltd *= 0.65
		} else {
			cltd *= 0.83
		}
	case ColorReflective:
		if s.roof_material == RoofAsphaltShingles || s.roof_material == RoofWoodShakes {
			cltd *= 0.83
		} else {
			cltd *= 0.65
		}
	}

	return cltd + (site.CTD - 20.0) + daily_range_temp_adjust[site.daily_range_index()]
}

//---------------------------------------------------------------------------------------------------//

// Heating, cooling and dehumidification sensible loads of one surface, Btu/hr
type surfaceLoads struct {
	heat  float64
	cool  float64
	dehum float64
}

/*
Conduction loads through a surface between conditioned space and a buffer space.

	Args:
		ua: UA of the surface, Btu/(hr F)
		site: site design parameters
		t: design temperatures of the adjacent space, F

	Returns:
		loads, Btu/hr
*/
func get_interzonal_loads(ua float64, site *SiteDesignParameters, t DesignTemps) surfaceLoads {
	return surfaceLoads{
		heat:  ua * (site.HeatSetpoint - t.Heat),
		cool:  ua * (t.Cool - site.CoolSetpoint),
		dehum: ua * (t.Dehum - site.CoolSetpoint),
	}
}

/*
Design loads of an opaque surface.

	Args:
		site: site design parameters
		temps: design temperatures of adjacent spaces

	Returns:
		loads, Btu/hr
*/
func (s *Surface) get_opaque_loads(site *SiteDesignParameters, temps *ZoneDesignTemperatures) (surfaceLoads, error) {
	dr := site.daily_range_index()

	switch s.kind {
	case SurfaceFoundationWall:
		// Heating only.
		ua, err := s.get_ua()
		if err != nil {
			return surfaceLoads{}, err
		}
		return surfaceLoads{heat: ua * site.HTD}, nil

	case SurfaceSlab:
		// Heating only.
		if s.f_factor > 0 {
			return surfaceLoads{heat: s.f_factor * s.perimeter * site.HTD}, nil
		}
		ua, err := s.get_ua()
		if err != nil {
			return surfaceLoads{}, err
		}
		return surfaceLoads{heat: ua * site.HTD}, nil

	case SurfaceBelowGradeFloor:
		// Heating only.
		ua, err := s.get_ua()
		if err != nil {
			return surfaceLoads{}, err
		}
		return surfaceLoads{heat: ua * (site.HeatSetpoint - site.GroundHeatingTemp)}, nil
	}

	u, err := s.get_u()
	if err != nil {
		return surfaceLoads{}, err
	}
	ua := u * s.area

	if s.adjacent == SpaceGround {
		if s.kind == SurfaceFloor {
			return surfaceLoads{heat: ua * (site.HeatSetpoint - site.GroundHeatingTemp)}, nil
		}
		return surfaceLoads{heat: ua * site.HTD}, nil
	}

	if s.adjacent != SpaceOutdoors {
		t, err := temps.Get(s.adjacent)
		if err != nil {
			return surfaceLoads{}, &LoadCalcError{Surface: s.name, Err: err}
		}
		return get_interzonal_loads(ua, site, t), nil
	}

	var cltd float64
	switch s.kind {
	case SurfaceDoor:
		cltd = site.CTD + door_cltd_offset[dr]
	case SurfaceWall:
		cltd = s.get_cltd_wall(site)
	case SurfaceRoof:
		cltd = s.get_cltd_roof(site, u)
	case SurfaceFloor:
		cltd = site.CTD - 5.0 + daily_range_temp_adjust[dr]
	default:
		return surfaceLoads{}, &LoadCalcError{Surface: s.name, Err: fmt.Errorf("%w: %s is not an opaque surface", ErrInvalidInput, s.kind)}
	}

	return surfaceLoads{
		heat:  ua * site.HTD,
		cool:  ua * cltd,
		dehum: ua * site.DTD,
	}, nil
}
