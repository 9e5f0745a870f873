package hvac_sizing

// **** Design temperatures of spaces adjacent to conditioned zones ****

import (
	"fmt"
)

// Heating, cooling and dehumidification design temperatures of a space, F
type DesignTemps struct {
	Heat  float64
	Cool  float64
	Dehum float64
}

/*
Design temperatures by space type.

Notes:
	Built once per unit and read by every load calculation. Use With to
	derive a copy with one space replaced.
*/
type ZoneDesignTemperatures struct {
	temps map[SpaceType]DesignTemps
}

const (
	garage_heat_rise         = 13.0 // F
	garage_cool_rise         = 7.0  // F
	garage_dehum_rise        = 7.0  // F
	attic_unvented_cool_rise = 40.0 // F
)

/*
Assign design temperatures to every space referenced by the unit.

	Args:
		site: site design parameters
		spaces: space types referenced by surfaces and duct locations
		buffers: buffer space descriptions by type

	Returns:
		design temperatures of conditioned space, outdoors and the referenced spaces

	Notes:
		Basements and crawlspaces are the UA-weighted mean of the conditioned
		setpoint, the outdoor design dry-bulb and the ground temperature.
*/
func NewZoneDesignTemperatures(
	site *SiteDesignParameters,
	spaces []SpaceType,
	buffers map[SpaceType]*BufferSpace,
) (*ZoneDesignTemperatures, error) {
	temps := map[SpaceType]DesignTemps{
		SpaceConditioned: {Heat: site.HeatSetpoint, Cool: site.CoolSetpoint, Dehum: site.CoolSetpoint},
		SpaceOutdoors:    outdoor_design_temps(site),
	}

	for _, st := range spaces {
		if _, ok := temps[st]; ok {
			continue
		}
		t, err := get_space_design_temps(site, st, buffers[st])
		if err != nil {
			return nil, err
		}
		temps[st] = t
	}

	return &ZoneDesignTemperatures{temps: temps}, nil
}

func outdoor_design_temps(site *SiteDesignParameters) DesignTemps {
	return DesignTemps{Heat: site.HeatingDrybulb, Cool: site.CoolingDrybulb, Dehum: site.DehumidDrybulb}
}

func get_space_design_temps(site *SiteDesignParameters, st SpaceType, buffer *BufferSpace) (DesignTemps, error) {
	out := outdoor_design_temps(site)

	switch st {
	case SpaceConditioned:
		return DesignTemps{Heat: site.HeatSetpoint, Cool: site.CoolSetpoint, Dehum: site.CoolSetpoint}, nil
	case SpaceOutdoors, SpaceAtticVented, SpacePierBeam:
		return out, nil
	case SpaceGround:
		return DesignTemps{Heat: site.GroundHeatingTemp, Cool: site.GroundCoolingTemp, Dehum: site.GroundCoolingTemp}, nil
	case SpaceGarage:
		return DesignTemps{
			Heat:  out.Heat + garage_heat_rise,
			Cool:  out.Cool + garage_cool_rise,
			Dehum: out.Dehum + garage_dehum_rise,
		}, nil
	case SpaceAtticUnvented:
		return DesignTemps{Heat: out.Heat, Cool: out.Cool + attic_unvented_cool_rise, Dehum: out.Dehum}, nil
	case SpaceBasementUnconditioned, SpaceCrawlspaceVented, SpaceCrawlspaceUnvented:
		return get_ua_weighted_temps(site, st, buffer)
	}

	return DesignTemps{}, fmt.Errorf("%w: %d", ErrUnknownSpace, int(st))
}

/*
UA-weighted design temperatures of a below-floor buffer space.

	Args:
		site: site design parameters
		st: space type
		buffer: UA values of the space

	Returns:
		design temperatures, F
*/
func get_ua_weighted_temps(site *SiteDesignParameters, st SpaceType, buffer *BufferSpace) (DesignTemps, error) {
	if buffer == nil || buffer.ua_total() <= 0 {
		return DesignTemps{}, &LoadCalcError{
			Surface: st.String(),
			Err:     fmt.Errorf("%w: UA values of %s are required for its design temperature", ErrMissingData, st),
		}
	}

	ua := buffer.ua_total()
	weigh := func(t_cond, t_out, t_gnd float64) float64 {
		return (buffer.ua_conditioned*t_cond + buffer.ua_outdoors*t_out + buffer.ua_ground*t_gnd) / ua
	}

	return DesignTemps{
		Heat:  weigh(site.HeatSetpoint, site.HeatingDrybulb, site.GroundHeatingTemp),
		Cool:  weigh(site.CoolSetpoint, site.CoolingDrybulb, site.GroundCoolingTemp),
		Dehum: weigh(site.CoolSetpoint, site.DehumidDrybulb, site.GroundCoolingTemp),
	}, nil
}

// Get returns the design temperatures of a space.
func (z *ZoneDesignTemperatures) Get(st SpaceType) (DesignTemps, error) {
	t, ok := z.temps[st]
	if !ok {
		return DesignTemps{}, fmt.Errorf("%w: no design temperature for %s", ErrUnknownSpace, st)
	}
	return t, nil
}

// With returns a copy in which the design temperatures of one space are replaced.
func (z *ZoneDesignTemperatures) With(st SpaceType, t DesignTemps) *ZoneDesignTemperatures {
	temps := make(map[SpaceType]DesignTemps, len(z.temps)+1)
	for k, v := range z.temps {
		temps[k] = v
	}
	temps[st] = t
	return &ZoneDesignTemperatures{temps: temps}
}
