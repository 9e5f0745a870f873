package hvac_sizing

// **** Zone loads ****

import (
	"errors"
	"math"
)

// Component loads of a zone for one design condition, Btu/hr
type LoadSet struct {
	Windows      float64
	Doors        float64
	Walls        float64
	Roofs        float64
	Floors       float64
	InfilSens    float64
	InfilLat     float64
	IntGainsSens float64
	IntGainsLat  float64
}

// Sens returns the sensible total of the set, Btu/hr.
func (l LoadSet) Sens() float64 {
	return l.Windows + l.Doors + l.Walls + l.Roofs + l.Floors + l.InfilSens + l.IntGainsSens
}

// Lat returns the latent total of the set, Btu/hr.
func (l LoadSet) Lat() float64 {
	return l.InfilLat + l.IntGainsLat
}

// Loads of one conditioned zone
type ZoneLoadComponents struct {
	ZoneName string
	Heat     LoadSet
	Cool     LoadSet
	Dehum    LoadSet
}

func (c *ZoneLoadComponents) add_surface(kind SurfaceKind, l surfaceLoads) {
	add := func(ls *LoadSet, v float64) {
		switch kind {
		case SurfaceWindow:
			ls.Windows += v
		case SurfaceDoor:
			ls.Doors += v
		case SurfaceWall, SurfaceFoundationWall:
			ls.Walls += v
		case SurfaceRoof:
			ls.Roofs += v
		case SurfaceFloor, SurfaceSlab, SurfaceBelowGradeFloor:
			ls.Floors += v
		}
	}
	add(&c.Heat, l.heat)
	add(&c.Cool, l.cool)
	add(&c.Dehum, l.dehum)
}

/*
Loads of one conditioned zone.

	Args:
		z: zone
		site: site design parameters
		temps: design temperatures of adjacent spaces
		oa: outdoor air flows assigned to the zone

	Returns:
		zone load components

	Notes:
		Heating loads exclude internal gains and latent loads.
*/
func CalcZoneLoads(
	z *Zone,
	site *SiteDesignParameters,
	temps *ZoneDesignTemperatures,
	oa unitOutdoorAir,
) (*ZoneLoadComponents, error) {
	c := &ZoneLoadComponents{ZoneName: z.name}

	// envelope
	for _, s := range z.surfaces {
		l, err := get_surface_loads(s, site, temps)
		if err != nil {
			return nil, zone_error(z, err)
		}
		c.add_surface(s.kind, l)
	}

	// window solar gains
	wc, err := get_zone_window_cooling(z.windows(), site)
	if err != nil {
		return nil, zone_error(z, err)
	}
	c.Cool.Windows += wc.total()

	// infiltration and ventilation
	c.Heat.InfilSens = site.sens_factor() * oa.heat.sens * site.HTD
	c.Cool.InfilSens = site.sens_factor() * oa.cool.sens * site.CTD
	c.Cool.InfilLat = math.Max(0.0, site.lat_factor()*oa.cool.lat*(site.CoolDesignGrains-site.CoolIndoorGrains))
	c.Dehum.InfilSens = site.sens_factor() * oa.dehum.sens * site.DTD
	c.Dehum.InfilLat = math.Max(0.0, site.lat_factor()*oa.dehum.lat*(site.DehumidDesignGrains-site.DehumidIndoorGrains))

	// internal gains
	ig := get_internal_gains(z.gains, site.DesignMonth)
	c.Cool.IntGainsSens = ig.cool_sens
	c.Cool.IntGainsLat = math.Max(0.0, ig.cool_lat)
	c.Dehum.IntGainsSens = ig.dehum_sens
	c.Dehum.IntGainsLat = math.Max(0.0, ig.dehum_lat)

	return c, nil
}

/*
Conduction loads of a surface.

	Notes:
		Window solar gains are added per zone by get_zone_window_cooling, so
		the cooling load of an outdoor window here is zero.
*/
func get_surface_loads(s *Surface, site *SiteDesignParameters, temps *ZoneDesignTemperatures) (surfaceLoads, error) {
	if s.kind != SurfaceWindow {
		return s.get_opaque_loads(site, temps)
	}

	ua, err := s.get_ua()
	if err != nil {
		return surfaceLoads{}, err
	}
	if s.adjacent != SpaceOutdoors {
		t, err := temps.Get(s.adjacent)
		if err != nil {
			return surfaceLoads{}, &LoadCalcError{Surface: s.name, Err: err}
		}
		return get_interzonal_loads(ua, site, t), nil
	}
	return surfaceLoads{heat: ua * site.HTD, dehum: ua * site.DTD}, nil
}

func zone_error(z *Zone, err error) error {
	var lce *LoadCalcError
	if errors.As(err, &lce) {
		if lce.Zone == "" {
			lce.Zone = z.name
		}
		return lce
	}
	return &LoadCalcError{Zone: z.name, Err: err}
}
