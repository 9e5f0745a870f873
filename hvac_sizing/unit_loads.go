package hvac_sizing

// **** Unit loads before duct losses ****

import (
	"math"
)

// Whole-unit loads before duct losses
type UnitInitialLoads struct {
	HeatLoad    float64 // heating load, Btu/hr
	CoolSens    float64 // cooling sensible load, Btu/hr
	CoolLat     float64 // cooling latent load, Btu/hr
	CoolTot     float64 // cooling total load, Btu/hr
	DehumSens   float64 // dehumidification sensible load, Btu/hr
	DehumLat    float64 // dehumidification latent load, Btu/hr
	SHR         float64 // cooling sensible heat ratio, -
	LAT         float64 // cooling leaving air temperature, F
	HeatAirflow float64 // cfm
	CoolAirflow float64 // cfm
}

/*
Cooling coil leaving air temperature.

	Args:
		shr: cooling sensible heat ratio, -

	Returns:
		leaving air temperature, F

	Notes:
		54 F below SHR 0.80, 58 F above 0.85 and linear in between.
*/
func get_leaving_air_temp(shr float64) float64 {
	if shr < 0.80 {
		return 54.0
	} else if shr > 0.85 {
		return 58.0
	}
	return 54.0 + (shr-0.80)*4.0/0.05
}

func get_shr(sens float64, lat float64) float64 {
	if sens+lat <= 0 {
		return 1.0
	}
	return math.Min(sens/(sens+lat), 1.0)
}

// Heating airflow for a supply air temperature, cfm
func get_heat_airflow(site *SiteDesignParameters, load float64, t_supply float64) float64 {
	if t_supply <= site.HeatSetpoint || load <= 0 {
		return 0.0
	}
	return load / (site.sens_factor() * (t_supply - site.HeatSetpoint))
}

// Cooling airflow for a sensible load, cfm
func get_cool_airflow(site *SiteDesignParameters, sens float64, lat_t float64) float64 {
	if sens <= 0 {
		return 0.0
	}
	return sens / (site.sens_factor() * (site.CoolSetpoint - lat_t))
}

/*
Sum the zone loads of a unit.

	Args:
		cs: zone load components
		site: site design parameters
		t_supply_heat: heating supply air temperature, F, zero without forced air heating

	Returns:
		unit loads before duct losses
*/
func AggregateUnitLoads(cs []*ZoneLoadComponents, site *SiteDesignParameters, t_supply_heat float64) *UnitInitialLoads {
	u := &UnitInitialLoads{}
	for _, c := range cs {
		u.HeatLoad += c.Heat.Sens()
		u.CoolSens += c.Cool.Sens()
		u.CoolLat += c.Cool.Lat()
		u.DehumSens += c.Dehum.Sens()
		u.DehumLat += c.Dehum.Lat()
	}

	u.CoolLat = math.Max(u.CoolLat, 0.0)
	u.DehumLat = math.Max(u.DehumLat, 0.0)
	u.CoolTot = u.CoolSens + u.CoolLat

	u.SHR = get_shr(u.CoolSens, u.CoolLat)
	u.LAT = get_leaving_air_temp(u.SHR)

	u.HeatAirflow = get_heat_airflow(site, u.HeatLoad, t_supply_heat)
	u.CoolAirflow = get_cool_airflow(site, u.CoolSens, u.LAT)

	return u
}
