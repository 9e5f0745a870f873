package hvac_sizing

// **** Window cooling loads ****
// ACCA Manual J 8th edition, Section 3 "Average Load Procedure" and Appendix 3 (AED excursion)

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

const (
	n_window_hr     = window_hr_last - window_hr_first + 1
	shgc_reference  = 0.87 // SHGC of the reference clear single glazing
	excursion_limit = 1.3  // ratio of the hourly peak to the daily average allowed before an excursion
)

// Window cooling load of a zone, Btu/hr
type windowCoolingLoads struct {
	alp       float64              // average load procedure
	hourly    [n_window_hr]float64 // hourly loads, 8 AM to 8 PM
	excursion float64              // adjustment for the afternoon peak
}

func (w windowCoolingLoads) total() float64 {
	return w.alp + w.excursion
}

func azimuth_bin(azimuth float64) int {
	return int(math.Round(normalize_azimuth(azimuth) / 22.5))
}

/*
Peak solar factor of an azimuth bin at the site latitude.

	Args:
		bin: azimuth bin 0..16
		latitude: deg

	Returns:
		peak solar factor, Btu/(hr ft2)

	Notes:
		Latitudes outside 20..64 deg use the nearest column.
*/
func get_psf(bin int, latitude float64) (float64, error) {
	if bin < 0 || bin >= len(psf_lat) {
		return 0.0, fmt.Errorf("%w: azimuth bin %d", ErrInvalidInput, bin)
	}
	if math.IsNaN(latitude) {
		return 0.0, fmt.Errorf("%w: latitude is not a number", ErrInvalidInput)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(psf_latitudes, psf_lat[bin][:]); err != nil {
		return 0.0, err
	}
	return pl.Predict(math.Abs(latitude)), nil
}

/*
Solar altitude and azimuth for the mid-August design day.

	Args:
		latitude: deg
		hr: solar hour, 0..23

	Returns:
		solar altitude, deg
		solar azimuth from south, deg (east negative)
*/
func get_solar_position(latitude float64, hr int) (float64, float64) {
	phi := latitude * math.Pi / 180.0
	dec := declination_design * math.Pi / 180.0
	h := 15.0 * float64(hr-12) * math.Pi / 180.0

	sin_alt := math.Cos(phi)*math.Cos(dec)*math.Cos(h) + math.Sin(phi)*math.Sin(dec)
	alt := math.Asin(math.Max(-1.0, math.Min(1.0, sin_alt)))

	cos_az := (math.Sin(alt)*math.Sin(phi) - math.Sin(dec)) / (math.Cos(alt) * math.Cos(phi))
	az := math.Acos(math.Max(-1.0, math.Min(1.0, cos_az)))
	if h < 0 {
		az = -az
	}

	return alt * 180.0 / math.Pi, az * 180.0 / math.Pi
}

// wrap_180 maps an angle to (-180, 180] deg.
func wrap_180(a float64) float64 {
	a = math.Mod(a+180.0, 360.0)
	if a <= 0 {
		a += 360.0
	}
	return a - 180.0
}

/*
Shaded fraction of a window under an overhang.

	Args:
		o: overhang, nil if none
		azimuth: window azimuth, deg, north 0 clockwise
		latitude: deg
		hr: solar hour

	Returns:
		shaded fraction of the glass area, -

	Notes:
		The overhang is taken as infinitely wide. The shade line drops by
		depth * tan(profile angle) below the overhang.
*/
func get_shaded_fraction(o *Overhang, azimuth float64, latitude float64, hr int) float64 {
	if o == nil || o.depth <= 0 || o.height <= 0 {
		return 0.0
	}

	alt, az_sun := get_solar_position(latitude, hr)
	if alt <= 0 {
		return 1.0
	}

	// angle between the sun and the window normal, measured from south
	az_surf := wrap_180(normalize_azimuth(azimuth) - 180.0)
	gamma := wrap_180(az_sun - az_surf)
	if math.Abs(gamma) >= 90.0 {
		return 1.0
	}

	y_shade := o.depth * math.Tan(alt*math.Pi/180.0) / math.Cos(gamma*math.Pi/180.0)
	return math.Max(0.0, math.Min(1.0, (y_shade-o.offset)/o.height))
}

/*
Cooling loads of one window.

	Args:
		site: site design parameters
		u: U-factor of the window, Btu/(hr ft2 F)

	Returns:
		average load procedure and hourly loads, Btu/hr
		error if the peak solar factor cannot be found

	Notes:
		The heat transfer multiplier of the shaded part uses the north
		facing factors. HTM = PSF * CLF * SHGC * ISM / 0.87 + U * CLTD.
*/
func (s *Surface) get_window_cooling(site *SiteDesignParameters, u float64) (windowCoolingLoads, error) {
	bin := azimuth_bin(s.azimuth)
	dr := site.daily_range_index()

	psf_d, err := get_psf(bin, site.Latitude)
	if err != nil {
		return windowCoolingLoads{}, err
	}
	psf_n, err := get_psf(0, site.Latitude)
	if err != nil {
		return windowCoolingLoads{}, err
	}

	ism := s.interior_shade
	if ism <= 0 {
		ism = 1.0
	}
	has_is := ism < 1.0

	clf_avg := clf_avg_nois
	clf_hr := clf_hr_nois
	if has_is {
		clf_avg = clf_avg_is
		clf_hr = clf_hr_is
	}

	solar := s.shgc * ism / shgc_reference

	var f_shade_hr [n_window_hr]float64
	var loads windowCoolingLoads
	for h := 0; h < n_window_hr; h++ {
		hr := window_hr_first + h
		f_shade_hr[h] = get_shaded_fraction(s.overhang, s.azimuth, site.Latitude, hr)

		ctd_hr := site.CTD - hr_daily_range_pct[h]*site.DailyRange
		htm_d := psf_d*clf_hr[bin][h]*solar + u*ctd_hr
		htm_n := psf_n*clf_hr[0][h]*solar + u*ctd_hr
		loads.hourly[h] = s.area * (f_shade_hr[h]*htm_n + (1.0-f_shade_hr[h])*htm_d)
	}

	ctd_alp := site.CTD + daily_range_temp_adjust[dr]
	htm_d := psf_d*clf_avg[bin]*solar + u*ctd_alp
	htm_n := psf_n*clf_avg[0]*solar + u*ctd_alp
	f_shade := floats.Sum(f_shade_hr[:]) / float64(n_window_hr)
	loads.alp = s.area * (f_shade*htm_n + (1.0-f_shade)*htm_d)

	return loads, nil
}

/*
Window cooling load of a zone.

	Args:
		ws: windows of the zone
		site: site design parameters

	Returns:
		window cooling loads, Btu/hr

	Notes:
		excursion = max(0, peak hourly load - 1.3 * average hourly load)
*/
func get_zone_window_cooling(ws []*Surface, site *SiteDesignParameters) (windowCoolingLoads, error) {
	var zone windowCoolingLoads
	for _, w := range ws {
		u, err := w.get_u()
		if err != nil {
			return windowCoolingLoads{}, err
		}
		wl, err := w.get_window_cooling(site, u)
		if err != nil {
			return windowCoolingLoads{}, err
		}
		zone.alp += wl.alp
		floats.Add(zone.hourly[:], wl.hourly[:])
	}

	if len(ws) == 0 {
		return zone, nil
	}

	avg := floats.Sum(zone.hourly[:]) / float64(n_window_hr)
	zone.excursion = math.Max(0.0, floats.Max(zone.hourly[:])-excursion_limit*avg)
	return zone, nil
}
