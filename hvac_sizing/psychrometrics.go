package hvac_sizing

// **** Moist air properties (IP units) ****
// ASHRAE Handbook of Fundamentals, Chapter 1 "Psychrometrics"

import (
	"math"
)

const (
	p_std           = 14.696   // standard atmospheric pressure, psia
	r_da            = 53.350   // gas constant of dry air, ft lbf/(lbm R)
	cp_air          = 0.240    // specific heat of air, Btu/(lb F)
	ratio_mw        = 0.62198  // ratio of molecular weights of water vapor and dry air
	grains_per_lb   = 7000.0   // gr/lb
	kj_kg_to_btu_lb = 0.429923 // (Btu/lb)/(kJ/kg)
)

/*
Saturation vapor pressure over ice or liquid water.

	Args:
		t: dry-bulb temperature, F

	Returns:
		saturation pressure, psia

	Notes:
		Hyland-Wexler correlation, ASHRAE HOF 2009 Ch.1 Eq.(5), (6)
*/
func get_p_ws(t float64) float64 {
	t_r := t + 459.67

	if t_r < 491.67 {
		c1 := -1.0214165e4
		c2 := -4.8932428
		c3 := -5.3765794e-3
		c4 := 1.9202377e-7
		c5 := 3.5575832e-10
		c6 := -9.0344688e-14
		c7 := 4.1635019
		return math.Exp(c1/t_r + c2 + c3*t_r + c4*t_r*t_r + c5*math.Pow(t_r, 3) + c6*math.Pow(t_r, 4) + c7*math.Log(t_r))
	}

	c8 := -1.0440397e4
	c9 := -1.1294650e1
	c10 := -2.7022355e-2
	c11 := 1.2890360e-5
	c12 := -2.4780681e-9
	c13 := 6.5459673
	return math.Exp(c8/t_r + c9 + c10*t_r + c11*t_r*t_r + c12*math.Pow(t_r, 3) + c13*math.Log(t_r))
}

/*
Humidity ratio from dry-bulb temperature and relative humidity.

	Args:
		t: dry-bulb temperature, F
		rh: relative humidity, -
		p: local pressure, psia

	Returns:
		humidity ratio, lb/lb
*/
func get_w_from_t_rh(t float64, rh float64, p float64) float64 {
	p_w := rh * get_p_ws(t)
	return ratio_mw * p_w / (p - p_w)
}

// Saturation humidity ratio, lb/lb.
func get_w_s(t float64, p float64) float64 {
	return get_w_from_t_rh(t, 1.0, p)
}

/*
Specific enthalpy of moist air.

	Args:
		t: dry-bulb temperature, F
		w: humidity ratio, lb/lb

	Returns:
		enthalpy, Btu/lb

	Notes:
		h = 1.006 t + w (2501 + 1.86 t) with t in degree C, kJ/kg
*/
func get_h(t float64, w float64) float64 {
	t_c := f_to_c(t)
	return (1.006*t_c + w*(2501.0+1.86*t_c)) * kj_kg_to_btu_lb
}

/*
Wet-bulb temperature from dry-bulb temperature and humidity ratio.

	Args:
		t: dry-bulb temperature, F
		w: humidity ratio, lb/lb
		p: local pressure, psia

	Returns:
		wet-bulb temperature, F

	Notes:
		Solves ASHRAE HOF 2009 Ch.1 Eq.(35) for t_wb by bisection.
		The humidity ratio implied by a trial wet-bulb temperature grows
		monotonically with it, so the root is bracketed by [-100 F, t].
*/
func get_t_wb(t float64, w float64, p float64) float64 {
	w_of := func(t_wb float64) float64 {
		w_s := get_w_s(t_wb, p)
		return ((1093.0-0.556*t_wb)*w_s - cp_air*(t-t_wb)) / (1093.0 + 0.444*t - t_wb)
	}

	lo := -100.0
	hi := t
	if w_of(hi) <= w {
		return t
	}

	for i := 0; i < 100; i++ {
		mid := 0.5 * (lo + hi)
		if w_of(mid) > w {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo < 1e-6 {
			break
		}
	}

	return 0.5 * (lo + hi)
}

/*
Density of dry air.

	Args:
		t: dry-bulb temperature, F
		p: local pressure, psia

	Returns:
		density, lb/ft3
*/
func get_rho_air(t float64, p float64) float64 {
	return p * 144.0 / (r_da * (t + 459.67))
}

/*
Local atmospheric pressure from site elevation.

	Args:
		altitude: site elevation, ft

	Returns:
		local pressure, psia

	Notes:
		ASHRAE HOF 2009 Ch.1 Eq.(3)
*/
func get_p_from_altitude(altitude float64) float64 {
	return p_std * math.Pow(1.0-6.8754e-6*altitude, 5.2559)
}

func f_to_c(t float64) float64 {
	return (t - 32.0) / 1.8
}
