package hvac_sizing

// **** Static design tables ****
// ACCA Manual J 8th edition and ASHRAE Handbook of Fundamentals 1997 Ch.28.
// Azimuth-indexed tables have 17 rows, N (0 deg) clockwise in 22.5 deg steps
// back to N (360 deg).

// Altitude correction factor at 0 to 12000 ft in 1000 ft steps
var acf_altitudes = []float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000, 11000, 12000}
var acf_factors = []float64{1.0, 0.97, 0.93, 0.89, 0.87, 0.84, 0.80, 0.77, 0.75, 0.72, 0.69, 0.66, 0.63}

// CLTD adjustment by daily range class (low, medium, high), F
var daily_range_temp_adjust = [3]float64{4, 0, -5}

// Door CLTD offset by daily range class, F
var door_cltd_offset = [3]float64{15, 11, 6}

// Wall CLTD correction base for CTD < 10 F by daily range class, F
var wall_low_ctd_offset = [3]float64{20, 10, 0}

// Wall CLTD at CTD = 20 F and medium daily range, sunlit walls, wall groups A..K, F
var cltd_base_sun = [11]float64{38, 34.95, 31.9, 29.45, 27, 24.5, 22, 21.25, 20.5, 19.65, 18.8}

// Wall CLTD at CTD = 20 F and medium daily range, shaded (north facing) walls, wall groups A..K, F
var cltd_base_shade = [11]float64{25, 21.25, 17.5, 16.0, 14.5, 13.0, 11.5, 11.0, 10.5, 10.15, 9.8}

// Roof CLTD by total assembly R-value bin, F
var roof_cltd_r_bins = [5]float64{6, 13, 15, 21, 30}
var roof_cltd_base = [6]float64{50, 45, 38, 31, 30, 27}

// Average clear-sky glass cooling load factor, Average Load Procedure
var clf_avg_nois = [17]float64{0.24, 0.295, 0.35, 0.365, 0.38, 0.39, 0.4, 0.44, 0.48, 0.44, 0.4, 0.39, 0.38, 0.365, 0.35, 0.295, 0.24}
var clf_avg_is = [17]float64{0.18, 0.235, 0.29, 0.305, 0.32, 0.32, 0.32, 0.305, 0.29, 0.305, 0.32, 0.32, 0.32, 0.305, 0.29, 0.235, 0.18}

// Latitudes of the peak solar factor columns, deg
var psf_latitudes = []float64{20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64}

// Percentage of the daily range below the design dry-bulb, 8 AM to 8 PM
var hr_daily_range_pct = [13]float64{0.84, 0.71, 0.56, 0.39, 0.23, 0.11, 0.03, 0.0, 0.03, 0.10, 0.21, 0.34, 0.47}

// First and last hour of the hourly glass tables
const (
	window_hr_first = 8
	window_hr_last  = 20
)

// Wind coefficient by shelter class 1..5 for a one-story building, cfm^2/(in^4 mph^2)
var wind_coefficient_shelter = [5]float64{0.0119, 0.0092, 0.0065, 0.0039, 0.0012}

// Solar declination used for overhang shading (mid August), deg
const declination_design = 12.1

// Sensible heat ratio curve of cooling coils, f(cfm/ton, outdoor dry-bulb F)
var shr_curve_coeffs = Biquadratic{1.08464364, 0.002096954, 0, -0.005766327, 0, -0.000011147}

// Dehumidifier water removal curve, f(inlet dry-bulb C, inlet RH %)
var dehumidifier_water_curve_default = Biquadratic{-1.162525707, 0.02271469, -0.000113208, 0.021110538, -0.0000693034, 0.000378843}

// Hourly glass cooling load factor without interior shading, 8 AM to 8 PM, [azimuth bin, hour]
var clf_hr_nois = [17][13]float64{
	{0.31, 0.36, 0.44, 0.51, 0.57, 0.61, 0.63, 0.64, 0.63, 0.6, 0.57, 0.54, 0.39},         // N
	{0.39, 0.41, 0.42, 0.42, 0.43, 0.445, 0.45, 0.45, 0.435, 0.41, 0.38, 0.35, 0.26},      // NNE
	{0.47, 0.46, 0.4, 0.33, 0.29, 0.28, 0.27, 0.26, 0.24, 0.22, 0.19, 0.16, 0.13},         // NE
	{0.45, 0.48, 0.445, 0.375, 0.315, 0.28, 0.265, 0.25, 0.23, 0.21, 0.18, 0.15, 0.125},   // ENE
	{0.43, 0.5, 0.49, 0.42, 0.34, 0.28, 0.26, 0.24, 0.22, 0.2, 0.17, 0.14, 0.12},          // E
	{0.335, 0.42, 0.45, 0.435, 0.39, 0.34, 0.3, 0.265, 0.24, 0.215, 0.185, 0.15, 0.125},   // ESE
	{0.24, 0.34, 0.41, 0.45, 0.44, 0.4, 0.34, 0.29, 0.26, 0.23, 0.2, 0.16, 0.13},          // SE
	{0.17, 0.23, 0.29, 0.345, 0.38, 0.405, 0.41, 0.405, 0.39, 0.355, 0.305, 0.245, 0.185}, // SSE
	{0.1, 0.12, 0.17, 0.24, 0.32, 0.41, 0.48, 0.52, 0.52, 0.48, 0.41, 0.33, 0.24},         // S
	{0.1, 0.115, 0.145, 0.185, 0.235, 0.305, 0.38, 0.445, 0.485, 0.49, 0.45, 0.38, 0.265}, // SSW
	{0.1, 0.11, 0.12, 0.13, 0.15, 0.2, 0.28, 0.37, 0.45, 0.5, 0.49, 0.43, 0.29},           // SW
	{0.1, 0.11, 0.115, 0.125, 0.14, 0.17, 0.225, 0.3, 0.385, 0.455, 0.485, 0.46, 0.33},    // WSW
	{0.1, 0.11, 0.11, 0.12, 0.13, 0.14, 0.17, 0.23, 0.32, 0.41, 0.48, 0.49, 0.37},         // W
	{0.105, 0.115, 0.12, 0.13, 0.14, 0.15, 0.17, 0.21, 0.285, 0.375, 0.46, 0.5, 0.4},      // WNW
	{0.11, 0.12, 0.13, 0.14, 0.15, 0.16, 0.17, 0.19, 0.25, 0.34, 0.44, 0.51, 0.43},        // NW
	{0.21, 0.24, 0.285, 0.325, 0.36, 0.385, 0.4, 0.415, 0.44, 0.47, 0.505, 0.525, 0.41},   // NNW
	{0.31, 0.36, 0.44, 0.51, 0.57, 0.61, 0.63, 0.64, 0.63, 0.6, 0.57, 0.54, 0.39},         // N
}

// Hourly glass cooling load factor with interior shading, 8 AM to 8 PM, [azimuth bin, hour]
var clf_hr_is = [17][13]float64{
	{0.65, 0.73, 0.8, 0.86, 0.89, 0.89, 0.86, 0.82, 0.75, 0.78, 0.91, 0.24, 0.18},           // N
	{0.695, 0.655, 0.585, 0.575, 0.58, 0.575, 0.55, 0.52, 0.475, 0.475, 0.525, 0.15, 0.115}, // NNE
	{0.74, 0.58, 0.37, 0.29, 0.27, 0.26, 0.24, 0.22, 0.2, 0.17, 0.14, 0.06, 0.05},           // NE
	{0.77, 0.67, 0.495, 0.35, 0.27, 0.25, 0.23, 0.21, 0.185, 0.155, 0.125, 0.06, 0.05},      // ENE
	{0.8, 0.76, 0.62, 0.41, 0.27, 0.24, 0.22, 0.2, 0.17, 0.14, 0.11, 0.06, 0.05},            // E
	{0.71, 0.74, 0.67, 0.515, 0.37, 0.285, 0.24, 0.21, 0.175, 0.14, 0.11, 0.06, 0.05},       // ESE
	{0.62, 0.72, 0.72, 0.62, 0.47, 0.33, 0.26, 0.22, 0.18, 0.14, 0.11, 0.06, 0.05},          // SE
	{0.38, 0.465, 0.515, 0.52, 0.495, 0.45, 0.42, 0.375, 0.325, 0.245, 0.175, 0.095, 0.075}, // SSE
	{0.14, 0.21, 0.31, 0.42, 0.52, 0.57, 0.58, 0.53, 0.47, 0.35, 0.24, 0.13, 0.1},           // S
	{0.115, 0.16, 0.22, 0.285, 0.37, 0.475, 0.56, 0.605, 0.615, 0.545, 0.435, 0.195, 0.11},  // SSW
	{0.09, 0.11, 0.13, 0.15, 0.22, 0.38, 0.54, 0.68, 0.76, 0.74, 0.63, 0.26, 0.12},          // SW
	{0.085, 0.1, 0.115, 0.13, 0.17, 0.26, 0.39, 0.56, 0.695, 0.76, 0.72, 0.285, 0.13},       // WSW
	{0.08, 0.09, 0.1, 0.11, 0.12, 0.14, 0.24, 0.44, 0.63, 0.78, 0.81, 0.31, 0.14},           // W
	{0.085, 0.095, 0.105, 0.115, 0.125, 0.14, 0.205, 0.35, 0.575, 0.745, 0.82, 0.37, 0.16},  // WNW
	{0.09, 0.1, 0.11, 0.12, 0.13, 0.14, 0.17, 0.26, 0.52, 0.71, 0.83, 0.43, 0.18},           // NW
	{0.37, 0.415, 0.455, 0.49, 0.51, 0.515, 0.515, 0.54, 0.635, 0.745, 0.87, 0.335, 0.18},   // NNW
	{0.65, 0.73, 0.8, 0.86, 0.89, 0.89, 0.86, 0.82, 0.75, 0.78, 0.91, 0.24, 0.18},           // N
}

// Peak solar factor, Btu/(hr ft2), [azimuth bin, latitude 20 to 64 deg step 4]
var psf_lat = [17][12]float64{
	{47.0, 43.0, 40.0, 38.0, 37.0, 36.0, 35.0, 34.0, 33.0, 32.0, 31.0, 30.0},             // N
	{85.0, 83.0, 81.0, 79.5, 78.5, 77.5, 76.5, 75.5, 74.5, 73.5, 72.5, 71.5},             // NNE
	{123.0, 123.0, 122.0, 121.0, 120.0, 119.0, 118.0, 117.0, 116.0, 115.0, 114.0, 113.0}, // NE
	{169.5, 170.0, 169.5, 168.5, 167.5, 166.5, 165.0, 163.5, 162.0, 160.0, 158.0, 155.5}, // ENE
	{216.0, 217.0, 217.0, 216.0, 215.0, 214.0, 212.0, 210.0, 208.0, 205.0, 202.0, 198.0}, // E
	{173.5, 178.5, 182.5, 185.5, 188.5, 191.0, 192.5, 193.5, 194.0, 193.5, 192.5, 190.5}, // ESE
	{131.0, 140.0, 148.0, 155.0, 162.0, 168.0, 173.0, 177.0, 180.0, 182.0, 183.0, 183.0}, // SE
	{83.5, 91.0, 101.5, 113.5, 127.5, 141.0, 153.5, 164.5, 174.0, 181.5, 187.0, 190.5},   // SSE
	{36.0, 42.0, 55.0, 72.0, 93.0, 114.0, 134.0, 152.0, 168.0, 181.0, 191.0, 198.0},      // S
	{83.5, 91.0, 101.5, 113.5, 127.5, 141.0, 153.5, 164.5, 174.0, 181.5, 187.0, 190.5},   // SSW
	{131.0, 140.0, 148.0, 155.0, 162.0, 168.0, 173.0, 177.0, 180.0, 182.0, 183.0, 183.0}, // SW
	{173.5, 178.5, 182.5, 185.5, 188.5, 191.0, 192.5, 193.5, 194.0, 193.5, 192.5, 190.5}, // WSW
	{216.0, 217.0, 217.0, 216.0, 215.0, 214.0, 212.0, 210.0, 208.0, 205.0, 202.0, 198.0}, // W
	{169.5, 170.0, 169.5, 168.5, 167.5, 166.5, 165.0, 163.5, 162.0, 160.0, 158.0, 155.5}, // WNW
	{123.0, 123.0, 122.0, 121.0, 120.0, 119.0, 118.0, 117.0, 116.0, 115.0, 114.0, 113.0}, // NW
	{85.0, 83.0, 81.0, 79.5, 78.5, 77.5, 76.5, 75.5, 74.5, 73.5, 72.5, 71.5},             // NNW
	{47.0, 43.0, 40.0, 38.0, 37.0, 36.0, 35.0, 34.0, 33.0, 32.0, 31.0, 30.0},             // N
}
