package hvac_sizing

// **** Occupants ****
// ACCA Manual J 8th edition, Section 18: 230 Btu/hr sensible and 200 Btu/hr latent per person

const (
	q_hum_sens_psn = 230.0 // sensible gain per person, Btu/hr
	q_hum_lat_psn  = 200.0 // latent gain per person, Btu/hr
)

type Occupants struct {
	n_people float64   // number of occupants
	schedule []float64 // hourly presence fraction, [24]
}

func NewOccupants(n_people float64, schedule []float64) *Occupants {
	return &Occupants{n_people: n_people, schedule: schedule}
}

/*
Occupants as a gain source.

	Returns:
		gain source with the per-person sensible and latent gains

	Notes:
		Occupant gains do not vary by month.
*/
func (o *Occupants) get_gain_source() (*GainSource, error) {
	return NewGainSource(
		"occupants",
		q_hum_sens_psn*o.n_people,
		q_hum_lat_psn*o.n_people,
		o.schedule,
		nil,
	)
}
