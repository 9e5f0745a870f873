package hvac_sizing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type InputJson struct {
	Units []UnitJson `json:"units"`
}

type UnitJson struct {
	Name                  string            `json:"name"`
	HeatingSetpoint       float64           `json:"heating_setpoint"`
	CoolingSetpoint       float64           `json:"cooling_setpoint"`
	Weather               WeatherJson       `json:"weather"`
	Building              BuildingJson      `json:"building"`
	Zones                 []ZoneJson        `json:"zones"`
	BufferSpaces          []BufferSpaceJson `json:"buffer_spaces"`
	MechanicalVentilation *VentilationJson  `json:"mechanical_ventilation"`
	Ducts                 *DuctJson         `json:"ducts"`
	Equipments            []EquipmentJson   `json:"equipments"`
	DehumidifierCurve     []float64         `json:"dehumidifier_curve"`
}

type WeatherJson struct {
	HeatingDrybulb        float64  `json:"heating_drybulb"`
	CoolingDrybulb        float64  `json:"cooling_drybulb"`
	DehumidDrybulb        float64  `json:"dehumid_drybulb"`
	CoolingHumidityRatio  float64  `json:"cooling_humidity_ratio"`
	DehumidHumidityRatio  float64  `json:"dehumid_humidity_ratio"`
	DailyTemperatureRange float64  `json:"daily_temperature_range"`
	CoolingWindspeed      *float64 `json:"cooling_windspeed"`
	HeatingWindspeed      *float64 `json:"heating_windspeed"`
	Latitude              float64  `json:"latitude"`
	Altitude              float64  `json:"altitude"`
	LocalPressure         float64  `json:"local_pressure"`
	GroundHeatingTemp     float64  `json:"ground_heating_temp"`
	GroundCoolingTemp     float64  `json:"ground_cooling_temp"`
	DesignMonth           int      `json:"design_month"`
}

type BuildingJson struct {
	Stories          int              `json:"stories"`
	Height           float64          `json:"height"`
	ExposedWallRatio float64          `json:"exposed_wall_ratio"`
	NeighborDistance *float64         `json:"neighbor_distance"`
	ShelterClass     int              `json:"shelter_class"`
	Infiltration     InfiltrationJson `json:"infiltration"`
}

type InfiltrationJson struct {
	Method      string  `json:"method"`
	ACH50       float64 `json:"ach50"`
	ConstantACH float64 `json:"constant_ach"`
}

type ZoneJson struct {
	Id        int           `json:"id"`
	Name      string        `json:"name"`
	FloorArea float64       `json:"floor_area"`
	Volume    float64       `json:"volume"`
	Surfaces  []SurfaceJson `json:"surfaces"`
	Occupants *OccupantJson `json:"occupants"`
	Gains     []GainJson    `json:"gains"`
}

type SurfaceJson struct {
	Name          string        `json:"name"`
	SurfaceType   string        `json:"surface_type"`
	Adjacent      string        `json:"adjacent"`
	Area          float64       `json:"area"`
	Azimuth       float64       `json:"azimuth"`
	UValue        float64       `json:"u_value"`
	Layers        []LayerJson   `json:"layers"`
	CavityR       float64       `json:"cavity_r_value"`
	RigidR        float64       `json:"rigid_r_value"`
	FinishDensity float64       `json:"finish_density"`
	Color         string        `json:"color"`
	RoofMaterial  string        `json:"roof_material"`
	SHGC          float64       `json:"shgc"`
	InteriorShade float64       `json:"interior_shade"`
	Overhang      *OverhangJson `json:"overhang"`
	Perimeter     float64       `json:"perimeter"`
	FFactor       float64       `json:"f_factor"`
}

type LayerJson struct {
	Name              string  `json:"name"`
	ThermalResistance float64 `json:"thermal_resistance"`
}

type OverhangJson struct {
	Depth        float64 `json:"depth"`
	Offset       float64 `json:"offset"`
	WindowHeight float64 `json:"window_height"`
}

type OccupantJson struct {
	Number   float64   `json:"number"`
	Schedule []float64 `json:"schedule"`
}

type GainJson struct {
	Name     string    `json:"name"`
	Sensible float64   `json:"sensible"`
	Latent   float64   `json:"latent"`
	Schedule []float64 `json:"schedule"`
	Monthly  []float64 `json:"monthly"`
}

type BufferSpaceJson struct {
	SpaceType     string  `json:"space_type"`
	UAConditioned float64 `json:"ua_conditioned"`
	UAOutdoors    float64 `json:"ua_outdoors"`
	UAGround      float64 `json:"ua_ground"`
	CeilingR      float64 `json:"ceiling_r_value"`
	WallsR        float64 `json:"walls_r_value"`
}

type VentilationJson struct {
	Type                  string  `json:"type"`
	FlowRate              float64 `json:"flow_rate"`
	SensibleEffectiveness float64 `json:"sensible_effectiveness"`
	LatentEffectiveness   float64 `json:"latent_effectiveness"`
}

type DuctJson struct {
	Location      string  `json:"location"`
	SupplyArea    float64 `json:"supply_area"`
	ReturnArea    float64 `json:"return_area"`
	SupplyR       float64 `json:"supply_r_value"`
	ReturnR       float64 `json:"return_r_value"`
	SupplyLeakage float64 `json:"supply_leakage"`
	ReturnLeakage float64 `json:"return_leakage"`
}

type EquipmentJson struct {
	Id            int                   `json:"id"`
	Name          string                `json:"name"`
	Property      EquipmentPropertyJson `json:"property"`
	EquipmentType string                `json:"equipment_type"`
}

type EquipmentPropertyJson struct {
	SupplyAirTemp             float64            `json:"supply_air_temp"`
	FixedHeatingCapacity      *float64           `json:"fixed_heating_capacity"`
	FixedCoolingCapacity      *float64           `json:"fixed_cooling_capacity"`
	FixedSupplementalCapacity *float64           `json:"fixed_supplemental_capacity"`
	HeatingStages             int                `json:"heating_stages"`
	CoolingStages             []CoolingStageJson `json:"cooling_stages"`
	Ducted                    *bool              `json:"ducted"`
	EnteringFluidTemp         *float64           `json:"entering_fluid_temp"`
}

type CoolingStageJson struct {
	CapacityRatio  float64   `json:"capacity_ratio"`
	RatedSHR       float64   `json:"rated_shr"`
	CapFT          []float64 `json:"cap_ft"`
	RatedCfmPerTon float64   `json:"rated_cfm_per_ton"`
}

//---------------------------------------------------------------------------------------------------//

const (
	cooling_windspeed_default = 7.5  // mph
	heating_windspeed_default = 15.0 // mph
)

func CreateWeatherDesign(d *WeatherJson) *WeatherDesign {
	w := &WeatherDesign{
		HeatingDrybulb:        d.HeatingDrybulb,
		CoolingDrybulb:        d.CoolingDrybulb,
		DehumidDrybulb:        d.DehumidDrybulb,
		CoolingHumidityRatio:  d.CoolingHumidityRatio,
		DehumidHumidityRatio:  d.DehumidHumidityRatio,
		DailyTemperatureRange: d.DailyTemperatureRange,
		CoolingWindspeed:      cooling_windspeed_default,
		HeatingWindspeed:      heating_windspeed_default,
		Latitude:              d.Latitude,
		Altitude:              d.Altitude,
		LocalPressure:         d.LocalPressure,
		GroundHeatingTemp:     d.GroundHeatingTemp,
		GroundCoolingTemp:     d.GroundCoolingTemp,
		DesignMonth:           d.DesignMonth,
	}
	if d.CoolingWindspeed != nil {
		w.CoolingWindspeed = *d.CoolingWindspeed
	}
	if d.HeatingWindspeed != nil {
		w.HeatingWindspeed = *d.HeatingWindspeed
	}
	return w
}

func CreateZone(d *ZoneJson) (*Zone, error) {
	surfaces := make([]*Surface, len(d.Surfaces))
	for i := range d.Surfaces {
		s, err := CreateSurface(&d.Surfaces[i])
		if err != nil {
			return nil, err
		}
		surfaces[i] = s
	}

	gains := make([]*GainSource, 0, len(d.Gains)+1)
	if d.Occupants != nil {
		g, err := NewOccupants(d.Occupants.Number, d.Occupants.Schedule).get_gain_source()
		if err != nil {
			return nil, err
		}
		gains = append(gains, g)
	}
	for _, gd := range d.Gains {
		g, err := NewGainSource(gd.Name, gd.Sensible, gd.Latent, gd.Schedule, gd.Monthly)
		if err != nil {
			return nil, err
		}
		gains = append(gains, g)
	}

	return NewZone(d.Id, d.Name, d.FloorArea, d.Volume, surfaces, gains), nil
}

func CreateBufferSpace(d *BufferSpaceJson) (*BufferSpace, error) {
	st, err := SpaceTypeFromString(d.SpaceType)
	if err != nil {
		return nil, err
	}
	return NewBufferSpace(st, d.UAConditioned, d.UAOutdoors, d.UAGround, d.CeilingR, d.WallsR), nil
}

func CreateMechanicalVentilation(d *VentilationJson) (*MechanicalVentilation, error) {
	vt, err := VentilationTypeFromString(d.Type)
	if err != nil {
		return nil, err
	}
	return NewMechanicalVentilation(vt, d.FlowRate, d.SensibleEffectiveness, d.LatentEffectiveness)
}

func CreateDuctSystem(d *DuctJson) (*DuctSystem, error) {
	location, err := SpaceTypeFromString(d.Location)
	if err != nil {
		return nil, err
	}
	return NewDuctSystem(location, d.SupplyArea, d.ReturnArea, d.SupplyR, d.ReturnR, d.SupplyLeakage, d.ReturnLeakage)
}

/*
Create a unit from its JSON description.

	Args:
		d: unit description

	Returns:
		unit, carrying warnings for equipment that is not sized
*/
func CreateUnit(d *UnitJson) (*Unit, error) {
	fail := func(err error) (*Unit, error) {
		return nil, withUnit(d.Name, err)
	}

	b, err := CreateBuilding(&d.Building)
	if err != nil {
		return fail(err)
	}

	zns := make([]*Zone, len(d.Zones))
	for i := range d.Zones {
		z, err := CreateZone(&d.Zones[i])
		if err != nil {
			return fail(zone_error(&Zone{name: d.Zones[i].Name}, err))
		}
		zns[i] = z
	}
	zones, err := NewZones(zns)
	if err != nil {
		return fail(err)
	}

	buffers := make([]*BufferSpace, len(d.BufferSpaces))
	for i := range d.BufferSpaces {
		buffers[i], err = CreateBufferSpace(&d.BufferSpaces[i])
		if err != nil {
			return fail(err)
		}
	}

	var vent *MechanicalVentilation
	if d.MechanicalVentilation != nil {
		vent, err = CreateMechanicalVentilation(d.MechanicalVentilation)
		if err != nil {
			return fail(err)
		}
	}

	var ducts *DuctSystem
	if d.Ducts != nil {
		ducts, err = CreateDuctSystem(d.Ducts)
		if err != nil {
			return fail(err)
		}
	}

	var diags []Diagnostic
	es := make([]Equipment, 0, len(d.Equipments))
	for i := range d.Equipments {
		e, diag, err := CreateEquipment(&d.Equipments[i])
		if err != nil {
			return fail(err)
		}
		if diag != nil {
			diags = append(diags, *diag)
			continue
		}
		es = append(es, e)
	}

	var curve *Biquadratic
	if len(d.DehumidifierCurve) > 0 {
		c, err := NewBiquadratic(d.DehumidifierCurve)
		if err != nil {
			return fail(err)
		}
		curve = &c
	}

	u, err := NewUnit(
		d.Name,
		d.HeatingSetpoint,
		d.CoolingSetpoint,
		CreateWeatherDesign(&d.Weather),
		b,
		zones,
		buffers,
		vent,
		ducts,
		es,
		curve,
	)
	if err != nil {
		return nil, err
	}
	u.diagnostics = diags
	return u, nil
}

// LoadInput reads the building description from a file path or an http(s) URL.
func LoadInput(house_data_path string) (*InputJson, error) {
	var body []byte
	if strings.HasPrefix(house_data_path, "http") {
		resp, err := http.Get(house_data_path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: %s", house_data_path, resp.Status)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		body, err = os.ReadFile(house_data_path)
		if err != nil {
			return nil, err
		}
	}
	return ParseInput(body)
}

func ParseInput(body []byte) (*InputJson, error) {
	var rd InputJson
	if err := json.Unmarshal(body, &rd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(rd.Units) == 0 {
		return nil, fmt.Errorf("%w: no units in the input", ErrMissingData)
	}
	return &rd, nil
}

/*
Size every unit of a building description and write the reports.

	Args:
		house_data_path: path or URL of the input JSON
		cfg: output directory, worker count and report switches

	Returns:
		an error if the input could not be read, a report could not be
		written, or any unit failed
*/
func Run(house_data_path string, cfg *Config) error {
	log := GetSugaredLogger()
	start := time.Now()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log.Infow("reading input", "path", house_data_path)
	rd, err := LoadInput(house_data_path)
	if err != nil {
		return err
	}

	rec := NewRecorder()
	failed := 0

	units := make([]*Unit, 0, len(rd.Units))
	for i := range rd.Units {
		u, err := CreateUnit(&rd.Units[i])
		if err != nil {
			log.Errorw("invalid unit", "unit", rd.Units[i].Name, "error", err)
			rec.RecordFailure(rd.Units[i].Name, err)
			failed++
			continue
		}
		units = append(units, u)
	}

	log.Infow("sizing units", "units", len(units), "workers", cfg.Workers, "run_id", rec.RunID())
	results, errs := SizeUnits(context.Background(), units, cfg.Workers)

	for i, u := range units {
		if errs[i] != nil {
			log.Errorw("unit sizing failed", "unit", u.Name(), "error", errs[i])
			rec.RecordFailure(u.Name(), errs[i])
			failed++
			continue
		}
		for _, d := range results[i].Diagnostics {
			log.Warnw("diagnostic", "unit", u.Name(), "kind", d.Kind.String(), "source", d.Source, "message", d.Message)
		}
		log.Debugw("unit sized",
			"unit", u.Name(),
			"heat_capacity", results[i].HeatCapacity,
			"cool_capacity", results[i].CoolCapacity,
			"branch", results[i].Branch.String(),
		)
		rec.Record(results[i])
	}

	if err := rec.ExportCSV(cfg.OutputDir); err != nil {
		return err
	}
	if cfg.XLSX {
		if err := rec.ExportXLSX(cfg.OutputDir); err != nil {
			return err
		}
	}
	if cfg.PDF {
		if err := rec.ExportPDF(cfg.OutputDir); err != nil {
			return err
		}
	}

	log.Infow("sizing finished", "units", len(rd.Units), "failed", failed, "elapsed", time.Since(start).String())

	if failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(rd.Units))
	}
	return nil
}
