package hvac_sizing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	result_csv_name  = "result_sizing.csv"
	result_xlsx_name = "result_sizing.xlsx"
	result_pdf_name  = "result_sizing.pdf"
)

// One row of the result table per unit
type UnitResultRow struct {
	RunID                string  `csv:"run_id"`
	Unit                 string  `csv:"unit"`
	Status               string  `csv:"status"`
	Error                string  `csv:"error"`
	HeatLoad             float64 `csv:"heat_load_btuh"`
	HeatLoadDucts        float64 `csv:"heat_load_ducts_btuh"`
	CoolLoadSens         float64 `csv:"cool_load_sens_btuh"`
	CoolLoadLat          float64 `csv:"cool_load_lat_btuh"`
	CoolLoadDuctsSens    float64 `csv:"cool_load_ducts_sens_btuh"`
	CoolLoadDuctsLat     float64 `csv:"cool_load_ducts_lat_btuh"`
	DehumLoadSens        float64 `csv:"dehum_load_sens_btuh"`
	DehumLoadLat         float64 `csv:"dehum_load_lat_btuh"`
	HeatAirflow          float64 `csv:"heat_airflow_cfm"`
	CoolAirflow          float64 `csv:"cool_airflow_cfm"`
	FanAirflow           float64 `csv:"fan_airflow_cfm"`
	CoolCapacity         float64 `csv:"cool_capacity_btuh"`
	CoolCapacitySens     float64 `csv:"cool_capacity_sens_btuh"`
	HeatCapacity         float64 `csv:"heat_capacity_btuh"`
	HeatCapacitySupp     float64 `csv:"heat_capacity_supp_btuh"`
	RegainFactor         float64 `csv:"regain_factor"`
	DehumRuntimeFraction float64 `csv:"dehum_runtime_fraction"`
	DehumWaterRemoval    float64 `csv:"dehum_water_removal_l_per_day"`
	Branch               string  `csv:"cooling_sizing_branch"`
	SizingSpeed          int     `csv:"sizing_speed"`
}

type DiagnosticRow struct {
	RunID   string `csv:"run_id"`
	Unit    string `csv:"unit"`
	Kind    string `csv:"kind"`
	Source  string `csv:"source"`
	Message string `csv:"message"`
}

// Collects the results of one run
type Recorder struct {
	run_id  uuid.UUID
	created time.Time
	rows    []UnitResultRow
	diags   []DiagnosticRow
}

func NewRecorder() *Recorder {
	return &Recorder{
		run_id:  uuid.New(),
		created: time.Now(),
	}
}

func (r *Recorder) RunID() string {
	return r.run_id.String()
}

func (r *Recorder) Rows() []UnitResultRow {
	return r.rows
}

func (r *Recorder) Record(res *UnitFinalLoads) {
	r.rows = append(r.rows, UnitResultRow{
		RunID:                r.RunID(),
		Unit:                 res.UnitName,
		Status:               "ok",
		HeatLoad:             res.HeatLoad,
		HeatLoadDucts:        res.HeatLoadDucts,
		CoolLoadSens:         res.CoolLoadSens,
		CoolLoadLat:          res.CoolLoadLat,
		CoolLoadDuctsSens:    res.CoolLoadDuctsSens,
		CoolLoadDuctsLat:     res.CoolLoadDuctsLat,
		DehumLoadSens:        res.DehumLoadSens,
		DehumLoadLat:         res.DehumLoadLat,
		HeatAirflow:          res.HeatAirflow,
		CoolAirflow:          res.CoolAirflow,
		FanAirflow:           res.FanAirflow,
		CoolCapacity:         res.CoolCapacity,
		CoolCapacitySens:     res.CoolCapacitySens,
		HeatCapacity:         res.HeatCapacity,
		HeatCapacitySupp:     res.HeatCapacitySupp,
		RegainFactor:         res.RegainFactor,
		DehumRuntimeFraction: res.DehumRuntimeFraction,
		DehumWaterRemoval:    res.DehumWaterRemoval,
		Branch:               res.Branch.String(),
		SizingSpeed:          res.SizingSpeed,
	})
	for _, d := range res.Diagnostics {
		r.diags = append(r.diags, DiagnosticRow{
			RunID:   r.RunID(),
			Unit:    res.UnitName,
			Kind:    d.Kind.String(),
			Source:  d.Source,
			Message: d.Message,
		})
	}
}

func (r *Recorder) RecordFailure(unit string, err error) {
	r.rows = append(r.rows, UnitResultRow{
		RunID:  r.RunID(),
		Unit:   unit,
		Status: "error",
		Error:  err.Error(),
	})
}

//---------------------------------------------------------------------------------------------------//

func (r *Recorder) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(&r.rows, w)
}

// close_file closes a written file and keeps the first error.
func close_file(c io.Closer, name string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing %s: %w", name, cerr)
	}
}

func (r *Recorder) ExportCSV(output_data_dir string) (err error) {
	f, err := os.Create(filepath.Join(output_data_dir, result_csv_name))
	if err != nil {
		return err
	}
	defer close_file(f, result_csv_name, &err)

	if err := r.WriteCSV(f); err != nil {
		return fmt.Errorf("writing %s: %w", result_csv_name, err)
	}
	return nil
}

/*
Write the results as a workbook.

	Notes:
		Sheet "results" holds one row per unit and sheet "diagnostics" one row
		per warning. Both reuse the csv column names as headers.
*/
func (r *Recorder) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "results"); err != nil {
		return err
	}
	if err := write_sheet(f, "results", r.rows); err != nil {
		return err
	}

	if _, err := f.NewSheet("diagnostics"); err != nil {
		return err
	}
	if err := write_sheet(f, "diagnostics", r.diags); err != nil {
		return err
	}

	return f.Write(w)
}

// write_sheet writes a header and one row per record, using the csv tags.
func write_sheet[T any](f *excelize.File, sheet string, records []T) error {
	b, err := gocsv.MarshalBytes(records)
	if err != nil {
		return err
	}
	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := make([]interface{}, len(row))
		for j, v := range row {
			vals[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) ExportXLSX(output_data_dir string) (err error) {
	f, err := os.Create(filepath.Join(output_data_dir, result_xlsx_name))
	if err != nil {
		return err
	}
	defer close_file(f, result_xlsx_name, &err)

	if err := r.WriteXLSX(f); err != nil {
		return fmt.Errorf("writing %s: %w", result_xlsx_name, err)
	}
	return nil
}

// WritePDF writes one page per unit.
func (r *Recorder) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	for _, row := range r.rows {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, fmt.Sprintf("Equipment sizing: %s", row.Unit))
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Run %s, %s", r.RunID(), r.created.Format("2006-01-02 15:04")))
		pdf.Ln(8)

		if row.Status != "ok" {
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, "Sizing failed: "+row.Error, "", "L", false)
			continue
		}

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range [][2]string{
			{"Heating load", fmt.Sprintf("%.0f Btu/hr (ducts %.0f)", row.HeatLoad, row.HeatLoadDucts)},
			{"Cooling sensible load", fmt.Sprintf("%.0f Btu/hr (ducts %.0f)", row.CoolLoadSens, row.CoolLoadDuctsSens)},
			{"Cooling latent load", fmt.Sprintf("%.0f Btu/hr (ducts %.0f)", row.CoolLoadLat, row.CoolLoadDuctsLat)},
			{"Heating capacity", fmt.Sprintf("%.0f Btu/hr", row.HeatCapacity)},
			{"Supplemental heating", fmt.Sprintf("%.0f Btu/hr", row.HeatCapacitySupp)},
			{"Cooling capacity", fmt.Sprintf("%.0f Btu/hr (sensible %.0f)", row.CoolCapacity, row.CoolCapacitySens)},
			{"Cooling sizing", fmt.Sprintf("%s, speed %d", row.Branch, row.SizingSpeed)},
			{"Airflow", fmt.Sprintf("heating %.0f, cooling %.0f, fan %.0f cfm", row.HeatAirflow, row.CoolAirflow, row.FanAirflow)},
			{"Duct regain factor", fmt.Sprintf("%.2f", row.RegainFactor)},
			{"Dehumidifier", fmt.Sprintf("%.1f L/day (cooling runtime %.2f)", row.DehumWaterRemoval, row.DehumRuntimeFraction)},
		} {
			pdf.CellFormat(60, 6, line[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, line[1], "", 1, "L", false, 0, "")
		}

		first := true
		for _, d := range r.diags {
			if d.Unit != row.Unit {
				continue
			}
			if first {
				pdf.Ln(4)
				pdf.SetFont("Helvetica", "B", 11)
				pdf.Cell(0, 6, "Warnings")
				pdf.Ln(6)
				pdf.SetFont("Helvetica", "", 9)
				first = false
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s: %s", d.Kind, d.Source, d.Message), "", "L", false)
		}
	}

	return pdf.Output(w)
}

func (r *Recorder) ExportPDF(output_data_dir string) (err error) {
	f, err := os.Create(filepath.Join(output_data_dir, result_pdf_name))
	if err != nil {
		return err
	}
	defer close_file(f, result_pdf_name, &err)

	if err := r.WritePDF(f); err != nil {
		return fmt.Errorf("writing %s: %w", result_pdf_name, err)
	}
	return nil
}
