package model

import (
	"sort"

	"github.com/google/uuid"
)

// Measurement is a single data point of a validation or calibration series:
// the introduced concentration x and the instrument response y, tagged with
// the series and concentration level it belongs to.
type Measurement struct {
	ID            string
	Series        int
	Level         int
	Concentration float64 // introduced quantity (x)
	Response      float64 // instrument response (y)
}

// NewMeasurement creates a measurement with a generated row ID.
func NewMeasurement(series, level int, x, y float64) Measurement {
	return Measurement{
		ID:            uuid.NewString(),
		Series:        series,
		Level:         level,
		Concentration: x,
		Response:      y,
	}
}

// Dataset holds the measurement tables of one profile. Calibration is
// optional; without it only the validation series are modeled.
type Dataset struct {
	Validation  []Measurement
	Calibration []Measurement
}

// HasCalibration reports whether a calibration table is present.
func (d *Dataset) HasCalibration() bool {
	return len(d.Calibration) > 0
}

// SortByConcentration orders both tables by introduced concentration,
// preserving the relative order of equal concentrations.
func (d *Dataset) SortByConcentration() {
	sortRows(d.Validation)
	sortRows(d.Calibration)
}

func sortRows(rows []Measurement) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Concentration < rows[j].Concentration
	})
}

// LevelCount returns the number of distinct concentration levels in rows.
func LevelCount(rows []Measurement) int {
	seen := make(map[int]bool)
	for _, row := range rows {
		seen[row.Level] = true
	}
	return len(seen)
}

// SeriesCount returns the number of distinct series in rows.
func SeriesCount(rows []Measurement) int {
	seen := make(map[int]bool)
	for _, row := range rows {
		seen[row.Series] = true
	}
	return len(seen)
}
