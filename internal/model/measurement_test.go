package model

import "testing"

func TestNewMeasurement(t *testing.T) {
	m := NewMeasurement(2, 1, 419, 1.53)

	if m.ID == "" {
		t.Error("Measurement should receive a generated ID")
	}
	if m.Series != 2 || m.Level != 1 {
		t.Errorf("Expected series 2 level 1, got %d/%d", m.Series, m.Level)
	}
	if m.Concentration != 419 || m.Response != 1.53 {
		t.Errorf("Unexpected values: %v", m)
	}

	other := NewMeasurement(2, 1, 419, 1.53)
	if other.ID == m.ID {
		t.Error("Measurement IDs should be unique")
	}
}

func TestDatasetCounts(t *testing.T) {
	rows := []Measurement{
		NewMeasurement(1, 1, 406, 1.0),
		NewMeasurement(2, 1, 419, 1.1),
		NewMeasurement(3, 1, 443, 1.3),
		NewMeasurement(1, 2, 1015, 4.1),
		NewMeasurement(2, 2, 1047.5, 4.4),
	}

	if got := LevelCount(rows); got != 2 {
		t.Errorf("Expected 2 levels, got %d", got)
	}
	if got := SeriesCount(rows); got != 3 {
		t.Errorf("Expected 3 series, got %d", got)
	}
	if got := LevelCount(nil); got != 0 {
		t.Errorf("Expected 0 levels for empty rows, got %d", got)
	}
}

func TestDatasetSortByConcentration(t *testing.T) {
	d := Dataset{
		Validation: []Measurement{
			NewMeasurement(1, 2, 1015, 3.9),
			NewMeasurement(1, 1, 406, 1.0),
			NewMeasurement(1, 3, 2030, 6.6),
		},
	}

	d.SortByConcentration()

	for i := 1; i < len(d.Validation); i++ {
		if d.Validation[i-1].Concentration > d.Validation[i].Concentration {
			t.Fatalf("Validation rows not sorted: %v", d.Validation)
		}
	}
}

func TestDatasetHasCalibration(t *testing.T) {
	d := Dataset{Validation: []Measurement{NewMeasurement(1, 1, 406, 1.0)}}
	if d.HasCalibration() {
		t.Error("Dataset without calibration rows should not report calibration")
	}

	d.Calibration = append(d.Calibration, NewMeasurement(1, 1, 406, 1.0))
	if !d.HasCalibration() {
		t.Error("Dataset with calibration rows should report calibration")
	}
}

func TestProfileRefreshStatus(t *testing.T) {
	p := &Profile{Status: ProfileStatusDraft}

	p.RefreshStatus()
	if p.Status != ProfileStatusDraft {
		t.Errorf("Empty profile should stay draft, got %s", p.Status)
	}

	for i := 0; i < MinimumValidationPoints; i++ {
		p.Dataset.Validation = append(p.Dataset.Validation, NewMeasurement(1, i+1, float64(i+1), float64(i+1)))
	}
	p.RefreshStatus()
	if p.Status != ProfileStatusReady {
		t.Errorf("Profile with enough points should be ready, got %s", p.Status)
	}

	// Computed state is owned by resolution and never downgraded here.
	p.Status = ProfileStatusComputed
	p.Dataset.Validation = p.Dataset.Validation[:1]
	p.RefreshStatus()
	if p.Status != ProfileStatusComputed {
		t.Errorf("Computed status should be preserved, got %s", p.Status)
	}
}
