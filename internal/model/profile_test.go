package model

import "testing"

func TestRefreshStatusRecoversFromInvalid(t *testing.T) {
	p := &Profile{Status: ProfileStatusInvalid}
	for i := 0; i < MinimumValidationPoints; i++ {
		p.Dataset.Validation = append(p.Dataset.Validation, NewMeasurement(1, i+1, float64(i+1), float64(i+1)))
	}

	p.RefreshStatus()
	if p.Status != ProfileStatusReady {
		t.Errorf("Editing an invalid profile should return it to ready, got %s", p.Status)
	}

	p.Dataset.Validation = p.Dataset.Validation[:1]
	p.RefreshStatus()
	if p.Status != ProfileStatusDraft {
		t.Errorf("An underfilled invalid profile should fall back to draft, got %s", p.Status)
	}
}

func TestDisplayName(t *testing.T) {
	p := &Profile{}
	if p.DisplayName() != "Untitled compound" {
		t.Errorf("Unnamed profile should use the placeholder, got %q", p.DisplayName())
	}

	p.CompoundName = "Pyrene"
	if p.DisplayName() != "Pyrene" {
		t.Errorf("Expected compound name, got %q", p.DisplayName())
	}
}
