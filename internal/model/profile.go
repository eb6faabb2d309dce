package model

import (
	"time"
)

// MinimumValidationPoints is the smallest validation table a profile can be
// resolved with.
const MinimumValidationPoints = 5

// Profile represents one compound's validation profile: its dataset plus the
// name of the settings group that holds its configuration.
type Profile struct {
	ID           string
	CompoundName string
	Group        string // settings group name, keyed into the settings store
	Dataset      Dataset
	Status       ProfileStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the compound name, or a placeholder for an unnamed
// profile.
func (p *Profile) DisplayName() string {
	if p.CompoundName == "" {
		return "Untitled compound"
	}
	return p.CompoundName
}

// RefreshStatus recomputes the lifecycle status from the dataset. A computed
// profile is frozen; an invalid one returns to draft/ready once its data is
// edited.
func (p *Profile) RefreshStatus() {
	if !p.Status.IsEditable() {
		return
	}
	if len(p.Dataset.Validation) >= MinimumValidationPoints {
		p.Status = ProfileStatusReady
	} else {
		p.Status = ProfileStatusDraft
	}
}
