package model

// ProfileStatus represents the lifecycle state of a validation profile
type ProfileStatus string

const (
	// ProfileStatusDraft means the profile exists but its dataset is incomplete
	ProfileStatusDraft ProfileStatus = "Draft"

	// ProfileStatusReady means the dataset satisfies the minimum requirements
	ProfileStatusReady ProfileStatus = "Ready"

	// ProfileStatusComputed means the profile was resolved into a configuration
	ProfileStatusComputed ProfileStatus = "Computed"

	// ProfileStatusInvalid means the last resolution failed validation
	ProfileStatusInvalid ProfileStatus = "Invalid"
)

// String returns the string representation of ProfileStatus
func (ps ProfileStatus) String() string {
	return string(ps)
}

// IsEditable returns true if the profile's settings and dataset may still change
func (ps ProfileStatus) IsEditable() bool {
	return ps == ProfileStatusDraft || ps == ProfileStatusReady || ps == ProfileStatusInvalid
}

// IsComplete returns true if the profile has been resolved successfully
func (ps ProfileStatus) IsComplete() bool {
	return ps == ProfileStatusComputed
}
