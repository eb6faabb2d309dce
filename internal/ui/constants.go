package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	ProfileRowMinHeight float32 = 56

	StatusLabelWidth float32 = 84

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 560

	DataEntryWidth float32 = 110
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Loading screen pacing
const (
	LoadingStepDelay = 150 * time.Millisecond
)
