package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the profile service and renders
// the loading, profiles and data screens plus the per-profile settings
// dialog. All UI strings are localized via Localization.
