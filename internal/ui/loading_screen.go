package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoadingScreen shows startup progress while profiles are discovered
type LoadingScreen struct {
	ui *RootUI

	label    *widget.Label
	progress *widget.ProgressBar
	root     *fyne.Container
}

// NewLoadingScreen creates the loading screen
func NewLoadingScreen(ui *RootUI) *LoadingScreen {
	s := &LoadingScreen{ui: ui}

	s.label = widget.NewLabel(ui.loc.GetText(KeyLoadingProfiles))
	s.label.Alignment = fyne.TextAlignCenter
	s.progress = widget.NewProgressBar()

	s.root = container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(ui.loc.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		s.label,
		s.progress,
	))
	return s
}

// Container returns the screen's root object
func (s *LoadingScreen) Container() fyne.CanvasObject {
	return s.root
}

// RefreshTexts updates screen texts after a language change
func (s *LoadingScreen) RefreshTexts() {
	s.label.SetText(s.ui.loc.GetText(KeyLoadingProfiles))
}

// Start animates the progress bar and invokes done on the UI thread
func (s *LoadingScreen) Start(done func()) {
	go func() {
		steps := 5
		for i := 1; i <= steps; i++ {
			time.Sleep(LoadingStepDelay)
			value := float64(i) / float64(steps)
			fyne.Do(func() {
				s.progress.SetValue(value)
			})
		}
		fyne.Do(done)
	}()
}
