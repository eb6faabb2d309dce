package ui

import (
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
	"github.com/GroupeChemia/valexa/internal/profile"
)

// Screen identifies one of the application's top-level screens.
type Screen int

const (
	// ScreenLoading is shown while persisted profiles are discovered
	ScreenLoading Screen = iota

	// ScreenProfiles lists the profiles and their settings
	ScreenProfiles

	// ScreenData edits the selected profile's measurement tables
	ScreenData
)

// RootUI wires the screens together and owns navigation between them
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	profiles profile.Manager
	loc      *Localization

	content *fyne.Container
	current Screen

	loadingScreen  *LoadingScreen
	profilesScreen *ProfilesScreen
	dataScreen     *DataScreen
}

// NewRootUI creates the root UI and shows the loading screen
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, profiles profile.Manager) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		profiles: profiles,
		loc:      NewLocalization(),
	}

	ui.loc.SetLanguage(settings.GetLanguage())
	ui.setupUI()
	return ui
}

// setupUI builds the screens, the menu and the initial content
func (ui *RootUI) setupUI() {
	ui.loadingScreen = NewLoadingScreen(ui)
	ui.profilesScreen = NewProfilesScreen(ui)
	ui.dataScreen = NewDataScreen(ui)

	ui.profiles.SetUpdateCallback(ui.onProfileUpdate)

	ui.content = container.NewStack(ui.loadingScreen.Container())
	ui.createMenu()
	ui.window.SetContent(ui.content)

	ui.ShowScreen(ScreenLoading)
	ui.loadingScreen.Start(func() {
		ui.ShowScreen(ScreenProfiles)
	})
}

// ShowScreen routes to one of the three screens
func (ui *RootUI) ShowScreen(screen Screen) {
	ui.current = screen

	var page fyne.CanvasObject
	switch screen {
	case ScreenProfiles:
		ui.profilesScreen.Refresh()
		page = ui.profilesScreen.Container()
	case ScreenData:
		ui.dataScreen.Refresh()
		page = ui.dataScreen.Container()
	default:
		page = ui.loadingScreen.Container()
	}

	ui.content.Objects = []fyne.CanvasObject{page}
	ui.content.Refresh()
}

// createMenu builds the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem(ui.loc.GetText(KeyImportProfile), ui.onImportProfile)

	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageItems := make([]*fyne.MenuItem, 0, len(codes))
	for _, code := range codes {
		langCode := code
		languageItems = append(languageItems, fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(langCode)
		}))
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.loc.GetText(KeyProfiles), importItem),
		fyne.NewMenu(ui.loc.GetText(KeyLanguage), languageItems...),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches the UI language and re-renders texts
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.loc.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI elements with current localization
func (ui *RootUI) refreshUITexts() {
	ui.createMenu()
	ui.loadingScreen.RefreshTexts()
	ui.profilesScreen.RefreshTexts()
	ui.dataScreen.RefreshTexts()
	ui.ShowScreen(ui.current)
}

// onProfileUpdate refreshes the visible screen when a profile changes
func (ui *RootUI) onProfileUpdate(_ *model.Profile) {
	switch ui.current {
	case ScreenProfiles:
		ui.profilesScreen.Refresh()
	case ScreenData:
		ui.dataScreen.Refresh()
	}
}

// OpenData navigates to the data screen for the given profile
func (ui *RootUI) OpenData(profileID string) {
	ui.settings.SetLastProfile(profileID)
	ui.dataScreen.SetProfile(profileID)
	ui.ShowScreen(ScreenData)
}

// onImportProfile asks for a profile file and imports it
func (ui *RootUI) onImportProfile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if _, err := ui.profiles.ImportFile(path); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.profilesScreen.Refresh()
	}, ui.window)
}

// showNotification displays a short informational dialog that hides itself
func (ui *RootUI) showNotification(message string) {
	d := dialog.NewInformation(ui.loc.GetText(KeyAppTitle), message, ui.window)
	d.Show()

	go func() {
		time.Sleep(NotificationAutoHide)
		fyne.Do(d.Hide)
	}()
}
