package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/platform"
	"github.com/GroupeChemia/valexa/internal/profile"
	"github.com/GroupeChemia/valexa/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.groupechemia.valexa"
	AppName = "Valexa"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	profilesDir, err := platform.ProfilesDir()
	if err != nil {
		fmt.Printf("failed to locate profiles dir: %v\n", err)
	} else if err := platform.CreateDirectoryIfNotExists(profilesDir); err != nil {
		fmt.Printf("failed to ensure profiles dir: %v\n", err)
	}

	profileSvc := profile.NewService(settings, profilesDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, profileSvc)

	// Show and run
	myWindow.ShowAndRun()
}
