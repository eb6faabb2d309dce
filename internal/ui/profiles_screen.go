package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GroupeChemia/valexa/internal/model"
)

// ProfilesScreen lists the validation profiles and their actions
type ProfilesScreen struct {
	ui *RootUI

	list     *widget.List
	empty    *widget.Label
	title    *widget.Label
	newBtn   *widget.Button
	selected string

	duplicateBtn *widget.Button
	renameBtn    *widget.Button
	deleteBtn    *widget.Button
	settingsBtn  *widget.Button
	exportBtn    *widget.Button
	dataBtn      *widget.Button

	visible []*model.Profile
	root    *fyne.Container
}

// NewProfilesScreen creates the profiles screen
func NewProfilesScreen(ui *RootUI) *ProfilesScreen {
	s := &ProfilesScreen{ui: ui}

	s.title = widget.NewLabelWithStyle(ui.loc.GetText(KeyProfiles), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.empty = widget.NewLabel(ui.loc.GetText(KeyNoProfiles))
	s.empty.Alignment = fyne.TextAlignCenter

	s.list = widget.NewList(
		func() int { return len(s.visible) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			status := widget.NewLabel("")
			status.Alignment = fyne.TextAlignTrailing
			statusBox := container.NewGridWrap(fyne.NewSize(StatusLabelWidth, ProfileRowMinHeight), status)
			return container.NewBorder(nil, nil, nil, statusBox, name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(s.visible) {
				return
			}
			p := s.visible[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(p.DisplayName())
			row.Objects[1].(*fyne.Container).Objects[0].(*widget.Label).SetText(string(p.Status))
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if id < len(s.visible) {
			s.selected = s.visible[id].ID
		}
		s.updateButtons()
	}
	s.list.OnUnselected = func(widget.ListItemID) {
		s.selected = ""
		s.updateButtons()
	}

	s.newBtn = widget.NewButton(ui.loc.GetText(KeyNewProfile), s.onNewProfile)
	s.duplicateBtn = widget.NewButton(ui.loc.GetText(KeyDuplicateProfile), s.onDuplicate)
	s.renameBtn = widget.NewButton(ui.loc.GetText(KeyRenameProfile), s.onRename)
	s.deleteBtn = widget.NewButton(ui.loc.GetText(KeyDeleteProfile), s.onDelete)
	s.settingsBtn = widget.NewButton(ui.loc.GetText(KeySettings), s.onSettings)
	s.exportBtn = widget.NewButton(ui.loc.GetText(KeyExportProfile), s.onExport)
	s.dataBtn = widget.NewButton(ui.loc.GetText(KeyData), s.onOpenData)
	s.updateButtons()

	actions := container.NewHBox(
		s.newBtn, s.duplicateBtn, s.renameBtn, s.deleteBtn,
		widget.NewSeparator(),
		s.settingsBtn, s.dataBtn, s.exportBtn,
	)

	s.root = container.NewBorder(
		container.NewVBox(s.title, actions),
		nil, nil, nil,
		container.NewStack(s.empty, s.list),
	)
	return s
}

// Container returns the screen's root object
func (s *ProfilesScreen) Container() fyne.CanvasObject {
	return s.root
}

// Refresh re-reads the profile list from the manager
func (s *ProfilesScreen) Refresh() {
	s.visible = s.ui.profiles.All()
	if len(s.visible) == 0 {
		s.empty.Show()
		s.list.Hide()
	} else {
		s.empty.Hide()
		s.list.Show()
	}
	s.list.Refresh()
	s.updateButtons()
}

// RefreshTexts updates screen texts after a language change
func (s *ProfilesScreen) RefreshTexts() {
	loc := s.ui.loc
	s.title.SetText(loc.GetText(KeyProfiles))
	s.empty.SetText(loc.GetText(KeyNoProfiles))
	s.newBtn.SetText(loc.GetText(KeyNewProfile))
	s.duplicateBtn.SetText(loc.GetText(KeyDuplicateProfile))
	s.renameBtn.SetText(loc.GetText(KeyRenameProfile))
	s.deleteBtn.SetText(loc.GetText(KeyDeleteProfile))
	s.settingsBtn.SetText(loc.GetText(KeySettings))
	s.exportBtn.SetText(loc.GetText(KeyExportProfile))
	s.dataBtn.SetText(loc.GetText(KeyData))
}

func (s *ProfilesScreen) updateButtons() {
	hasSelection := s.selected != ""
	for _, b := range []*widget.Button{s.duplicateBtn, s.renameBtn, s.deleteBtn, s.settingsBtn, s.exportBtn, s.dataBtn} {
		if hasSelection {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (s *ProfilesScreen) onNewProfile() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(s.ui.loc.GetText(KeyCompoundName))

	dialog.ShowForm(s.ui.loc.GetText(KeyNewProfile), s.ui.loc.GetText(KeySave), s.ui.loc.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(s.ui.loc.GetText(KeyCompoundName), entry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if _, err := s.ui.profiles.Create(entry.Text); err != nil {
				dialog.ShowError(err, s.ui.window)
				return
			}
			s.Refresh()
		}, s.ui.window)
}

func (s *ProfilesScreen) onDuplicate() {
	if s.selected == "" {
		return
	}
	if _, err := s.ui.profiles.Duplicate(s.selected); err != nil {
		dialog.ShowError(err, s.ui.window)
		return
	}
	s.Refresh()
}

func (s *ProfilesScreen) onRename() {
	p, ok := s.currentProfile()
	if !ok {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(p.CompoundName)

	dialog.ShowForm(s.ui.loc.GetText(KeyRenameProfile), s.ui.loc.GetText(KeySave), s.ui.loc.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(s.ui.loc.GetText(KeyCompoundName), entry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := s.ui.profiles.Rename(p.ID, entry.Text); err != nil {
				dialog.ShowError(err, s.ui.window)
				return
			}
			s.Refresh()
		}, s.ui.window)
}

func (s *ProfilesScreen) onDelete() {
	p, ok := s.currentProfile()
	if !ok {
		return
	}

	dialog.ShowConfirm(s.ui.loc.GetText(KeyDeleteProfile), s.ui.loc.GetText(KeyConfirmDelete), func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := s.ui.profiles.Delete(p.ID); err != nil {
			dialog.ShowError(err, s.ui.window)
			return
		}
		s.selected = ""
		s.Refresh()
	}, s.ui.window)
}

func (s *ProfilesScreen) onSettings() {
	p, ok := s.currentProfile()
	if !ok {
		return
	}
	ShowSettingsDialog(s.ui, p)
}

func (s *ProfilesScreen) onExport() {
	p, ok := s.currentProfile()
	if !ok {
		return
	}
	path, err := s.ui.profiles.Export(p.ID)
	if err != nil {
		dialog.ShowError(err, s.ui.window)
		return
	}
	s.ui.showNotification(fmt.Sprintf(s.ui.loc.GetText(KeyProfileSaved), path))
}

func (s *ProfilesScreen) onOpenData() {
	if s.selected == "" {
		return
	}
	s.ui.OpenData(s.selected)
}

func (s *ProfilesScreen) currentProfile() (*model.Profile, bool) {
	if s.selected == "" {
		return nil, false
	}
	return s.ui.profiles.Get(s.selected)
}
