package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
	"github.com/GroupeChemia/valexa/internal/profile"
)

// DataScreen edits the selected profile's measurement tables
type DataScreen struct {
	ui *RootUI

	profileID string
	kind      profile.DataKind
	rows      []model.Measurement

	title   *widget.Label
	info    *widget.Label
	kindSel *widget.Select
	table   *widget.Table

	seriesEntry *widget.Entry
	levelEntry  *widget.Entry
	xEntry      *widget.Entry
	yEntry      *widget.Entry

	addBtn     *widget.Button
	removeBtn  *widget.Button
	resolveBtn *widget.Button
	backBtn    *widget.Button

	selectedRow int
	root        *fyne.Container
}

// NewDataScreen creates the data screen
func NewDataScreen(ui *RootUI) *DataScreen {
	s := &DataScreen{ui: ui, kind: profile.DataValidation, selectedRow: -1}

	s.title = widget.NewLabelWithStyle(ui.loc.GetText(KeyData), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.info = widget.NewLabel("")

	s.kindSel = widget.NewSelect(s.kindOptions(), func(string) {
		s.onKindChanged()
	})

	s.table = widget.NewTable(
		func() (int, int) { return len(s.rows) + 1, 4 },
		func() fyne.CanvasObject { return widget.NewLabel(DashPlaceholder) },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(s.headerText(id.Col))
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(s.cellText(id.Row-1, id.Col))
		},
	)
	s.table.OnSelected = func(id widget.TableCellID) {
		if id.Row == 0 {
			s.selectedRow = -1
		} else {
			s.selectedRow = id.Row - 1
		}
	}
	for col := 0; col < 4; col++ {
		s.table.SetColumnWidth(col, DataEntryWidth)
	}

	s.seriesEntry = s.numberEntry(ui.loc.GetText(KeySeries))
	s.levelEntry = s.numberEntry(ui.loc.GetText(KeyLevel))
	s.xEntry = s.numberEntry(ui.loc.GetText(KeyConcentration))
	s.yEntry = s.numberEntry(ui.loc.GetText(KeyResponse))

	s.addBtn = widget.NewButton(ui.loc.GetText(KeyAddRow), s.onAddRow)
	s.removeBtn = widget.NewButton(ui.loc.GetText(KeyRemoveRow), s.onRemoveRow)
	s.resolveBtn = widget.NewButton(ui.loc.GetText(KeyResolve), s.onResolve)
	s.backBtn = widget.NewButton(ui.loc.GetText(KeyBack), func() {
		ui.ShowScreen(ScreenProfiles)
	})

	entryRow := container.NewHBox(s.seriesEntry, s.levelEntry, s.xEntry, s.yEntry, s.addBtn, s.removeBtn)

	s.root = container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, s.backBtn, s.resolveBtn, s.title),
			container.NewHBox(s.kindSel, s.info),
			entryRow,
		),
		nil, nil, nil,
		s.table,
	)

	// selecting fires onKindChanged, so the table must exist first
	s.kindSel.SetSelectedIndex(0)
	return s
}

// Container returns the screen's root object
func (s *DataScreen) Container() fyne.CanvasObject {
	return s.root
}

// SetProfile switches the screen to the given profile
func (s *DataScreen) SetProfile(profileID string) {
	s.profileID = profileID
	s.selectedRow = -1
	s.Refresh()
}

// Refresh reloads the rows for the current profile and kind
func (s *DataScreen) Refresh() {
	p, ok := s.ui.profiles.Get(s.profileID)
	if !ok {
		s.rows = nil
		s.title.SetText(s.ui.loc.GetText(KeyData))
		s.info.SetText("")
		s.table.Refresh()
		return
	}

	if s.kind == profile.DataCalibration {
		s.rows = p.Dataset.Calibration
	} else {
		s.rows = p.Dataset.Validation
	}

	s.title.SetText(s.ui.loc.GetText(KeyData) + MiddleDotSeparator + p.DisplayName())

	info := fmt.Sprintf(s.ui.loc.GetText(KeyDatasetInfo),
		len(s.rows), model.LevelCount(s.rows), model.SeriesCount(s.rows))
	if transform := s.ui.settings.String(p.Group, config.KeyDataTransformation); transform != config.TransformNone {
		info += MiddleDotSeparator + s.ui.loc.SettingLabel(config.KeyDataTransformation) + ": " + transform
	}
	s.info.SetText(info)
	s.table.Refresh()
}

// RefreshTexts updates screen texts after a language change
func (s *DataScreen) RefreshTexts() {
	loc := s.ui.loc
	s.addBtn.SetText(loc.GetText(KeyAddRow))
	s.removeBtn.SetText(loc.GetText(KeyRemoveRow))
	s.resolveBtn.SetText(loc.GetText(KeyResolve))
	s.backBtn.SetText(loc.GetText(KeyBack))
	s.seriesEntry.SetPlaceHolder(loc.GetText(KeySeries))
	s.levelEntry.SetPlaceHolder(loc.GetText(KeyLevel))
	s.xEntry.SetPlaceHolder(loc.GetText(KeyConcentration))
	s.yEntry.SetPlaceHolder(loc.GetText(KeyResponse))
	s.kindSel.Options = s.kindOptions()
	s.kindSel.Refresh()
}

func (s *DataScreen) kindOptions() []string {
	return []string{
		s.ui.loc.GetText(KeyValidation),
		s.ui.loc.GetText(KeyCalibration),
	}
}

func (s *DataScreen) onKindChanged() {
	if s.kindSel.SelectedIndex() == 1 {
		s.kind = profile.DataCalibration
	} else {
		s.kind = profile.DataValidation
	}
	s.selectedRow = -1
	s.Refresh()
}

func (s *DataScreen) headerText(col int) string {
	switch col {
	case 0:
		return s.ui.loc.GetText(KeySeries)
	case 1:
		return s.ui.loc.GetText(KeyLevel)
	case 2:
		return s.ui.loc.GetText(KeyConcentration)
	default:
		return s.ui.loc.GetText(KeyResponse)
	}
}

func (s *DataScreen) cellText(row, col int) string {
	if row >= len(s.rows) {
		return DashPlaceholder
	}
	m := s.rows[row]
	switch col {
	case 0:
		return strconv.Itoa(m.Series)
	case 1:
		return strconv.Itoa(m.Level)
	case 2:
		return strconv.FormatFloat(m.Concentration, 'g', -1, 64)
	default:
		return strconv.FormatFloat(m.Response, 'g', -1, 64)
	}
}

func (s *DataScreen) numberEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

func (s *DataScreen) onAddRow() {
	series, err := strconv.Atoi(s.seriesEntry.Text)
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", s.ui.loc.GetText(KeySeries), err), s.ui.window)
		return
	}
	level, err := strconv.Atoi(s.levelEntry.Text)
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", s.ui.loc.GetText(KeyLevel), err), s.ui.window)
		return
	}
	x, err := strconv.ParseFloat(s.xEntry.Text, 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", s.ui.loc.GetText(KeyConcentration), err), s.ui.window)
		return
	}
	y, err := strconv.ParseFloat(s.yEntry.Text, 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", s.ui.loc.GetText(KeyResponse), err), s.ui.window)
		return
	}

	m := model.NewMeasurement(series, level, x, y)
	if err := s.ui.profiles.AddMeasurement(s.profileID, s.kind, m); err != nil {
		dialog.ShowError(err, s.ui.window)
		return
	}

	s.xEntry.SetText("")
	s.yEntry.SetText("")
	s.Refresh()
}

func (s *DataScreen) onRemoveRow() {
	if s.selectedRow < 0 || s.selectedRow >= len(s.rows) {
		return
	}
	rowID := s.rows[s.selectedRow].ID
	if err := s.ui.profiles.RemoveMeasurement(s.profileID, s.kind, rowID); err != nil {
		dialog.ShowError(err, s.ui.window)
		return
	}
	s.selectedRow = -1
	s.Refresh()
}

func (s *DataScreen) onResolve() {
	if _, err := s.ui.profiles.Resolve(s.profileID); err != nil {
		dialog.ShowError(err, s.ui.window)
		return
	}
	s.ui.showNotification(s.ui.loc.GetText(KeyResolved))
	s.Refresh()
}
