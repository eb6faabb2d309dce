package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
)

// settingsForm collects the widgets bound to one profile's settings group
type settingsForm struct {
	ui     *RootUI
	group  string
	labels config.Labels

	toleranceLimit   *widget.Entry
	acceptanceLimit  *widget.Entry
	absoluteSelect   *widget.Select
	quantityUnits    *widget.Entry
	rollingSelect    *widget.Select
	rollingLimit     *widget.Entry
	correctionSelect *widget.Select
	thresholdLow     *widget.Entry
	thresholdHigh    *widget.Entry
	forcedValue      *widget.Entry
	roundTo          *widget.Entry
	modelChecks      *widget.CheckGroup
	transformSelect  *widget.Select
	sigFigure        *widget.Entry
	medianSelect     *widget.Select
	lodSelect        *widget.Select
	millerSelect     *widget.Select
}

// ShowSettingsDialog opens the per-profile settings dialog
func ShowSettingsDialog(ui *RootUI, p *model.Profile) {
	f := &settingsForm{
		ui:     ui,
		group:  p.Group,
		labels: ui.loc.BoolLabels(),
	}
	f.build()

	content := container.NewVScroll(container.NewVBox(
		f.sectionTitle(KeySectionGeneral),
		f.generalSection(),
		f.sectionTitle(KeySectionCorrection),
		f.correctionSection(),
		f.sectionTitle(KeySectionModelization),
		f.modelizationSection(),
		f.sectionTitle(KeySectionAdvanced),
		f.advancedSection(),
	))
	content.SetMinSize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))

	title := ui.loc.GetText(KeySettings) + MiddleDotSeparator + p.DisplayName()
	d := dialog.NewCustomConfirm(title, ui.loc.GetText(KeySave), ui.loc.GetText(KeyCancel), content,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := f.apply(); err != nil {
				dialog.ShowError(err, ui.window)
				return
			}
			ui.showNotification(ui.loc.GetText(KeySettingsSaved))
		}, ui.window)
	d.Show()
}

func (f *settingsForm) build() {
	s := f.ui.settings
	g := f.group

	f.toleranceLimit = floatEntry(s.Float(g, config.KeyToleranceLimit))
	f.acceptanceLimit = floatEntry(s.Float(g, config.KeyAcceptanceLimit))
	f.absoluteSelect = f.boolSelect(s.BoolLabel(g, config.KeyAcceptanceAbsolute, f.labels))
	f.quantityUnits = widget.NewEntry()
	f.quantityUnits.SetText(s.String(g, config.KeyQuantityUnits))
	f.rollingSelect = f.boolSelect(s.BoolLabel(g, config.KeyRollingData, f.labels))
	f.rollingLimit = intEntry(s.Int(g, config.KeyRollingLimit))

	f.correctionSelect = f.boolSelect(s.BoolLabel(g, config.KeyCorrectionAllow, f.labels))
	threshold := s.FloatPair(g, config.KeyCorrectionThreshold)
	f.thresholdLow = floatEntry(threshold[0])
	f.thresholdHigh = floatEntry(threshold[1])
	f.forcedValue = floatEntry(s.Float(g, config.KeyCorrectionForcedValue))
	f.roundTo = intEntry(s.Int(g, config.KeyCorrectionRoundTo))

	f.modelChecks = widget.NewCheckGroup(model.ModelNames(), nil)
	f.modelChecks.SetSelected(s.StringList(g, config.KeyModelToTest))
	f.transformSelect = widget.NewSelect(transformOptions(), nil)
	f.transformSelect.SetSelected(s.String(g, config.KeyDataTransformation))

	f.sigFigure = intEntry(s.Int(g, config.KeySignificantFigure))
	f.medianSelect = f.boolSelect(s.BoolLabel(g, config.KeyUseMedian, f.labels))
	f.lodSelect = f.boolSelect(s.BoolLabel(g, config.KeyLODAllowed, f.labels))
	f.millerSelect = f.boolSelect(s.BoolLabel(g, config.KeyLODForceMiller, f.labels))
}

func (f *settingsForm) generalSection() fyne.CanvasObject {
	return widget.NewForm(
		f.item(config.KeyToleranceLimit, f.toleranceLimit),
		f.item(config.KeyAcceptanceLimit, f.acceptanceLimit),
		f.item(config.KeyAcceptanceAbsolute, f.absoluteSelect),
		f.item(config.KeyQuantityUnits, f.quantityUnits),
		f.item(config.KeyRollingData, f.rollingSelect),
		f.item(config.KeyRollingLimit, f.rollingLimit),
	)
}

func (f *settingsForm) correctionSection() fyne.CanvasObject {
	return widget.NewForm(
		f.item(config.KeyCorrectionAllow, f.correctionSelect),
		f.item(config.KeyCorrectionThreshold, container.NewGridWithColumns(2, f.thresholdLow, f.thresholdHigh)),
		f.item(config.KeyCorrectionForcedValue, f.forcedValue),
		f.item(config.KeyCorrectionRoundTo, f.roundTo),
	)
}

func (f *settingsForm) modelizationSection() fyne.CanvasObject {
	return widget.NewForm(
		f.item(config.KeyModelToTest, f.modelChecks),
		f.item(config.KeyDataTransformation, f.transformSelect),
	)
}

func (f *settingsForm) advancedSection() fyne.CanvasObject {
	return widget.NewForm(
		f.item(config.KeySignificantFigure, f.sigFigure),
		f.item(config.KeyUseMedian, f.medianSelect),
		f.item(config.KeyLODAllowed, f.lodSelect),
		f.item(config.KeyLODForceMiller, f.millerSelect),
	)
}

// apply writes the form values back to the settings group
func (f *settingsForm) apply() error {
	s := f.ui.settings
	g := f.group

	tolerance, err := parseFloat(f.toleranceLimit.Text, f.ui.loc.SettingLabel(config.KeyToleranceLimit))
	if err != nil {
		return err
	}
	acceptance, err := parseFloat(f.acceptanceLimit.Text, f.ui.loc.SettingLabel(config.KeyAcceptanceLimit))
	if err != nil {
		return err
	}
	rollingLimit, err := parseInt(f.rollingLimit.Text, f.ui.loc.SettingLabel(config.KeyRollingLimit))
	if err != nil {
		return err
	}
	low, err := parseFloat(f.thresholdLow.Text, f.ui.loc.SettingLabel(config.KeyCorrectionThreshold))
	if err != nil {
		return err
	}
	high, err := parseFloat(f.thresholdHigh.Text, f.ui.loc.SettingLabel(config.KeyCorrectionThreshold))
	if err != nil {
		return err
	}
	forced, err := parseFloat(f.forcedValue.Text, f.ui.loc.SettingLabel(config.KeyCorrectionForcedValue))
	if err != nil {
		return err
	}
	roundTo, err := parseInt(f.roundTo.Text, f.ui.loc.SettingLabel(config.KeyCorrectionRoundTo))
	if err != nil {
		return err
	}
	sigFigure, err := parseInt(f.sigFigure.Text, f.ui.loc.SettingLabel(config.KeySignificantFigure))
	if err != nil {
		return err
	}

	s.SetFloat(g, config.KeyToleranceLimit, tolerance)
	s.SetFloat(g, config.KeyAcceptanceLimit, acceptance)
	s.SetBoolLabel(g, config.KeyAcceptanceAbsolute, f.absoluteSelect.Selected, f.labels)
	s.SetString(g, config.KeyQuantityUnits, strings.TrimSpace(f.quantityUnits.Text))
	s.SetBoolLabel(g, config.KeyRollingData, f.rollingSelect.Selected, f.labels)
	s.SetInt(g, config.KeyRollingLimit, rollingLimit)
	s.SetBoolLabel(g, config.KeyCorrectionAllow, f.correctionSelect.Selected, f.labels)
	s.SetFloatPair(g, config.KeyCorrectionThreshold, []float64{low, high})
	s.SetFloat(g, config.KeyCorrectionForcedValue, forced)
	s.SetInt(g, config.KeyCorrectionRoundTo, roundTo)
	s.SetStringList(g, config.KeyModelToTest, f.modelChecks.Selected)
	s.SetString(g, config.KeyDataTransformation, f.transformSelect.Selected)
	s.SetInt(g, config.KeySignificantFigure, sigFigure)
	s.SetBoolLabel(g, config.KeyUseMedian, f.medianSelect.Selected, f.labels)
	s.SetBoolLabel(g, config.KeyLODAllowed, f.lodSelect.Selected, f.labels)
	s.SetBoolLabel(g, config.KeyLODForceMiller, f.millerSelect.Selected, f.labels)
	return nil
}

func (f *settingsForm) sectionTitle(key string) fyne.CanvasObject {
	return widget.NewLabelWithStyle(f.ui.loc.GetText(key), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func (f *settingsForm) item(key string, w fyne.CanvasObject) *widget.FormItem {
	return widget.NewFormItem(f.ui.loc.SettingLabel(key), w)
}

func (f *settingsForm) boolSelect(current string) *widget.Select {
	sel := widget.NewSelect(f.labels.Options(), nil)
	sel.SetSelected(current)
	return sel
}

func transformOptions() []string {
	if def, ok := config.Lookup(config.KeyDataTransformation); ok && len(def.Options) > 0 {
		return def.Options
	}
	return []string{config.TransformNone}
}

func floatEntry(v float64) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.FormatFloat(v, 'g', -1, 64))
	return entry
}

func intEntry(v int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(v))
	return entry
}

func parseFloat(text, label string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	return v, nil
}

func parseInt(text, label string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	return v, nil
}
