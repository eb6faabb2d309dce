package ui

import "github.com/GroupeChemia/valexa/internal/config"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLoadingProfiles = "loading_profiles"
	KeyProfiles        = "profiles"
	KeyData            = "data"
	KeySettings        = "settings"
	KeyLanguage        = "language"

	KeyNewProfile       = "new_profile"
	KeyDuplicateProfile = "duplicate_profile"
	KeyDeleteProfile    = "delete_profile"
	KeyRenameProfile    = "rename_profile"
	KeyImportProfile    = "import_profile"
	KeyExportProfile    = "export_profile"
	KeyCompoundName     = "compound_name"
	KeyNoProfiles       = "no_profiles"
	KeyConfirmDelete    = "confirm_delete"

	KeyAddRow        = "add_row"
	KeyRemoveRow     = "remove_row"
	KeySeries        = "series"
	KeyLevel         = "level"
	KeyConcentration = "concentration"
	KeyResponse      = "response"
	KeyValidation    = "validation"
	KeyCalibration   = "calibration"
	KeyDatasetInfo   = "dataset_info"
	KeyResolve       = "resolve"
	KeyResolved      = "resolved"

	KeySectionGeneral      = "section_general"
	KeySectionCorrection   = "section_correction"
	KeySectionModelization = "section_modelization"
	KeySectionAdvanced     = "section_advanced"

	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyBack          = "back"
	KeySettingsSaved = "settings_saved"
	KeyProfileSaved  = "profile_saved"

	KeyLabelYes = "label_yes"
	KeyLabelNo  = "label_no"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// BoolLabels returns the localized display-label pair for boolean settings.
func (l *Localization) BoolLabels() config.Labels {
	return config.Labels{
		True:  l.GetText(KeyLabelYes),
		False: l.GetText(KeyLabelNo),
	}
}

// SettingLabel returns the localized form label of a settings-schema label key.
func (l *Localization) SettingLabel(labelKey string) string {
	return l.GetText("setting_" + labelKey)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Valexa",
		KeyLoadingProfiles: "Loading profiles...",
		KeyProfiles:        "Profiles",
		KeyData:            "Data",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",

		KeyNewProfile:       "New Profile",
		KeyDuplicateProfile: "Duplicate",
		KeyDeleteProfile:    "Delete",
		KeyRenameProfile:    "Rename",
		KeyImportProfile:    "Import...",
		KeyExportProfile:    "Export",
		KeyCompoundName:     "Compound Name",
		KeyNoProfiles:       "No profiles yet. Create one to get started.",
		KeyConfirmDelete:    "Delete this profile and all of its settings?",

		KeyAddRow:        "Add Row",
		KeyRemoveRow:     "Remove Row",
		KeySeries:        "Series",
		KeyLevel:         "Level",
		KeyConcentration: "Concentration (x)",
		KeyResponse:      "Response (y)",
		KeyValidation:    "Validation",
		KeyCalibration:   "Calibration",
		KeyDatasetInfo:   "%d points, %d levels, %d series",
		KeyResolve:       "Resolve",
		KeyResolved:      "Configuration resolved",

		KeySectionGeneral:      "General",
		KeySectionCorrection:   "Correction",
		KeySectionModelization: "Modelization",
		KeySectionAdvanced:     "Advanced",

		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyBack:          "Back",
		KeySettingsSaved: "Settings saved successfully!",
		KeyProfileSaved:  "Profile saved to %s",

		KeyLabelYes: "Yes",
		KeyLabelNo:  "No",

		"setting_" + config.KeyToleranceLimit:        "Tolerance Limit (%)",
		"setting_" + config.KeyAcceptanceLimit:       "Acceptance Limit",
		"setting_" + config.KeyAcceptanceAbsolute:    "Absolute Acceptance",
		"setting_" + config.KeyQuantityUnits:         "Quantity Units",
		"setting_" + config.KeyRollingData:           "Rolling Data",
		"setting_" + config.KeyRollingLimit:          "Rolling Data Limit",
		"setting_" + config.KeyModelToTest:           "Models to Test",
		"setting_" + config.KeyCorrectionAllow:       "Allow Correction",
		"setting_" + config.KeyCorrectionThreshold:   "Correction Threshold",
		"setting_" + config.KeyCorrectionForcedValue: "Forced Correction Value",
		"setting_" + config.KeyCorrectionRoundTo:     "Round Correction To",
		"setting_" + config.KeySignificantFigure:     "Significant Figures",
		"setting_" + config.KeyDataTransformation:    "Data Transformation",
		"setting_" + config.KeyUseMedian:             "Use Median",
		"setting_" + config.KeyLODAllowed:            "Allow LOD",
		"setting_" + config.KeyLODForceMiller:        "Force Miller LOD",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:        "Valexa",
		KeyLoadingProfiles: "Chargement des profils...",
		KeyProfiles:        "Profils",
		KeyData:            "Données",
		KeySettings:        "Paramètres",
		KeyLanguage:        "Langue",

		KeyNewProfile:       "Nouveau profil",
		KeyDuplicateProfile: "Dupliquer",
		KeyDeleteProfile:    "Supprimer",
		KeyRenameProfile:    "Renommer",
		KeyImportProfile:    "Importer...",
		KeyExportProfile:    "Exporter",
		KeyCompoundName:     "Nom du composé",
		KeyNoProfiles:       "Aucun profil. Créez-en un pour commencer.",
		KeyConfirmDelete:    "Supprimer ce profil et tous ses paramètres?",

		KeyAddRow:        "Ajouter une ligne",
		KeyRemoveRow:     "Supprimer la ligne",
		KeySeries:        "Série",
		KeyLevel:         "Niveau",
		KeyConcentration: "Concentration (x)",
		KeyResponse:      "Réponse (y)",
		KeyValidation:    "Validation",
		KeyCalibration:   "Calibration",
		KeyDatasetInfo:   "%d points, %d niveaux, %d séries",
		KeyResolve:       "Résoudre",
		KeyResolved:      "Configuration résolue",

		KeySectionGeneral:      "Général",
		KeySectionCorrection:   "Correction",
		KeySectionModelization: "Modélisation",
		KeySectionAdvanced:     "Avancé",

		KeySave:          "Enregistrer",
		KeyCancel:        "Annuler",
		KeyBack:          "Retour",
		KeySettingsSaved: "Paramètres enregistrés!",
		KeyProfileSaved:  "Profil enregistré dans %s",

		KeyLabelYes: "Oui",
		KeyLabelNo:  "Non",

		"setting_" + config.KeyToleranceLimit:        "Limite de tolérance (%)",
		"setting_" + config.KeyAcceptanceLimit:       "Limite d'acceptation",
		"setting_" + config.KeyAcceptanceAbsolute:    "Acceptation absolue",
		"setting_" + config.KeyQuantityUnits:         "Unités de quantité",
		"setting_" + config.KeyRollingData:           "Données glissantes",
		"setting_" + config.KeyRollingLimit:          "Limite des données glissantes",
		"setting_" + config.KeyModelToTest:           "Modèles à tester",
		"setting_" + config.KeyCorrectionAllow:       "Autoriser la correction",
		"setting_" + config.KeyCorrectionThreshold:   "Seuil de correction",
		"setting_" + config.KeyCorrectionForcedValue: "Valeur de correction forcée",
		"setting_" + config.KeyCorrectionRoundTo:     "Arrondir la correction à",
		"setting_" + config.KeySignificantFigure:     "Chiffres significatifs",
		"setting_" + config.KeyDataTransformation:    "Transformation des données",
		"setting_" + config.KeyUseMedian:             "Utiliser la médiane",
		"setting_" + config.KeyLODAllowed:            "Autoriser la LOD",
		"setting_" + config.KeyLODForceMiller:        "Forcer la LOD de Miller",
	}
}
