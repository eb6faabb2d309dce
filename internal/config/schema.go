package config

// ValueType identifies the semantic type of a setting value.
type ValueType string

const (
	TypeBool       ValueType = "bool"
	TypeInt        ValueType = "int"
	TypeFloat      ValueType = "float"
	TypeString     ValueType = "string"
	TypeStringList ValueType = "string_list"
	TypeFloatPair  ValueType = "float_pair"
)

// Profile setting keys. One group holds the settings of one validation profile.
const (
	KeyToleranceLimit        = "tolerance_limit"
	KeyAcceptanceLimit       = "acceptance_limit"
	KeyAcceptanceAbsolute    = "acceptance_absolute"
	KeyQuantityUnits         = "quantity_units"
	KeyRollingData           = "rolling_data"
	KeyRollingLimit          = "rolling_limit"
	KeyModelToTest           = "model_to_test"
	KeyCorrectionAllow       = "correction_allow"
	KeyCorrectionThreshold   = "correction_threshold"
	KeyCorrectionForcedValue = "correction_forced_value"
	KeyCorrectionRoundTo     = "correction_round_to"
	KeySignificantFigure     = "significant_figure"
	KeyDataTransformation    = "data_transformation"
	KeyUseMedian             = "use_median"
	KeyLODAllowed            = "lod_allowed"
	KeyLODForceMiller        = "lod_force_miller"
)

// Application-level setting keys (group AppGroup).
const (
	AppGroup = "app"

	KeyLanguage    = "app_language"
	KeyLastProfile = "last_profile"
)

// Data transformation option values for KeyDataTransformation.
const (
	TransformNone  = "none"
	TransformLog10 = "log10"
	TransformSqrt  = "sqrt"
)

// Default values
const (
	DefaultToleranceLimit    = 80.0
	DefaultAcceptanceLimit   = 20.0
	DefaultRollingLimit      = 3
	DefaultCorrectionRoundTo = 1
	DefaultSignificantFigure = 4
	DefaultLanguage          = "system"
)

// DefaultCorrectionThreshold is the recovery-ratio window outside which a
// correction factor is generated.
var DefaultCorrectionThreshold = []float64{0.9, 1.1}

// Definition declares one profile setting: its key, value type, default and
// optional constraints. LabelKey is the localization key of the form label
// shown for the setting.
type Definition struct {
	Key      string    `json:"key"`
	Type     ValueType `json:"type"`
	Default  any       `json:"default"`
	LabelKey string    `json:"label_key"`
	Min      float64   `json:"min,omitempty"`
	Max      float64   `json:"max,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// HasRange reports whether the definition carries a numeric bound.
func (d Definition) HasRange() bool {
	return d.Min < d.Max
}

var schema = []Definition{
	{Key: KeyToleranceLimit, Type: TypeFloat, Default: DefaultToleranceLimit, LabelKey: KeyToleranceLimit, Min: 0, Max: 100},
	{Key: KeyAcceptanceLimit, Type: TypeFloat, Default: DefaultAcceptanceLimit, LabelKey: KeyAcceptanceLimit, Min: 0, Max: 100},
	{Key: KeyAcceptanceAbsolute, Type: TypeBool, Default: false, LabelKey: KeyAcceptanceAbsolute},
	{Key: KeyQuantityUnits, Type: TypeString, Default: "", LabelKey: KeyQuantityUnits},
	{Key: KeyRollingData, Type: TypeBool, Default: false, LabelKey: KeyRollingData},
	{Key: KeyRollingLimit, Type: TypeInt, Default: DefaultRollingLimit, LabelKey: KeyRollingLimit, Min: 2, Max: 10},
	{Key: KeyModelToTest, Type: TypeStringList, Default: []string{}, LabelKey: KeyModelToTest},
	{Key: KeyCorrectionAllow, Type: TypeBool, Default: false, LabelKey: KeyCorrectionAllow},
	{Key: KeyCorrectionThreshold, Type: TypeFloatPair, Default: DefaultCorrectionThreshold, LabelKey: KeyCorrectionThreshold},
	{Key: KeyCorrectionForcedValue, Type: TypeFloat, Default: 0.0, LabelKey: KeyCorrectionForcedValue},
	{Key: KeyCorrectionRoundTo, Type: TypeInt, Default: DefaultCorrectionRoundTo, LabelKey: KeyCorrectionRoundTo, Min: 0, Max: 6},
	{Key: KeySignificantFigure, Type: TypeInt, Default: DefaultSignificantFigure, LabelKey: KeySignificantFigure, Min: 1, Max: 10},
	{Key: KeyDataTransformation, Type: TypeString, Default: TransformNone, LabelKey: KeyDataTransformation, Options: []string{TransformNone, TransformLog10, TransformSqrt}},
	{Key: KeyUseMedian, Type: TypeBool, Default: false, LabelKey: KeyUseMedian},
	{Key: KeyLODAllowed, Type: TypeBool, Default: false, LabelKey: KeyLODAllowed},
	{Key: KeyLODForceMiller, Type: TypeBool, Default: false, LabelKey: KeyLODForceMiller},
}

var schemaByKey = func() map[string]Definition {
	m := make(map[string]Definition, len(schema))
	for _, def := range schema {
		m[def.Key] = def
	}
	return m
}()

// Schema returns the declared settings table in display order. The returned
// slice is a copy and may be reordered by callers.
func Schema() []Definition {
	out := make([]Definition, len(schema))
	copy(out, schema)
	return out
}

// Lookup returns the definition of a setting key.
func Lookup(key string) (Definition, bool) {
	def, ok := schemaByKey[key]
	return def, ok
}

// DefaultFor returns the declared default for a setting key, or nil for an
// unknown key.
func DefaultFor(key string) any {
	if def, ok := schemaByKey[key]; ok {
		return def.Default
	}
	return nil
}
