package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
)

// Request is one validation configuration as received over the CLI stream:
// the compound's settings plus its raw data tables.
type Request struct {
	CompoundName          string
	ToleranceLimit        float64
	AcceptanceLimit       float64
	AcceptanceAbsolute    bool
	QuantityUnits         string
	RollingData           bool
	RollingLimit          int
	ModelToTest           []string
	CorrectionAllow       bool
	CorrectionThreshold   []float64
	CorrectionForcedValue float64
	CorrectionRoundTo     int
	SignificantFigure     int
	DataTransformation    Transformation
	UseMedian             bool
	LODAllowed            bool
	LODForceMiller        bool
	Validation            []WideRow
	Calibration           []WideRow
}

// ResolvedRow is one normalized measurement of a resolved configuration.
type ResolvedRow struct {
	Series int     `json:"series"`
	Level  int     `json:"level"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Resolved is the runnable configuration produced from a Request: defaults
// applied, models filtered against the catalog and the available calibration
// levels, data normalized, transformed and rounded. When correction is
// allowed, Correction carries the recovery check's outcome and any applied
// factor has already been folded into the validation responses.
type Resolved struct {
	CompoundName          string        `json:"compound_name"`
	ToleranceLimit        float64       `json:"tolerance_limit"`
	AcceptanceLimit       float64       `json:"acceptance_limit"`
	AcceptanceAbsolute    bool          `json:"acceptance_absolute"`
	QuantityUnits         string        `json:"quantity_units,omitempty"`
	RollingData           bool          `json:"rolling_data"`
	RollingLimit          int           `json:"rolling_limit"`
	ModelToTest           []string      `json:"model_to_test"`
	CorrectionAllow       bool          `json:"correction_allow"`
	CorrectionThreshold   []float64     `json:"correction_threshold"`
	CorrectionForcedValue float64       `json:"correction_forced_value,omitempty"`
	CorrectionRoundTo     int           `json:"correction_round_to"`
	SignificantFigure     int           `json:"significant_figure"`
	DataTransformation    string        `json:"data_transformation"`
	UseMedian             bool          `json:"use_median"`
	LODAllowed            bool          `json:"lod_allowed"`
	LODForceMiller        bool          `json:"lod_force_miller"`
	Correction            *Correction   `json:"correction,omitempty"`
	Status                string        `json:"status"`
	Validation            []ResolvedRow `json:"validation_data"`
	Calibration           []ResolvedRow `json:"calibration_data,omitempty"`
}

// ParseRequest builds a Request from a raw JSON envelope, applying schema
// defaults for absent fields. model_to_test accepts a single name or a list,
// as the original configuration format does.
func ParseRequest(raw []byte) (*Request, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("request is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, errors.New("request must be a JSON object")
	}

	r := &Request{
		CompoundName:          root.Get("compound_name").String(),
		ToleranceLimit:        floatOrDefault(root.Get("tolerance_limit"), config.KeyToleranceLimit),
		AcceptanceLimit:       floatOrDefault(root.Get("acceptance_limit"), config.KeyAcceptanceLimit),
		AcceptanceAbsolute:    root.Get("acceptance_absolute").Bool(),
		QuantityUnits:         root.Get("quantity_units").String(),
		RollingData:           root.Get("rolling_data").Bool(),
		RollingLimit:          intOrDefault(root.Get("rolling_limit"), config.KeyRollingLimit),
		CorrectionAllow:       root.Get("correction_allow").Bool(),
		CorrectionForcedValue: root.Get("correction_forced_value").Float(),
		CorrectionRoundTo:     intOrDefault(root.Get("correction_round_to"), config.KeyCorrectionRoundTo),
		SignificantFigure:     intOrDefault(root.Get("significant_figure"), config.KeySignificantFigure),
		UseMedian:             root.Get("use_median").Bool(),
		LODAllowed:            root.Get("lod_allowed").Bool(),
		LODForceMiller:        root.Get("lod_force_miller").Bool(),
	}

	transformation, err := ParseTransformation(root.Get("data_transformation").String())
	if err != nil {
		return nil, err
	}
	r.DataTransformation = transformation

	if models := root.Get("model_to_test"); models.Exists() {
		if models.IsArray() {
			for _, m := range models.Array() {
				r.ModelToTest = append(r.ModelToTest, m.String())
			}
		} else if models.Type == gjson.String {
			r.ModelToTest = []string{models.String()}
		}
	}

	if threshold := root.Get("correction_threshold"); threshold.IsArray() {
		for _, bound := range threshold.Array() {
			r.CorrectionThreshold = append(r.CorrectionThreshold, bound.Float())
		}
	}
	if len(r.CorrectionThreshold) != 2 {
		r.CorrectionThreshold = append([]float64(nil), config.DefaultCorrectionThreshold...)
	}

	r.Validation = parseWideRows(root.Get("data.validation"))
	r.Calibration = parseWideRows(root.Get("data.calibration"))

	return r, nil
}

// parseWideRows reads one data table. Each row object carries series, level
// and measurement columns named x/x1..xn and y/y1..yn; bare "x" and "y"
// count as the first column.
func parseWideRows(table gjson.Result) []WideRow {
	if !table.IsArray() {
		return nil
	}

	var rows []WideRow
	for _, entry := range table.Array() {
		row := WideRow{
			Series: int(entry.Get("series").Int()),
			Level:  int(entry.Get("level").Int()),
		}

		xCols := make(map[int]float64)
		yCols := make(map[int]float64)
		entry.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if idx, ok := columnIndex(name, "x"); ok {
				xCols[idx] = value.Float()
			} else if idx, ok := columnIndex(name, "y"); ok {
				yCols[idx] = value.Float()
			}
			return true
		})

		row.X = collectColumns(xCols)
		row.Y = collectColumns(yCols)
		rows = append(rows, row)
	}
	return rows
}

// columnIndex parses "x" as column 1 and "x<N>" as column N.
func columnIndex(name, prefix string) (int, bool) {
	if name == prefix {
		return 1, true
	}
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func collectColumns(cols map[int]float64) []float64 {
	if len(cols) == 0 {
		return nil
	}
	max := 0
	for idx := range cols {
		if idx > max {
			max = idx
		}
	}
	out := make([]float64, 0, len(cols))
	for idx := 1; idx <= max; idx++ {
		if v, ok := cols[idx]; ok {
			out = append(out, v)
		}
	}
	return out
}

func floatOrDefault(v gjson.Result, key string) float64 {
	if v.Exists() && v.Type != gjson.Null {
		return v.Float()
	}
	def, _ := config.DefaultFor(key).(float64)
	return def
}

func intOrDefault(v gjson.Result, key string) int {
	if v.Exists() && v.Type != gjson.Null {
		return int(v.Int())
	}
	def, _ := config.DefaultFor(key).(int)
	return def
}

// Resolve validates the request against the declared schema and the model
// catalog and produces the runnable configuration.
func (r *Request) Resolve() (*Resolved, error) {
	if err := r.validateRanges(); err != nil {
		return nil, err
	}

	validation := Normalize(r.Validation)
	if len(validation) < model.MinimumValidationPoints {
		return nil, fmt.Errorf("at least %d validation points are required, got %d",
			model.MinimumValidationPoints, len(validation))
	}
	calibration := Normalize(r.Calibration)

	validation, err := ApplyTransformation(r.DataTransformation, validation)
	if err != nil {
		return nil, fmt.Errorf("validation data: %w", err)
	}
	calibration, err = ApplyTransformation(r.DataTransformation, calibration)
	if err != nil {
		return nil, fmt.Errorf("calibration data: %w", err)
	}

	models, err := r.selectModels(calibration)
	if err != nil {
		return nil, err
	}

	dataset := model.Dataset{Validation: validation, Calibration: calibration}
	dataset.SortByConcentration()

	var correction *Correction
	if r.CorrectionAllow {
		introduced := make([]float64, len(dataset.Validation))
		calculated := make([]float64, len(dataset.Validation))
		for i, row := range dataset.Validation {
			introduced[i] = row.Concentration
			calculated[i] = row.Response
		}

		c, err := ComputeCorrection(introduced, calculated, r.CorrectionThreshold,
			r.CorrectionForcedValue, r.CorrectionRoundTo)
		if err != nil {
			return nil, fmt.Errorf("recovery check: %w", err)
		}
		for i, v := range ApplyCorrection(c, calculated) {
			dataset.Validation[i].Response = v
		}
		correction = &c
	}

	resolved := &Resolved{
		CompoundName:          r.CompoundName,
		ToleranceLimit:        r.ToleranceLimit,
		AcceptanceLimit:       r.AcceptanceLimit,
		AcceptanceAbsolute:    r.AcceptanceAbsolute,
		QuantityUnits:         r.QuantityUnits,
		RollingData:           r.RollingData,
		RollingLimit:          r.RollingLimit,
		ModelToTest:           models,
		CorrectionAllow:       r.CorrectionAllow,
		CorrectionThreshold:   r.CorrectionThreshold,
		CorrectionForcedValue: r.CorrectionForcedValue,
		CorrectionRoundTo:     r.CorrectionRoundTo,
		SignificantFigure:     r.SignificantFigure,
		DataTransformation:    string(r.DataTransformation),
		UseMedian:             r.UseMedian,
		LODAllowed:            r.LODAllowed,
		LODForceMiller:        r.LODForceMiller,
		Correction:            correction,
		Status:                model.ProfileStatusReady.String(),
		Validation:            resolveRows(dataset.Validation, r.SignificantFigure),
		Calibration:           resolveRows(dataset.Calibration, r.SignificantFigure),
	}
	return resolved, nil
}

func (r *Request) validateRanges() error {
	checks := []struct {
		key   string
		value float64
	}{
		{config.KeyToleranceLimit, r.ToleranceLimit},
		{config.KeyAcceptanceLimit, r.AcceptanceLimit},
		{config.KeyRollingLimit, float64(r.RollingLimit)},
		{config.KeySignificantFigure, float64(r.SignificantFigure)},
		{config.KeyCorrectionRoundTo, float64(r.CorrectionRoundTo)},
	}

	for _, check := range checks {
		def, ok := config.Lookup(check.key)
		if !ok || !def.HasRange() {
			continue
		}
		if check.value < def.Min || check.value > def.Max {
			return fmt.Errorf("%s %v is outside [%v, %v]", check.key, check.value, def.Min, def.Max)
		}
	}

	if len(r.CorrectionThreshold) == 2 && r.CorrectionThreshold[0] > r.CorrectionThreshold[1] {
		return fmt.Errorf("correction threshold bounds are inverted: %v", r.CorrectionThreshold)
	}
	return nil
}

// selectModels expands an empty selection to the whole catalog, rejects
// unknown names, and drops models that need more calibration levels than the
// dataset provides.
func (r *Request) selectModels(calibration []model.Measurement) ([]string, error) {
	names := r.ModelToTest
	if len(names) == 0 {
		names = model.ModelNames()
	}

	levels := model.LevelCount(calibration)

	var selected []string
	for _, name := range names {
		m, ok := model.ModelByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown model: %s", name)
		}
		if len(calibration) > 0 && levels < m.MinPoints {
			continue
		}
		selected = append(selected, name)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no selected model can be fitted with %d calibration levels", levels)
	}
	return selected, nil
}

func resolveRows(rows []model.Measurement, sigfig int) []ResolvedRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]ResolvedRow, len(rows))
	for i, row := range rows {
		out[i] = ResolvedRow{
			Series: row.Series,
			Level:  row.Level,
			X:      RoundSigfig(row.Concentration, sigfig),
			Y:      RoundSigfig(row.Response, sigfig),
		}
	}
	return out
}
