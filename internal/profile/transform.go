package profile

import (
	"fmt"
	"math"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
)

// Transformation names a function applied to both the concentration and the
// response of every measurement before modeling.
type Transformation string

const (
	TransformationNone  Transformation = config.TransformNone
	TransformationLog10 Transformation = config.TransformLog10
	TransformationSqrt  Transformation = config.TransformSqrt
)

// ParseTransformation maps a setting value onto a Transformation. The empty
// string means none; anything unknown is an error.
func ParseTransformation(s string) (Transformation, error) {
	switch s {
	case "", config.TransformNone:
		return TransformationNone, nil
	case config.TransformLog10:
		return TransformationLog10, nil
	case config.TransformSqrt:
		return TransformationSqrt, nil
	}
	return TransformationNone, fmt.Errorf("unknown data transformation: %s", s)
}

// ApplyTransformation returns a copy of rows with the transformation applied
// to concentration and response. Values outside the transformation's domain
// are reported as errors rather than producing NaNs.
func ApplyTransformation(t Transformation, rows []model.Measurement) ([]model.Measurement, error) {
	if t == TransformationNone {
		return rows, nil
	}

	out := make([]model.Measurement, len(rows))
	for i, row := range rows {
		x, err := transformValue(t, row.Concentration)
		if err != nil {
			return nil, fmt.Errorf("series %d level %d: %w", row.Series, row.Level, err)
		}
		y, err := transformValue(t, row.Response)
		if err != nil {
			return nil, fmt.Errorf("series %d level %d: %w", row.Series, row.Level, err)
		}

		out[i] = row
		out[i].Concentration = x
		out[i].Response = y
	}
	return out, nil
}

func transformValue(t Transformation, v float64) (float64, error) {
	switch t {
	case TransformationLog10:
		if v <= 0 {
			return 0, fmt.Errorf("log10 requires a positive value, got %v", v)
		}
		return math.Log10(v), nil
	case TransformationSqrt:
		if v < 0 {
			return 0, fmt.Errorf("sqrt requires a non-negative value, got %v", v)
		}
		return math.Sqrt(v), nil
	}
	return v, nil
}
