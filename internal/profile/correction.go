package profile

import (
	"errors"
	"fmt"
)

// Correction is the outcome of the recovery check: the average recovery
// ratio, and the correction factor generated when that ratio falls outside
// the configured threshold window.
type Correction struct {
	Ratio   float64 `json:"ratio"`
	Applied bool    `json:"applied"`
	Factor  float64 `json:"factor,omitempty"`
}

// ComputeCorrection computes the average recovery ratio of calculated over
// introduced concentrations. When it lies outside [threshold[0], threshold[1]]
// a correction factor of 1/ratio is generated, rounded to roundTo decimal
// places. A positive forcedValue overrides the computed factor (the ratio
// must still be out of threshold for it to take effect).
func ComputeCorrection(introduced, calculated []float64, threshold []float64, forcedValue float64, roundTo int) (Correction, error) {
	if len(introduced) == 0 {
		return Correction{}, errors.New("no concentration values")
	}
	if len(introduced) != len(calculated) {
		return Correction{}, fmt.Errorf("introduced and calculated lengths differ: %d vs %d", len(introduced), len(calculated))
	}
	if len(threshold) != 2 {
		return Correction{}, fmt.Errorf("correction threshold needs exactly two bounds, got %d", len(threshold))
	}

	var sum float64
	for i, x := range introduced {
		if x == 0 {
			return Correction{}, fmt.Errorf("introduced concentration at index %d is zero", i)
		}
		sum += calculated[i] / x
	}
	ratio := roundDecimals(sum/float64(len(introduced)), 2)

	c := Correction{Ratio: ratio}
	if ratio < threshold[0] || ratio > threshold[1] {
		if forcedValue > 0 {
			ratio = 1 / forcedValue
		}
		c.Applied = true
		c.Factor = roundDecimals(1/ratio, roundTo)
	}
	return c, nil
}

// ApplyCorrection multiplies every calculated concentration by the factor of
// an applied correction. Without an applied correction the input is returned
// unchanged.
func ApplyCorrection(c Correction, calculated []float64) []float64 {
	if !c.Applied {
		return calculated
	}
	out := make([]float64, len(calculated))
	for i, v := range calculated {
		out[i] = v * c.Factor
	}
	return out
}
