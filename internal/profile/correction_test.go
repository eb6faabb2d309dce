package profile

import (
	"math"
	"testing"
)

func TestComputeCorrectionWithinThreshold(t *testing.T) {
	introduced := []float64{100, 200, 300}
	calculated := []float64{98, 202, 297}

	c, err := ComputeCorrection(introduced, calculated, []float64{0.9, 1.1}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Applied {
		t.Error("Recovery within threshold should not generate a correction")
	}
	if c.Factor != 0 {
		t.Errorf("Unapplied correction should carry no factor, got %v", c.Factor)
	}
}

func TestComputeCorrectionLowRecovery(t *testing.T) {
	// Recovery around 0.83 is outside [0.9, 1.1] and yields a factor of 1.2.
	introduced := []float64{100, 200, 300}
	calculated := []float64{83.3, 166.7, 250.0}

	c, err := ComputeCorrection(introduced, calculated, []float64{0.9, 1.1}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.Applied {
		t.Fatal("Recovery below threshold should generate a correction")
	}
	if math.Abs(c.Ratio-0.83) > 1e-12 {
		t.Errorf("Expected ratio 0.83, got %v", c.Ratio)
	}
	if math.Abs(c.Factor-1.2) > 1e-12 {
		t.Errorf("Expected correction factor 1.2, got %v", c.Factor)
	}
}

func TestComputeCorrectionForcedValue(t *testing.T) {
	introduced := []float64{100, 100}
	calculated := []float64{80, 80}

	c, err := ComputeCorrection(introduced, calculated, []float64{0.9, 1.1}, 1.5, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.Applied {
		t.Fatal("Out-of-threshold recovery should apply the forced value")
	}
	if math.Abs(c.Factor-1.5) > 1e-12 {
		t.Errorf("Forced factor should be 1.5, got %v", c.Factor)
	}
}

func TestComputeCorrectionForcedValueIgnoredInThreshold(t *testing.T) {
	introduced := []float64{100}
	calculated := []float64{100}

	c, err := ComputeCorrection(introduced, calculated, []float64{0.9, 1.1}, 1.5, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Applied {
		t.Error("Forced value must not take effect while recovery is within threshold")
	}
}

func TestComputeCorrectionErrors(t *testing.T) {
	if _, err := ComputeCorrection(nil, nil, []float64{0.9, 1.1}, 0, 1); err == nil {
		t.Error("Empty input should error")
	}
	if _, err := ComputeCorrection([]float64{1, 2}, []float64{1}, []float64{0.9, 1.1}, 0, 1); err == nil {
		t.Error("Mismatched lengths should error")
	}
	if _, err := ComputeCorrection([]float64{1}, []float64{1}, []float64{0.9}, 0, 1); err == nil {
		t.Error("Single-bound threshold should error")
	}
	if _, err := ComputeCorrection([]float64{0}, []float64{1}, []float64{0.9, 1.1}, 0, 1); err == nil {
		t.Error("Zero introduced concentration should error")
	}
}

func TestApplyCorrection(t *testing.T) {
	c := Correction{Ratio: 0.83, Applied: true, Factor: 1.2}

	out := ApplyCorrection(c, []float64{100, 200})
	if out[0] != 120 || out[1] != 240 {
		t.Errorf("Expected corrected values [120 240], got %v", out)
	}

	untouched := ApplyCorrection(Correction{}, []float64{100})
	if untouched[0] != 100 {
		t.Errorf("Unapplied correction should leave values untouched, got %v", untouched)
	}
}
