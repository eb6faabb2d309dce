package model

import "testing"

func TestModelByName(t *testing.T) {
	m, ok := ModelByName("Linear")
	if !ok {
		t.Fatal("Linear should be in the catalog")
	}
	if m.Formula != "y ~ x" || m.MinPoints != 2 {
		t.Errorf("Unexpected Linear entry: %+v", m)
	}

	if _, ok := ModelByName("Cubic Spline"); ok {
		t.Error("Unknown model should not resolve")
	}
}

func TestModelMinPoints(t *testing.T) {
	quadratic, ok := ModelByName("Quadratic")
	if !ok {
		t.Fatal("Quadratic should be in the catalog")
	}
	if quadratic.MinPoints != 3 {
		t.Errorf("Quadratic needs 3 points, got %d", quadratic.MinPoints)
	}
}

func TestModelIsWeighted(t *testing.T) {
	weighted, _ := ModelByName("1/X Weighted Linear")
	if !weighted.IsWeighted() {
		t.Error("1/X Weighted Linear should report weighting")
	}

	linear, _ := ModelByName("Linear")
	if linear.IsWeighted() {
		t.Error("Linear should not report weighting")
	}
}

func TestModelNames(t *testing.T) {
	names := ModelNames()
	if len(names) != len(AvailableModels()) {
		t.Fatalf("Name list and catalog disagree: %d vs %d", len(names), len(AvailableModels()))
	}
	for _, name := range names {
		if _, ok := ModelByName(name); !ok {
			t.Errorf("Name %s should resolve", name)
		}
	}
}
