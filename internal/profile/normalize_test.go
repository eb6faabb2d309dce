package profile

import "testing"

func TestNormalizeResponseMajor(t *testing.T) {
	// One concentration column, two response columns: every response pairs
	// with the single introduced concentration.
	rows := []WideRow{
		{Series: 1, Level: 1, X: []float64{1.9}, Y: []float64{36539, 36785}},
		{Series: 1, Level: 2, X: []float64{4.7}, Y: []float64{102066, 98495}},
	}

	out := Normalize(rows)
	if len(out) != 4 {
		t.Fatalf("Expected 4 measurements, got %d", len(out))
	}

	// Column-major: the y1 block comes first.
	if out[0].Response != 36539 || out[1].Response != 102066 {
		t.Errorf("First block should hold y1 values, got %v/%v", out[0].Response, out[1].Response)
	}
	if out[2].Response != 36785 || out[3].Response != 98495 {
		t.Errorf("Second block should hold y2 values, got %v/%v", out[2].Response, out[3].Response)
	}
	for _, m := range out {
		if m.Concentration != 1.9 && m.Concentration != 4.7 {
			t.Errorf("Unexpected concentration %v", m.Concentration)
		}
		if m.ID == "" {
			t.Error("Normalized rows should carry generated IDs")
		}
	}
}

func TestNormalizePaired(t *testing.T) {
	// Matching column counts pair index by index.
	rows := []WideRow{
		{Series: 1, Level: 1, X: []float64{406, 419}, Y: []float64{1.0, 1.1}},
	}

	out := Normalize(rows)
	if len(out) != 2 {
		t.Fatalf("Expected 2 measurements, got %d", len(out))
	}
	if out[0].Concentration != 406 || out[0].Response != 1.0 {
		t.Errorf("First pair should be (406, 1.0), got (%v, %v)", out[0].Concentration, out[0].Response)
	}
	if out[1].Concentration != 419 || out[1].Response != 1.1 {
		t.Errorf("Second pair should be (419, 1.1), got (%v, %v)", out[1].Concentration, out[1].Response)
	}
}

func TestNormalizeSingleColumn(t *testing.T) {
	rows := []WideRow{
		{Series: 2, Level: 1, X: []float64{419}, Y: []float64{1.53451784646202}},
	}

	out := Normalize(rows)
	if len(out) != 1 {
		t.Fatalf("Expected 1 measurement, got %d", len(out))
	}
	if out[0].Series != 2 || out[0].Level != 1 {
		t.Errorf("Series/level should carry over, got %d/%d", out[0].Series, out[0].Level)
	}
}

func TestNormalizeRaggedRows(t *testing.T) {
	// A row missing the second response column contributes only to the first block.
	rows := []WideRow{
		{Series: 1, Level: 1, X: []float64{1.9}, Y: []float64{10, 20}},
		{Series: 2, Level: 1, X: []float64{1.9}, Y: []float64{11}},
	}

	out := Normalize(rows)
	if len(out) != 3 {
		t.Fatalf("Expected 3 measurements, got %d", len(out))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if out := Normalize(nil); out != nil {
		t.Errorf("Empty input should normalize to nil, got %v", out)
	}
	if out := Normalize([]WideRow{{Series: 1, Level: 1}}); out != nil {
		t.Errorf("Rows without columns should normalize to nil, got %v", out)
	}
}
