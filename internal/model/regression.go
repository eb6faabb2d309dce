package model

// RegressionModel describes one calibration model the validation engine can
// fit: its regression formula, the weighting applied to the residuals, and
// the minimum number of calibration levels it needs.
type RegressionModel struct {
	Name      string
	Formula   string
	Weight    string
	MinPoints int
}

var regressionModels = []RegressionModel{
	{Name: "Linear", Formula: "y ~ x", Weight: "", MinPoints: 2},
	{Name: "Linear through 0", Formula: "y ~ x - 1", Weight: "", MinPoints: 2},
	{Name: "Quadratic", Formula: "y ~ x + I(x**2)", Weight: "", MinPoints: 3},
	{Name: "1/X Weighted Linear", Formula: "y ~ x", Weight: "1/x", MinPoints: 2},
	{Name: "1/X^2 Weighted Linear", Formula: "y ~ x", Weight: "1/x**2", MinPoints: 2},
	{Name: "Log10 Linear", Formula: "log10(y) ~ log10(x)", Weight: "", MinPoints: 2},
}

// AvailableModels returns the model catalog in display order.
func AvailableModels() []RegressionModel {
	out := make([]RegressionModel, len(regressionModels))
	copy(out, regressionModels)
	return out
}

// ModelByName returns the catalog entry for the given model name.
func ModelByName(name string) (RegressionModel, bool) {
	for _, m := range regressionModels {
		if m.Name == name {
			return m, true
		}
	}
	return RegressionModel{}, false
}

// ModelNames returns the names of every model in the catalog.
func ModelNames() []string {
	names := make([]string, len(regressionModels))
	for i, m := range regressionModels {
		names[i] = m.Name
	}
	return names
}

// IsWeighted reports whether the model applies residual weighting.
func (m RegressionModel) IsWeighted() bool {
	return m.Weight != ""
}
