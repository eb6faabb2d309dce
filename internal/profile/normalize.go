package profile

import (
	"github.com/GroupeChemia/valexa/internal/model"
)

// WideRow mirrors one row of an incoming data table, where repeated
// measurements of the same point appear as x1..xn / y1..yn columns.
type WideRow struct {
	Series int
	Level  int
	X      []float64
	Y      []float64
}

// Normalize unfolds wide rows into long-form measurements. When a table
// carries more response columns than concentration columns, every response is
// paired with the single introduced concentration; otherwise columns are
// paired index by index. Output is column-major: all rows of y1, then all
// rows of y2, and so on, so replicate blocks stay contiguous.
func Normalize(rows []WideRow) []model.Measurement {
	maxX, maxY := 0, 0
	for _, row := range rows {
		if len(row.X) > maxX {
			maxX = len(row.X)
		}
		if len(row.Y) > maxY {
			maxY = len(row.Y)
		}
	}
	if maxX == 0 || maxY == 0 {
		return nil
	}

	var out []model.Measurement

	if maxY > maxX {
		for col := 0; col < maxY; col++ {
			for _, row := range rows {
				if col >= len(row.Y) || len(row.X) == 0 {
					continue
				}
				out = append(out, model.NewMeasurement(row.Series, row.Level, row.X[0], row.Y[col]))
			}
		}
		return out
	}

	for col := 0; col < maxX; col++ {
		for _, row := range rows {
			if col >= len(row.X) || col >= len(row.Y) {
				continue
			}
			out = append(out, model.NewMeasurement(row.Series, row.Level, row.X[col], row.Y[col]))
		}
	}
	return out
}
