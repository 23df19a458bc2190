package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Report renders the dataset as text for the AI coach: a preview of the
// first rows, descriptive statistics, a correlation matrix and a missing
// value report.
func (ds *Dataset) Report() string {
	var b strings.Builder

	b.WriteString("DATA PREVIEW:\n")
	b.WriteString(ds.previewTable(5))

	b.WriteString("\nSTATISTICAL SUMMARY:\n")
	for _, col := range ds.Columns {
		values := ds.NumericColumn(col)
		if len(values) == 0 {
			continue
		}
		s := describe(values)
		fmt.Fprintf(&b, "%s: count=%d mean=%.4f std=%.4f min=%.4f median=%.4f max=%.4f\n",
			col, s.Count, s.Mean, s.Std, s.Min, s.Median, s.Max)
	}

	b.WriteString("\nCORRELATION MATRIX:\n")
	b.WriteString(ds.correlationMatrix())

	b.WriteString("\nMISSING VALUE REPORT:\n")
	for _, col := range ds.Columns {
		missing := 0
		for row := range ds.records {
			if ds.Cell(row, col) == "" {
				missing++
			}
		}
		fmt.Fprintf(&b, "%s: %d\n", col, missing)
	}

	return b.String()
}

func (ds *Dataset) previewTable(limit int) string {
	var b strings.Builder
	b.WriteString(strings.Join(ds.Columns, ", "))
	b.WriteByte('\n')
	for row := 0; row < len(ds.records) && row < limit; row++ {
		cells := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			cells[i] = ds.Cell(row, col)
		}
		b.WriteString(strings.Join(cells, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (ds *Dataset) correlationMatrix() string {
	numericCols := make([]string, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		if ds.IsNumeric(col) {
			numericCols = append(numericCols, col)
		}
	}
	if len(numericCols) < 2 {
		return "Not enough numeric columns for correlation analysis\n"
	}

	var b strings.Builder
	for _, a := range numericCols {
		for _, c := range numericCols {
			if a >= c {
				continue
			}
			x, y := ds.alignedPair(a, c)
			if len(x) < 2 {
				continue
			}
			fmt.Fprintf(&b, "%s / %s: %.4f\n", a, c, stat.Correlation(x, y, nil))
		}
	}
	return b.String()
}

// alignedPair collects the rows where both columns hold a parseable
// number, keeping the two slices the same length.
func (ds *Dataset) alignedPair(colA, colB string) ([]float64, []float64) {
	var x, y []float64
	for row := range ds.records {
		a, errA := strconv.ParseFloat(ds.Cell(row, colA), 64)
		b, errB := strconv.ParseFloat(ds.Cell(row, colB), 64)
		if errA != nil || errB != nil {
			continue
		}
		x = append(x, a)
		y = append(y, b)
	}
	return x, y
}
