package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Dataset is a parsed CSV upload. Column names are trimmed so headers
// with stray spaces still match the axis names a client sends.
type Dataset struct {
	Columns []string
	records [][]string
	numeric map[string][]float64 // parsed values per numeric column, missing cells skipped
}

// ParseCSV reads an uploaded CSV into a Dataset. The first record is the
// header; a column counts as numeric when every non-empty cell parses as
// a float.
func ParseCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	ds := &Dataset{
		Columns: header,
		records: rows[1:],
		numeric: make(map[string][]float64),
	}

	for col := range header {
		values := make([]float64, 0, len(ds.records))
		isNumeric := true
		for _, record := range ds.records {
			if col >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				isNumeric = false
				break
			}
			values = append(values, v)
		}
		if isNumeric && len(values) > 0 {
			ds.numeric[header[col]] = values
		}
	}

	return ds, nil
}

func (ds *Dataset) Rows() int {
	return len(ds.records)
}

func (ds *Dataset) HasColumn(name string) bool {
	return ds.columnIndex(name) >= 0
}

func (ds *Dataset) columnIndex(name string) int {
	for i, col := range ds.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// IsNumeric reports whether every non-empty cell of the column parses as
// a number.
func (ds *Dataset) IsNumeric(name string) bool {
	_, ok := ds.numeric[name]
	return ok
}

// NumericColumn returns the parsed values of a numeric column, missing
// cells excluded.
func (ds *Dataset) NumericColumn(name string) []float64 {
	return ds.numeric[name]
}

// Cell returns the raw cell at row/column, "" when the row is ragged.
func (ds *Dataset) Cell(row int, name string) string {
	col := ds.columnIndex(name)
	if col < 0 || row >= len(ds.records) || col >= len(ds.records[row]) {
		return ""
	}
	return strings.TrimSpace(ds.records[row][col])
}

// ColumnStats mirrors a describe() row for one numeric column.
type ColumnStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Summary is the analyze-data response body.
type Summary struct {
	Rows          int                      `json:"rows"`
	Columns       int                      `json:"columns"`
	ColumnNames   []string                 `json:"column_names"`
	DataTypes     map[string]string        `json:"data_types"`
	MissingValues map[string]int           `json:"missing_values"`
	SummaryStats  map[string]ColumnStats   `json:"summary_stats"`
	SampleData    []map[string]interface{} `json:"sample_data"`
}

// Summarize computes the dataset overview: shape, per-column type,
// missing cell counts, numeric descriptive stats and a head sample.
func (ds *Dataset) Summarize() Summary {
	summary := Summary{
		Rows:          ds.Rows(),
		Columns:       len(ds.Columns),
		ColumnNames:   ds.Columns,
		DataTypes:     make(map[string]string, len(ds.Columns)),
		MissingValues: make(map[string]int, len(ds.Columns)),
		SummaryStats:  make(map[string]ColumnStats),
	}

	for _, col := range ds.Columns {
		if ds.IsNumeric(col) {
			summary.DataTypes[col] = "number"
		} else {
			summary.DataTypes[col] = "string"
		}

		missing := 0
		for row := range ds.records {
			if ds.Cell(row, col) == "" {
				missing++
			}
		}
		summary.MissingValues[col] = missing

		if values := ds.NumericColumn(col); len(values) > 0 {
			summary.SummaryStats[col] = describe(values)
		}
	}

	sampleLen := ds.Rows()
	if sampleLen > 5 {
		sampleLen = 5
	}
	summary.SampleData = make([]map[string]interface{}, 0, sampleLen)
	for row := 0; row < sampleLen; row++ {
		record := make(map[string]interface{}, len(ds.Columns))
		for _, col := range ds.Columns {
			cell := ds.Cell(row, col)
			if ds.IsNumeric(col) && cell != "" {
				v, _ := strconv.ParseFloat(cell, 64)
				record[col] = v
			} else {
				record[col] = cell
			}
		}
		summary.SampleData = append(summary.SampleData, record)
	}

	return summary
}

func describe(values []float64) ColumnStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	std := 0.0
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}

	return ColumnStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Std:    std,
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
