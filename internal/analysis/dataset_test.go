package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,type,calories,duration
2024-03-01,Jogging,320,45
2024-03-02,Cycling,280,40
2024-03-03,Swimming,,30
2024-03-04,Jogging,350,50
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Rows())
	assert.Equal(t, []string{"date", "type", "calories", "duration"}, ds.Columns)
	assert.True(t, ds.HasColumn("calories"))
	assert.False(t, ds.HasColumn("heart_rate"))
	assert.Equal(t, "Cycling", ds.Cell(1, "type"))
}

func TestParseCSVEmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNumericColumnSkipsMissingValues(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.True(t, ds.IsNumeric("calories"))
	assert.False(t, ds.IsNumeric("type"))

	values := ds.NumericColumn("calories")
	assert.Equal(t, []float64{320, 280, 350}, values)
}

func TestSummarize(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	summary := ds.Summarize()

	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 4, summary.Columns)
	assert.Equal(t, "string", summary.DataTypes["type"])
	assert.Equal(t, "number", summary.DataTypes["calories"])
	assert.Equal(t, 1, summary.MissingValues["calories"])
	assert.Equal(t, 0, summary.MissingValues["date"])

	stats, ok := summary.SummaryStats["duration"]
	require.True(t, ok)
	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 41.25, stats.Mean, 0.001)
	assert.Equal(t, 30.0, stats.Min)
	assert.Equal(t, 50.0, stats.Max)

	_, hasTextStats := summary.SummaryStats["type"]
	assert.False(t, hasTextStats)

	assert.Len(t, summary.SampleData, 4)
	assert.Equal(t, 320.0, summary.SampleData[0]["calories"])
	assert.Equal(t, "Jogging", summary.SampleData[0]["type"])
}

func TestSummarizeSampleCappedAtFiveRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 0; i < 20; i++ {
		b.WriteString("1\n")
	}

	ds, err := ParseCSV(strings.NewReader(b.String()))
	require.NoError(t, err)

	summary := ds.Summarize()
	assert.Equal(t, 20, summary.Rows)
	assert.Len(t, summary.SampleData, 5)
}

func TestReportSections(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	report := ds.Report()

	assert.Contains(t, report, "DATA PREVIEW")
	assert.Contains(t, report, "STATISTICAL SUMMARY")
	assert.Contains(t, report, "CORRELATION MATRIX")
	assert.Contains(t, report, "MISSING VALUE REPORT")
	assert.Contains(t, report, "calories")
}
