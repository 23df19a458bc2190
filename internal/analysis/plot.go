package analysis

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const maxBarCategories = 50

type PlotConfig struct {
	XAxis      string `json:"x_axis"`
	YAxis      string `json:"y_axis"`
	GraphType  string `json:"graph_type"`
	LegendAttr string `json:"legend_attr,omitempty"`
	StatMode   string `json:"stat_mode,omitempty"` // Sum, Mean or Median, for Bar charts
}

// RenderPlot draws the requested chart and returns it as PNG bytes.
func RenderPlot(ds *Dataset, cfg PlotConfig) ([]byte, error) {
	if cfg.XAxis == "" || cfg.YAxis == "" {
		return nil, fmt.Errorf("x_axis and y_axis are required")
	}
	if !ds.HasColumn(cfg.XAxis) || !ds.HasColumn(cfg.YAxis) {
		return nil, fmt.Errorf("invalid column names: x_axis=%q, y_axis=%q, available=%v",
			cfg.XAxis, cfg.YAxis, ds.Columns)
	}

	graphType := cfg.GraphType
	if graphType == "" {
		graphType = "Line"
	}
	legend := cfg.LegendAttr
	if legend != "" && !ds.HasColumn(legend) {
		legend = ""
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Plot of %s vs %s", graphType, cfg.YAxis, cfg.XAxis)
	p.X.Label.Text = cfg.XAxis
	p.Y.Label.Text = cfg.YAxis

	var err error
	switch graphType {
	case "Line":
		err = addLines(p, ds, cfg.XAxis, cfg.YAxis, legend)
	case "Scatter":
		err = addScatters(p, ds, cfg.XAxis, cfg.YAxis, legend)
	case "Bar":
		err = addBars(p, ds, cfg, legend)
	case "Histogram":
		err = addHistograms(p, ds, cfg.YAxis, legend)
	case "Box":
		err = addBox(p, ds, cfg.YAxis)
	default:
		err = fmt.Errorf("unsupported graph type: %q", graphType)
	}
	if err != nil {
		return nil, err
	}

	writerTo, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writerTo.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}
	return buf.Bytes(), nil
}

// xySeries collects (x, y) pairs, optionally restricted to rows whose
// legend column equals legendVal. A non-numeric X column falls back to
// the row index.
func (ds *Dataset) xySeries(xCol, yCol, legendCol, legendVal string) plotter.XYs {
	var xys plotter.XYs
	xNumeric := ds.IsNumeric(xCol)
	for row := range ds.records {
		if legendCol != "" && ds.Cell(row, legendCol) != legendVal {
			continue
		}
		y, err := strconv.ParseFloat(ds.Cell(row, yCol), 64)
		if err != nil {
			continue
		}
		x := float64(row)
		if xNumeric {
			parsed, err := strconv.ParseFloat(ds.Cell(row, xCol), 64)
			if err != nil {
				continue
			}
			x = parsed
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

// distinctValues returns the column's values in first-seen order.
func (ds *Dataset) distinctValues(col string) []string {
	seen := make(map[string]bool)
	var values []string
	for row := range ds.records {
		v := ds.Cell(row, col)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

func addLines(p *plot.Plot, ds *Dataset, xCol, yCol, legend string) error {
	if legend == "" {
		line, err := plotter.NewLine(ds.xySeries(xCol, yCol, "", ""))
		if err != nil {
			return err
		}
		p.Add(line)
		return nil
	}
	for i, val := range ds.distinctValues(legend) {
		line, err := plotter.NewLine(ds.xySeries(xCol, yCol, legend, val))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(val, line)
	}
	return nil
}

func addScatters(p *plot.Plot, ds *Dataset, xCol, yCol, legend string) error {
	if legend == "" {
		scatter, err := plotter.NewScatter(ds.xySeries(xCol, yCol, "", ""))
		if err != nil {
			return err
		}
		p.Add(scatter)
		return nil
	}
	for i, val := range ds.distinctValues(legend) {
		scatter, err := plotter.NewScatter(ds.xySeries(xCol, yCol, legend, val))
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)
		p.Legend.Add(val, scatter)
	}
	return nil
}

func addBars(p *plot.Plot, ds *Dataset, cfg PlotConfig, legend string) error {
	categories := ds.distinctValues(cfg.XAxis)
	if ds.IsNumeric(cfg.XAxis) && len(categories) >= maxBarCategories {
		return fmt.Errorf("bar chart requires a categorical X-axis")
	}

	aggregate := func(legendVal string) plotter.Values {
		values := make(plotter.Values, len(categories))
		for i, category := range categories {
			var group []float64
			for row := range ds.records {
				if ds.Cell(row, cfg.XAxis) != category {
					continue
				}
				if legend != "" && ds.Cell(row, legend) != legendVal {
					continue
				}
				if y, err := strconv.ParseFloat(ds.Cell(row, cfg.YAxis), 64); err == nil {
					group = append(group, y)
				}
			}
			values[i] = aggregateGroup(group, cfg.StatMode)
		}
		return values
	}

	barWidth := vg.Points(20)
	if legend == "" {
		bars, err := plotter.NewBarChart(aggregate(""), barWidth)
		if err != nil {
			return err
		}
		p.Add(bars)
	} else {
		legendValues := ds.distinctValues(legend)
		groupWidth := vg.Points(40) / vg.Length(len(legendValues))
		for i, val := range legendValues {
			bars, err := plotter.NewBarChart(aggregate(val), groupWidth)
			if err != nil {
				return err
			}
			bars.Color = plotutil.Color(i)
			bars.Offset = groupWidth * vg.Length(i)
			p.Add(bars)
			p.Legend.Add(val, bars)
		}
	}
	p.NominalX(categories...)
	return nil
}

func aggregateGroup(group []float64, statMode string) float64 {
	if len(group) == 0 {
		return 0
	}
	switch statMode {
	case "Mean":
		return stat.Mean(group, nil)
	case "Median":
		sorted := append([]float64(nil), group...)
		sort.Float64s(sorted)
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	default: // Sum
		return floats.Sum(group)
	}
}

func addHistograms(p *plot.Plot, ds *Dataset, yCol, legend string) error {
	series := func(legendVal string) plotter.Values {
		var values plotter.Values
		for row := range ds.records {
			if legend != "" && ds.Cell(row, legend) != legendVal {
				continue
			}
			if y, err := strconv.ParseFloat(ds.Cell(row, yCol), 64); err == nil {
				values = append(values, y)
			}
		}
		return values
	}

	if legend == "" {
		hist, err := plotter.NewHist(series(""), 20)
		if err != nil {
			return err
		}
		p.Add(hist)
		return nil
	}
	for i, val := range ds.distinctValues(legend) {
		hist, err := plotter.NewHist(series(val), 20)
		if err != nil {
			return err
		}
		hist.FillColor = plotutil.Color(i)
		p.Add(hist)
		p.Legend.Add(val, hist)
	}
	return nil
}

func addBox(p *plot.Plot, ds *Dataset, yCol string) error {
	values := plotter.Values(ds.NumericColumn(yCol))
	if len(values) == 0 {
		return fmt.Errorf("column %q holds no numeric values", yCol)
	}
	box, err := plotter.NewBoxPlot(vg.Points(20), 0, values)
	if err != nil {
		return err
	}
	p.Add(box)
	p.NominalX(yCol)
	return nil
}
