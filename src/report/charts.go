package report

import (
	"CensusCleaning/src/processor"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch

	trendColor  = color.RGBA{R: 255, A: 204}
	meanColor   = color.RGBA{R: 255, A: 255}
	medianColor = color.RGBA{G: 128, A: 255}
	histFill    = color.RGBA{R: 135, G: 206, B: 235, A: 178}
	dashes      = []vg.Length{vg.Points(5), vg.Points(5)}
)

func newChart(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	return p
}

// PlotIncomeVsFemaleProportion 女性比例与收入散点图，按州着色并叠加线性趋势线
func PlotIncomeVsFemaleProportion(t processor.Table, path string) error {
	p := newChart("State Income vs Female Population Proportion",
		"Proportion of Female Population", "Average Income ($)")

	// 按州首次出现的顺序分组
	var order []string
	groups := make(map[string]plotter.XYs)
	for _, r := range t {
		if !isFinite(r.FemaleProportion) || !isFinite(r.Income) {
			continue
		}
		if _, ok := groups[r.State]; !ok {
			order = append(order, r.State)
		}
		groups[r.State] = append(groups[r.State], plotter.XY{X: r.FemaleProportion, Y: r.Income})
	}

	for i, state := range order {
		s, err := plotter.NewScatter(groups[state])
		if err != nil {
			return fmt.Errorf("scatter %s: %w", state, err)
		}
		c := plotutil.Color(i)
		if rgba, ok := c.(color.RGBA); ok {
			rgba.A = 178
			c = rgba
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(state, s)
	}
	p.Legend.Top = true

	xs := t.Column(processor.ColProportion)
	ys := t.Column(processor.ColIncome)
	if alpha, beta, ok := TrendLine(xs, ys); ok {
		fx, _ := finitePairs(xs, ys)
		lo, hi := floats.Min(fx), floats.Max(fx)
		line, err := plotter.NewLine(plotter.XYs{
			{X: lo, Y: alpha + beta*lo},
			{X: hi, Y: alpha + beta*hi},
		})
		if err != nil {
			return fmt.Errorf("trend line: %w", err)
		}
		line.LineStyle.Color = trendColor
		line.LineStyle.Dashes = dashes
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// PlotDemographicHistogram 单个人口列的分布直方图，带均值和中位数参考线
func PlotDemographicHistogram(t processor.Table, column string, bins int, path string) error {
	p := newChart(
		fmt.Sprintf("Distribution of %s Population Across States", column),
		fmt.Sprintf("%s Population Percentage", column),
		"Number of States")

	values := plotter.Values(finite(t.Column(column)))
	if len(values) > 0 {
		h, err := plotter.NewHist(values, bins)
		if err != nil {
			return fmt.Errorf("histogram %s: %w", column, err)
		}
		h.FillColor = histFill
		h.LineStyle.Color = color.Black
		p.Add(h)

		top := 1.0
		for _, b := range h.Bins {
			top = math.Max(top, b.Weight)
		}

		mean, median := MeanMedian(values)
		for _, ref := range []struct {
			label string
			x     float64
			c     color.Color
		}{
			{fmt.Sprintf("Mean: %.1f%%", mean), mean, meanColor},
			{fmt.Sprintf("Median: %.1f%%", median), median, medianColor},
		} {
			line, err := plotter.NewLine(plotter.XYs{{X: ref.x, Y: 0}, {X: ref.x, Y: top}})
			if err != nil {
				return fmt.Errorf("reference line %s: %w", column, err)
			}
			line.LineStyle.Color = ref.c
			line.LineStyle.Dashes = dashes
			p.Add(line)
			p.Legend.Add(ref.label, line)
		}
		p.Legend.Top = true
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
