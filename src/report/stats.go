package report

import (
	"CensusCleaning/src/processor"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats 单列的描述统计，忽略 NaN
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // 样本标准差 (n-1)
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Summary 数据集概况
type Summary struct {
	Rows       int
	Columns    int
	States     int
	Population int64
}

// Summarize 计算行列数、州的数量与人口总和
func Summarize(t processor.Table) Summary {
	states := make(map[string]struct{}, len(t))
	var pop int64
	for _, r := range t {
		states[r.State] = struct{}{}
		pop += r.TotalPop
	}
	return Summary{
		Rows:       len(t),
		Columns:    len(processor.OutputColumns()),
		States:     len(states),
		Population: pop,
	}
}

// Describe 对指定列计算 count/mean/std/min/25%/50%/75%/max
func Describe(t processor.Table, columns []string) []ColumnStats {
	out := make([]ColumnStats, 0, len(columns))
	for _, col := range columns {
		out = append(out, describeValues(col, t.Column(col)))
	}
	return out
}

func describeValues(column string, values []float64) ColumnStats {
	xs := finite(values)
	cs := ColumnStats{Column: column, Count: len(xs)}
	nan := math.NaN()
	if len(xs) == 0 {
		cs.Mean, cs.Std, cs.Min, cs.Q25, cs.Median, cs.Q75, cs.Max = nan, nan, nan, nan, nan, nan, nan
		return cs
	}

	sort.Float64s(xs)
	cs.Mean = stat.Mean(xs, nil)
	cs.Std = nan
	if len(xs) > 1 {
		cs.Std = stat.StdDev(xs, nil)
	}
	cs.Min = floats.Min(xs)
	cs.Max = floats.Max(xs)
	cs.Q25 = Quantile(xs, 0.25)
	cs.Median = Quantile(xs, 0.5)
	cs.Q75 = Quantile(xs, 0.75)
	return cs
}

// Quantile 对已排序数据在相邻次序统计量之间线性插值
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// MeanMedian 返回均值与中位数，忽略 NaN
func MeanMedian(values []float64) (mean, median float64) {
	xs := finite(values)
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	sort.Float64s(xs)
	return stat.Mean(xs, nil), Quantile(xs, 0.5)
}

// TopByIncome 收入最高的 n 个州，收入相同时保持原顺序，缺失收入不参与排名
func TopByIncome(t processor.Table, n int) processor.Table {
	ranked := make(processor.Table, 0, len(t))
	for _, r := range t {
		if !math.IsNaN(r.Income) {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Income > ranked[j].Income
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TrendLine 最小二乘一次拟合 y = alpha + beta*x，有效点少于两个或 x 全相同时 ok 为 false
func TrendLine(xs, ys []float64) (alpha, beta float64, ok bool) {
	fx, fy := finitePairs(xs, ys)
	if len(fx) < 2 || floats.Min(fx) == floats.Max(fx) {
		return 0, 0, false
	}
	alpha, beta = stat.LinearRegression(fx, fy, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return 0, 0, false
	}
	return alpha, beta, true
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func finitePairs(xs, ys []float64) (fx, fy []float64) {
	for i := range xs {
		if i >= len(ys) {
			break
		}
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	return fx, fy
}
