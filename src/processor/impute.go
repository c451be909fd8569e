package processor

import "math"

// ImputeDemographics 用 100 减去该行已知百分比之和填补缺失值
// 一行有多个缺失时每个缺失位置填入同一个值，与原有处理结果保持一致
// 返回新表与填补的单元格数
func ImputeDemographics(t Table) (Table, int) {
	out := t.Clone()
	filled := 0
	for i := range out {
		row := &out[i].Demographics
		if out[i].MissingDemographics() == 0 {
			continue
		}

		sum := 0.0
		for _, v := range row {
			if !math.IsNaN(v) {
				sum += v
			}
		}
		complement := 100 - sum
		for j, v := range row {
			if math.IsNaN(v) {
				row[j] = complement
				filled++
			}
		}
	}
	return out, filled
}

// MissingCount 某一列的缺失数量
type MissingCount struct {
	Column string
	Count  int
}

// MissingCounts 按列顺序返回缺失数量大于0的列
func MissingCounts(t Table) []MissingCount {
	columns := OutputColumns()
	counts := make([]int, len(columns))

	for _, r := range t {
		for i, col := range columns {
			if col == ColState {
				continue
			}
			if math.IsNaN(r.Float(col)) {
				counts[i]++
			}
		}
	}

	var out []MissingCount
	for i, col := range columns {
		if counts[i] > 0 {
			out = append(out, MissingCount{Column: col, Count: counts[i]})
		}
	}
	return out
}

// OutputColumns 清洗后数据表的列顺序
func OutputColumns() []string {
	cols := []string{ColState, ColTotalPop}
	cols = append(cols, DemographicColumns[:]...)
	return append(cols, ColIncome, ColMale, ColFemale, ColProportion)
}
