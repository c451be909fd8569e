package processor

import (
	"database/sql"
	"math"
)

// 人口百分比列的固定顺序
const (
	Hispanic = iota
	White
	Black
	Native
	Asian
	Pacific
	NumDemographics
)

// DemographicColumns 与上面的下标一一对应
var DemographicColumns = [NumDemographics]string{"Hispanic", "White", "Black", "Native", "Asian", "Pacific"}

// StateRecord 一个州（或领地）清洗后的一行数据
// 浮点字段用 NaN 表示缺失
type StateRecord struct {
	State            string
	TotalPop         int64
	Demographics     [NumDemographics]float64
	Income           float64
	Male             sql.NullInt64
	Female           sql.NullInt64
	FemaleProportion float64
}

// Demographic 按列名取百分比，列名不存在时返回 NaN
func (r StateRecord) Demographic(name string) float64 {
	for i, col := range DemographicColumns {
		if col == name {
			return r.Demographics[i]
		}
	}
	return math.NaN()
}

// MissingDemographics 统计该行缺失的百分比个数
func (r StateRecord) MissingDemographics() int {
	n := 0
	for _, v := range r.Demographics {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Table 在各个处理阶段之间传递的数据表
// 各阶段返回新的 Table，不修改入参
type Table []StateRecord

// Clone 深拷贝
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Column 按列名取出一列浮点值，整数列转为浮点，缺失为 NaN
func (t Table) Column(name string) []float64 {
	values := make([]float64, len(t))
	for i, r := range t {
		values[i] = r.Float(name)
	}
	return values
}

// Float 以浮点形式返回某个数值字段
func (r StateRecord) Float(name string) float64 {
	switch name {
	case "TotalPop":
		return float64(r.TotalPop)
	case "Income":
		return r.Income
	case "Male":
		return nullFloat(r.Male)
	case "Female":
		return nullFloat(r.Female)
	case "Female_Proportion":
		return r.FemaleProportion
	}
	return r.Demographic(name)
}

func nullFloat(v sql.NullInt64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return float64(v.Int64)
}
