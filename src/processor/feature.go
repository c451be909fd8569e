package processor

import "math"

// DeriveFemaleProportion 计算 Female / TotalPop
// Female 缺失或 TotalPop 为 0 时结果为 NaN，不报错也不会产生 Inf
func DeriveFemaleProportion(t Table) Table {
	out := t.Clone()
	for i := range out {
		out[i].FemaleProportion = femaleProportion(out[i])
	}
	return out
}

func femaleProportion(r StateRecord) float64 {
	if !r.Female.Valid || r.TotalPop == 0 {
		return math.NaN()
	}
	return float64(r.Female.Int64) / float64(r.TotalPop)
}
