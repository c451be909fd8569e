package processor

import (
	"database/sql"
	"strconv"
	"strings"
)

// rowKey 生成整行比较用的键，NaN 与 NaN、缺失与缺失视为相等
func rowKey(r StateRecord) string {
	var b strings.Builder
	b.WriteString(strconv.Quote(r.State))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(r.TotalPop, 10))
	for _, v := range r.Demographics {
		b.WriteByte('|')
		b.WriteString(floatKey(v))
	}
	b.WriteByte('|')
	b.WriteString(floatKey(r.Income))
	b.WriteByte('|')
	b.WriteString(nullKey(r.Male))
	b.WriteByte('|')
	b.WriteString(nullKey(r.Female))
	b.WriteByte('|')
	b.WriteString(floatKey(r.FemaleProportion))
	return b.String()
}

func floatKey(v float64) string {
	if v == 0 {
		v = 0 // -0 与 0 相同
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func nullKey(v sql.NullInt64) string {
	if !v.Valid {
		return "<NA>"
	}
	return strconv.FormatInt(v.Int64, 10)
}

// CountDuplicates 统计与前面某行完全相同的行数
func CountDuplicates(t Table) int {
	seen := make(map[string]struct{}, len(t))
	n := 0
	for _, r := range t {
		key := rowKey(r)
		if _, ok := seen[key]; ok {
			n++
			continue
		}
		seen[key] = struct{}{}
	}
	return n
}

// Deduplicate 删除完全重复的行，保留首次出现并维持原顺序
// 返回新表与删除的行数
func Deduplicate(t Table) (Table, int) {
	seen := make(map[string]struct{}, len(t))
	out := make(Table, 0, len(t))
	for _, r := range t {
		key := rowKey(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out, len(t) - len(out)
}
