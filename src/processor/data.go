// data.go
package processor

import (
	"database/sql"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ToDataFrame 将记录转换回字符串 DataFrame 用于导出
// 缺失值写为空串，浮点使用最短的精确表示
func ToDataFrame(t Table) dataframe.DataFrame {
	columns := OutputColumns()
	values := make([][]string, len(columns))
	for i := range values {
		values[i] = make([]string, len(t))
	}

	for row, r := range t {
		for i, cell := range Row(r) {
			values[i][row] = cell
		}
	}

	seriesList := make([]series.Series, len(columns))
	for i, name := range columns {
		seriesList[i] = series.New(values[i], series.String, name)
	}
	return dataframe.New(seriesList...)
}

// Row 按 OutputColumns 的顺序格式化一行
func Row(r StateRecord) []string {
	cells := []string{r.State, strconv.FormatInt(r.TotalPop, 10)}
	for _, v := range r.Demographics {
		cells = append(cells, FormatFloat(v))
	}
	return append(cells,
		FormatFloat(r.Income),
		formatNull(r.Male),
		formatNull(r.Female),
		FormatFloat(r.FemaleProportion),
	)
}

// FormatFloat NaN 输出为空串
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNull(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}
