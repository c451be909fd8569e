package utils

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// missingTokens 视为缺失值的原始文本
var missingTokens = []string{"", "NA", "NaN", "nan", "<NA>", "<nil>"}

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// 辅助函数：判断DataFrame是否有某列
func HasColumn(df dataframe.DataFrame, name string) bool {
	return Contains(df.Names(), name)
}

// MissingColumns 返回 DataFrame 中缺少的列名
func MissingColumns(df dataframe.DataFrame, names []string) []string {
	var missing []string
	for _, name := range names {
		if !HasColumn(df, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsMissing 判断原始文本是否表示缺失值
func IsMissing(s string) bool {
	return Contains(missingTokens, strings.TrimSpace(s))
}
