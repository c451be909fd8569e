// reader.go
package file

import (
	"CensusCleaning/src/utils"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
)

// ErrNoInputFiles 没有任何文件匹配输入模式
var ErrNoInputFiles = errors.New("no input files matched")

// Config 读取配置
type Config struct {
	Dir       string   // 搜索目录
	Patterns  []string // 文件匹配模式，如 states*.csv
	SheetName string   // xlsx 工作表，为空时取第一个
	HeaderRow int      // xlsx 标题行
	Columns   []string // 必须存在的列，结果按此顺序排列
}

// Discover 查找所有匹配的输入文件，结果按路径排序且去重
func Discover(cfg Config) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range cfg.Patterns {
		matches, err := filepath.Glob(filepath.Join(cfg.Dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadAll 依次读取文件、选取固定列并纵向拼接
// onLoad 在每个文件读取前回调，可为 nil
func LoadAll(cfg Config, files []string, onLoad func(path string)) (dataframe.DataFrame, error) {
	if len(files) == 0 {
		return dataframe.New(), fmt.Errorf("%w: %s", ErrNoInputFiles, strings.Join(cfg.Patterns, ", "))
	}

	var combined dataframe.DataFrame
	for i, path := range files {
		if onLoad != nil {
			onLoad(path)
		}

		df, err := ReadToDataFrame(path, cfg.SheetName, cfg.HeaderRow)
		if err != nil {
			return dataframe.New(), err
		}

		if missing := utils.MissingColumns(df, cfg.Columns); len(missing) > 0 {
			return dataframe.New(), fmt.Errorf("%s: missing columns %v", path, missing)
		}
		df = df.Select(cfg.Columns)
		if df.Err != nil {
			return dataframe.New(), fmt.Errorf("%s: select columns: %w", path, df.Err)
		}

		if i == 0 {
			combined = df
			continue
		}
		combined = combined.RBind(df)
		if combined.Err != nil {
			return dataframe.New(), fmt.Errorf("%s: concat: %w", path, combined.Err)
		}
	}
	return combined, nil
}

// ReadToDataFrame 根据扩展名选择读取方式
func ReadToDataFrame(path, sheetName string, headerRow int) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSXToDataFrame(path, sheetName, headerRow)
	default:
		return ReadCSVToDataFrame(path)
	}
}

// ReadCSVToDataFrame 读取CSV，所有列按字符串保留，数值转换交给清洗步骤
func ReadCSVToDataFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.New(), fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.New(), fmt.Errorf("failed to parse csv file %s: %w", path, df.Err)
	}
	return df, nil
}

// ReadXLSXToDataFrame 读取xlsx工作表为字符串DataFrame
func ReadXLSXToDataFrame(path, sheetName string, headerRow int) (dataframe.DataFrame, error) {
	// 1. 使用tealeg/xlsx打开Excel文件
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return dataframe.New(), fmt.Errorf("failed to open xlsx file: %w", err)
	}

	// 2. 获取工作表
	if len(xlFile.Sheets) == 0 {
		return dataframe.New(), fmt.Errorf("excel文件中没有工作表: %s", path)
	}
	sheet := xlFile.Sheets[0]
	if sheetName != "" {
		s, ok := xlFile.Sheet[sheetName]
		if !ok {
			return dataframe.New(), fmt.Errorf("%s: sheet %q not found", path, sheetName)
		}
		sheet = s
	}

	// 3. 转换为Gota DataFrame
	return convertSheetToDataFrame(sheet, headerRow)
}

// convertSheetToDataFrame 将xlsx.Sheet转换为dataframe.DataFrame
func convertSheetToDataFrame(sheet *xlsx.Sheet, headerRow int) (dataframe.DataFrame, error) {
	if len(sheet.Rows) <= headerRow {
		return dataframe.New(), fmt.Errorf("sheet %q has no header row %d", sheet.Name, headerRow)
	}

	// 获取列名
	var headers []string
	for _, cell := range sheet.Rows[headerRow].Cells {
		headers = append(headers, strings.TrimSpace(cell.String()))
	}

	// 准备数据列
	body := sheet.Rows[headerRow+1:]
	columns := make([][]string, len(headers))
	for i := range columns {
		columns[i] = make([]string, 0, len(body))
	}

	// 填充数据，短行补空值保证各列等长
	for _, row := range body {
		for i := range headers {
			value := ""
			if row != nil && i < len(row.Cells) {
				value = row.Cells[i].String()
			}
			columns[i] = append(columns[i], value)
		}
	}

	// 创建Series切片
	seriesList := make([]series.Series, len(headers))
	for i, colName := range headers {
		seriesList[i] = series.New(columns[i], series.String, colName)
	}

	df := dataframe.New(seriesList...)
	return df, df.Err
}
