package exporter

import (
	"CensusCleaning/src/processor"
	"fmt"
	"math"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteCSV 导出清洗后的数据，不写索引列
func WriteCSV(t processor.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := processor.ToDataFrame(t).WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// SaveToExcel 将清洗后的数据保存为Excel文件
// 数值写为数字单元格，缺失值留空
func SaveToExcel(t processor.Table, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"

	// 写入列名
	for i, name := range processor.OutputColumns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("写入列名失败: %w", err)
		}
	}

	// 写入数据
	for rowIdx, r := range t {
		for colIdx, val := range cellValues(r) {
			if val == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("写入单元格 %s 失败: %w", cell, err)
			}
		}
	}

	// 保存文件
	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("保存Excel文件失败: %w", err)
	}
	return nil
}

// cellValues 与 processor.OutputColumns 顺序一致，缺失为 nil
func cellValues(r processor.StateRecord) []any {
	values := []any{r.State, r.TotalPop}
	for _, v := range r.Demographics {
		values = append(values, floatCell(v))
	}
	values = append(values, floatCell(r.Income))
	for _, v := range []struct {
		n     int64
		valid bool
	}{{r.Male.Int64, r.Male.Valid}, {r.Female.Int64, r.Female.Valid}} {
		if v.valid {
			values = append(values, v.n)
		} else {
			values = append(values, nil)
		}
	}
	return append(values, floatCell(r.FemaleProportion))
}

func floatCell(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
