package main

import (
	"CensusCleaning/src/config"
	"CensusCleaning/src/datasource/file"
	"CensusCleaning/src/exporter"
	"CensusCleaning/src/processor"
	"CensusCleaning/src/report"
	"CensusCleaning/src/storage"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	cfg := config.LoadConfig()

	// 初始化日志系统
	logger, err := storage.NewLogger(cfg.Path(cfg.LogName))
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	t1 := time.Now()
	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Fatal(err.Error())
		logger.Close()
		log.Fatal(err)
	}
	logger.Info(fmt.Sprintf("数据处理时间：%v", time.Since(t1)))

	if err := logger.CheckRotate(cfg); err != nil {
		log.Println(err)
	}
}

// run 按顺序执行整个清洗流程，任何一步出错都直接返回
func run(cfg *config.Config, logger *storage.Logger, out io.Writer) error {
	con := report.NewConsole(out)

	// 1. 查找并读取输入文件
	con.Println("Searching for census data files...")
	rc := file.Config{
		Dir:       cfg.WorkDir,
		Patterns:  cfg.Input.Patterns,
		SheetName: cfg.Input.SheetName,
		HeaderRow: cfg.Input.HeaderRow,
		Columns:   cfg.InputColumns(),
	}
	files, err := file.Discover(rc)
	if err != nil {
		return err
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	con.Printf("Found %d files: %v\n", len(files), names)
	logger.Infof("匹配到 %d 个输入文件", len(files))

	raw, err := file.LoadAll(rc, files, func(path string) {
		con.Printf("Loading data from %s...\n", filepath.Base(path))
	})
	if err != nil {
		return fmt.Errorf("load census files: %w", err)
	}
	con.Printf("Combined dataset shape: (%d, %d)\n", raw.Nrow(), raw.Ncol())

	// 2. 字段清洗
	con.Println("\nCleaning Income, GenderPop and percentage columns...")
	table, err := processor.NormalizeFields(raw)
	if err != nil {
		return fmt.Errorf("normalize fields: %w", err)
	}
	incomes := report.Describe(table, []string{processor.ColIncome})[0]
	con.Printf("Income statistics: Mean=$%.0f, Max=$%.0f\n", incomes.Mean, incomes.Max)
	logger.Infof("字段清洗完成，共 %d 行", len(table))

	// 3. 去重
	con.Println("\nChecking for duplicate entries...")
	initial := len(table)
	con.Printf("Found %d duplicate rows out of %d total rows\n", processor.CountDuplicates(table), initial)
	table, removed := processor.Deduplicate(table)
	con.Printf("Removed %d duplicates. Final dataset: %d rows\n", removed, len(table))
	logger.Infof("删除重复行 %d 行", removed)

	// 4. 衍生特征
	table = processor.DeriveFemaleProportion(table)
	con.Println("Female proportion feature created")

	// 5. 散点图
	scatter := cfg.Path(cfg.Report.ScatterFile)
	if err := report.PlotIncomeVsFemaleProportion(table, scatter); err != nil {
		return err
	}
	con.Printf("Scatter plot saved as '%s'\n", cfg.Report.ScatterFile)

	// 6. 缺失值检查与填补
	con.Println("\nMissing values per column:")
	con.MissingValues(processor.MissingCounts(table))

	table, filled := processor.ImputeDemographics(table)
	con.Printf("Imputed %d missing demographic values\n", filled)
	logger.Infof("填补缺失的人口百分比 %d 个", filled)

	// 7. 直方图
	for _, col := range cfg.Columns.Demographic {
		name := cfg.HistogramFile(col)
		if err := report.PlotDemographicHistogram(table, col, cfg.Report.HistogramBins, cfg.Path(name)); err != nil {
			return err
		}
		con.Printf("Histogram saved as '%s'\n", name)
	}

	// 8. 汇总
	summary := report.Summarize(table)
	con.Banner("FINAL DATASET SUMMARY")
	con.Printf("Dataset Shape: (%d, %d)\n", summary.Rows, summary.Columns)
	con.Printf("Number of States: %d\n", summary.States)
	con.Printf("Total Population Represented: %d\n", summary.Population)

	con.Println("\nKey Statistics:")
	statCols := append([]string{processor.ColTotalPop, processor.ColIncome, processor.ColProportion}, cfg.Columns.Demographic...)
	con.DescribeTable(report.Describe(table, statCols))

	con.Printf("\nTop %d States by Income:\n", cfg.Report.TopN)
	con.TopTable(report.TopByIncome(table, cfg.Report.TopN))

	con.Println("\nData cleaning and analysis completed successfully!")
	con.Println("Output files generated:")
	for _, f := range cfg.OutputFiles() {
		con.Printf("   - %s\n", f)
	}

	// 9. 导出
	if err := exporter.WriteCSV(table, cfg.Path(cfg.ExportCSV)); err != nil {
		return err
	}
	if err := exporter.SaveToExcel(table, cfg.Path(cfg.ExportXLSX)); err != nil {
		return err
	}
	con.Printf("\nCleaned dataset exported as '%s' and '%s'\n", cfg.ExportCSV, cfg.ExportXLSX)
	logger.Infof("导出完成: %s", cfg.ExportCSV)
	return nil
}
