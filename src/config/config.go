package config

import (
	"path/filepath"
	"strings"
	"sync"
)

// Config 定义了人口普查清洗流程的全部配置
// 所有取值均为硬编码默认值，不读取外部文件或环境变量
type Config struct {
	WorkDir string // 输入与输出所在目录

	Input struct {
		Patterns  []string // 输入文件匹配模式
		SheetName string   // xlsx 工作表名称，为空时取第一个工作表
		HeaderRow int      // xlsx 标题行所在行号（从0开始）
	}

	Columns struct {
		State       string
		TotalPop    string
		Income      string
		GenderPop   string
		Male        string
		Female      string
		Proportion  string
		Demographic []string // 六个人口百分比列
	}

	Report struct {
		ScatterFile   string // 收入与女性比例散点图
		HistogramBins int    // 直方图分箱数
		TopN          int    // 收入排名展示数量
	}

	ExportCSV  string
	ExportXLSX string

	LogName    string
	LogMaxSize string // 例如 "10 * 1024 * 1024"
}

var (
	once     sync.Once
	instance *Config
)

// LoadConfig 返回全局唯一的配置实例
func LoadConfig() *Config {
	once.Do(func() {
		instance = Default()
	})
	return instance
}

// Default 构造一份新的默认配置，测试中可以在副本上修改 WorkDir
func Default() *Config {
	cfg := &Config{WorkDir: "."}

	cfg.Input.Patterns = []string{"states*.csv", "states*.xlsx"}
	cfg.Input.HeaderRow = 0

	cfg.Columns.State = "State"
	cfg.Columns.TotalPop = "TotalPop"
	cfg.Columns.Income = "Income"
	cfg.Columns.GenderPop = "GenderPop"
	cfg.Columns.Male = "Male"
	cfg.Columns.Female = "Female"
	cfg.Columns.Proportion = "Female_Proportion"
	cfg.Columns.Demographic = []string{"Hispanic", "White", "Black", "Native", "Asian", "Pacific"}

	cfg.Report.ScatterFile = "income_vs_female_proportion.png"
	cfg.Report.HistogramBins = 15
	cfg.Report.TopN = 5

	cfg.ExportCSV = "cleaned_us_census_data.csv"
	cfg.ExportXLSX = "cleaned_us_census_data.xlsx"

	cfg.LogName = "census_cleaning.log"
	cfg.LogMaxSize = "10 * 1024 * 1024"
	return cfg
}

// InputColumns 返回原始文件中必须存在的列，顺序与文件一致
func (c *Config) InputColumns() []string {
	cols := []string{c.Columns.State, c.Columns.TotalPop}
	cols = append(cols, c.Columns.Demographic...)
	return append(cols, c.Columns.Income, c.Columns.GenderPop)
}

// HistogramFile 返回某个人口列的直方图文件名
func (c *Config) HistogramFile(demographic string) string {
	return strings.ToLower(demographic) + "_distribution.png"
}

// Path 将文件名拼接到工作目录下
func (c *Config) Path(name string) string {
	return filepath.Join(c.WorkDir, name)
}

// OutputFiles 列出一次完整运行生成的全部图表文件
func (c *Config) OutputFiles() []string {
	files := []string{c.Report.ScatterFile}
	for _, d := range c.Columns.Demographic {
		files = append(files, c.HistogramFile(d))
	}
	return files
}
