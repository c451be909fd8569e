package report

import (
	"CensusCleaning/src/processor"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console 控制台输出，数字带千分位
type Console struct {
	out     io.Writer
	printer *message.Printer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out, printer: message.NewPrinter(language.English)}
}

// Printf 按英文习惯格式化数字后输出
func (c *Console) Printf(format string, args ...any) {
	c.printer.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Banner 输出带分隔线的标题
func (c *Console) Banner(title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", line, title, line)
}

// Number 两位小数并带千分位，NaN 输出 NaN
func (c *Console) Number(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return c.printer.Sprintf("%.2f", v)
}

// MissingValues 输出每列缺失数量
func (c *Console) MissingValues(counts []processor.MissingCount) {
	if len(counts) == 0 {
		fmt.Fprintln(c.out, "(none)")
		return
	}
	for _, mc := range counts {
		fmt.Fprintf(c.out, "%-18s %d\n", mc.Column, mc.Count)
	}
}

// DescribeTable 以统计量为行、列名为列输出描述统计
func (c *Console) DescribeTable(stats []ColumnStats) {
	table := tablewriter.NewWriter(c.out)
	header := []string{""}
	for _, s := range stats {
		header = append(header, s.Column)
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)

	rows := []struct {
		name  string
		value func(ColumnStats) float64
	}{
		{"count", func(s ColumnStats) float64 { return float64(s.Count) }},
		{"mean", func(s ColumnStats) float64 { return s.Mean }},
		{"std", func(s ColumnStats) float64 { return s.Std }},
		{"min", func(s ColumnStats) float64 { return s.Min }},
		{"25%", func(s ColumnStats) float64 { return s.Q25 }},
		{"50%", func(s ColumnStats) float64 { return s.Median }},
		{"75%", func(s ColumnStats) float64 { return s.Q75 }},
		{"max", func(s ColumnStats) float64 { return s.Max }},
	}
	for _, row := range rows {
		line := []string{row.name}
		for _, s := range stats {
			line = append(line, c.Number(row.value(s)))
		}
		table.Append(line)
	}
	table.Render()
}

// TopTable 输出收入排名
func (c *Console) TopTable(top processor.Table) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{processor.ColState, processor.ColIncome, processor.ColProportion})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, r := range top {
		table.Append([]string{r.State, c.Number(r.Income), c.Number(r.FemaleProportion)})
	}
	table.Render()
}
