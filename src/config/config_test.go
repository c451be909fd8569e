package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig()

	assert.Same(t, cfg, LoadConfig())
	assert.Equal(t, ".", cfg.WorkDir)
	assert.Equal(t, []string{"states*.csv", "states*.xlsx"}, cfg.Input.Patterns)
	assert.Equal(t, 15, cfg.Report.HistogramBins)
	assert.Equal(t, "cleaned_us_census_data.csv", cfg.ExportCSV)
}

func TestInputColumns(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{
		"State", "TotalPop", "Hispanic", "White", "Black",
		"Native", "Asian", "Pacific", "Income", "GenderPop",
	}, cfg.InputColumns())
}

func TestOutputFiles(t *testing.T) {
	cfg := Default()
	cfg.WorkDir = "out"

	assert.Equal(t, "white_distribution.png", cfg.HistogramFile("White"))
	assert.Equal(t, filepath.Join("out", "x.csv"), cfg.Path("x.csv"))
	assert.Equal(t, []string{
		"income_vs_female_proportion.png",
		"hispanic_distribution.png",
		"white_distribution.png",
		"black_distribution.png",
		"native_distribution.png",
		"asian_distribution.png",
		"pacific_distribution.png",
	}, cfg.OutputFiles())
}

func TestDefaultIsIndependent(t *testing.T) {
	a := Default()
	b := Default()
	a.Columns.Demographic[0] = "changed"

	assert.Equal(t, "Hispanic", b.Columns.Demographic[0])
}
