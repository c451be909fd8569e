package processor

import (
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cases := map[string]float64{
		"$45,200":        45200,
		"$43,296.36":     43296.36,
		"$1,234,567.891": 1234567.891,
		"50000":          50000,
		" $7 ":           7,
	}
	for in, want := range cases {
		got, err := ParseCurrency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseCurrency("")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestParseCurrencyNotNumeric(t *testing.T) {
	_, err := ParseCurrency("$12k")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Income", pe.Column)
	assert.Equal(t, "$12k", pe.Value)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestParsePercentage(t *testing.T) {
	got, err := ParsePercentage("White", "42.5%")
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)

	got, err = ParsePercentage("White", "0%")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ParsePercentage("Black", "NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	_, err = ParsePercentage("Asian", "abc%")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("TotalPop", "4830620")
	require.NoError(t, err)
	assert.Equal(t, int64(4830620), n)

	n, err = ParseCount("TotalPop", "1000.0")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	_, err = ParseCount("TotalPop", "")
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = ParseCount("TotalPop", "10.5")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestSplitComposite(t *testing.T) {
	male, female, err := SplitComposite("1234M_5678F")
	require.NoError(t, err)
	assert.Equal(t, sql.NullInt64{Int64: 1234, Valid: true}, male)
	assert.Equal(t, sql.NullInt64{Int64: 5678, Valid: true}, female)

	male, female, err = SplitComposite("M_5678F")
	require.NoError(t, err)
	assert.False(t, male.Valid)
	assert.Equal(t, int64(5678), female.Int64)

	male, female, err = SplitComposite("2341093M_F")
	require.NoError(t, err)
	assert.Equal(t, int64(2341093), male.Int64)
	assert.False(t, female.Valid)

	male, female, err = SplitComposite("")
	require.NoError(t, err)
	assert.False(t, male.Valid)
	assert.False(t, female.Valid)
}

func TestSplitCompositeMalformed(t *testing.T) {
	for _, in := range []string{"1234M", "1M_2F_3X", "12xM_5F"} {
		_, _, err := SplitComposite(in)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), in)
		assert.Equal(t, "GenderPop", pe.Column)
	}
}

func rawFrame(rows ...[]string) dataframe.DataFrame {
	records := [][]string{{
		"State", "TotalPop", "Hispanic", "White", "Black",
		"Native", "Asian", "Pacific", "Income", "GenderPop",
	}}
	return dataframe.LoadRecords(append(records, rows...),
		dataframe.DetectTypes(false),
	)
}

func TestNormalizeFields(t *testing.T) {
	df := rawFrame(
		[]string{"Test", "1000", "10%", "80%", "", "0%", "5%", "5%", "$50,000", "400M_600F"},
		[]string{"Alaska", "733375", "5.91%", "60.91%", "2.85%", "16.39%", "5.45%", "1.06%", "$70,354.74", "384160M_349215F"},
	)

	table, err := NormalizeFields(df)
	require.NoError(t, err)
	require.Len(t, table, 2)

	r := table[0]
	assert.Equal(t, "Test", r.State)
	assert.Equal(t, int64(1000), r.TotalPop)
	assert.Equal(t, 50000.0, r.Income)
	assert.Equal(t, int64(400), r.Male.Int64)
	assert.Equal(t, int64(600), r.Female.Int64)
	assert.Equal(t, 10.0, r.Demographics[Hispanic])
	assert.True(t, math.IsNaN(r.Demographics[Black]))
	assert.True(t, math.IsNaN(r.FemaleProportion))

	assert.Equal(t, 16.39, table[1].Demographic("Native"))
}

func TestNormalizeFieldsReportsRow(t *testing.T) {
	df := rawFrame(
		[]string{"Ohio", "1", "1%", "1%", "1%", "1%", "1%", "1%", "$1", "1M_1F"},
		[]string{"Iowa", "1", "1%", "1%", "1%", "1%", "1%", "1%", "$1.2.3", "1M_1F"},
	)

	_, err := NormalizeFields(df)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, "Income", pe.Column)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNormalizeFieldsEmptyState(t *testing.T) {
	df := rawFrame(
		[]string{"", "1", "1%", "1%", "1%", "1%", "1%", "1%", "$1", "1M_1F"},
	)

	_, err := NormalizeFields(df)

	assert.ErrorIs(t, err, ErrEmptyState)
}

func TestNormalizeFieldsMissingColumn(t *testing.T) {
	df := dataframe.LoadRecords([][]string{{"State"}, {"Ohio"}})

	_, err := NormalizeFields(df)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TotalPop")
}
