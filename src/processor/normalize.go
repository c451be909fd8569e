package processor

import (
	"CensusCleaning/src/utils"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// 原始文件中的列名
const (
	ColState      = "State"
	ColTotalPop   = "TotalPop"
	ColIncome     = "Income"
	ColGenderPop  = "GenderPop"
	ColMale       = "Male"
	ColFemale     = "Female"
	ColProportion = "Female_Proportion"
)

var (
	ErrNotNumeric   = errors.New("not numeric")
	ErrEmptyState   = errors.New("empty state")
	ErrBadComposite = errors.New("expected two parts separated by '_'")
)

var currencyReplacer = strings.NewReplacer("$", "", ",", "")

// ParseError 字段解析失败，Row 为从0开始的行号，未知时为 -1
type ParseError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("parse %s %q: %v", e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s at row %d %q: %v", e.Column, e.Row, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(column, value string, err error) *ParseError {
	return &ParseError{Column: column, Row: -1, Value: value, Err: err}
}

// ParseCurrency 去掉 $ 与千分位逗号后转为浮点，缺失值返回 NaN
func ParseCurrency(s string) (float64, error) {
	if utils.IsMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(currencyReplacer.Replace(s)), 64)
	if err != nil {
		return math.NaN(), parseErr(ColIncome, s, ErrNotNumeric)
	}
	return v, nil
}

// ParsePercentage 去掉 % 后转为浮点，缺失值返回 NaN
func ParsePercentage(column, s string) (float64, error) {
	if utils.IsMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, "%", "")), 64)
	if err != nil {
		return math.NaN(), parseErr(column, s, ErrNotNumeric)
	}
	return v, nil
}

// ParseCount 解析人口总数，允许 "1000.0" 这样的整数值浮点写法
func ParseCount(column, s string) (int64, error) {
	t := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, parseErr(column, s, ErrNotNumeric)
	}
	return int64(f), nil
}

// SplitComposite 拆分 "1234M_5678F" 形式的组合字段
// 每部分去掉最后一个类型标记字符，空串视为缺失
func SplitComposite(s string) (male, female sql.NullInt64, err error) {
	if utils.IsMissing(s) {
		return male, female, nil
	}

	parts := strings.Split(strings.TrimSpace(s), "_")
	if len(parts) != 2 {
		return male, female, parseErr(ColGenderPop, s, ErrBadComposite)
	}

	if male, err = parseMarked(parts[0]); err != nil {
		return male, female, parseErr(ColGenderPop, s, err)
	}
	if female, err = parseMarked(parts[1]); err != nil {
		return male, female, parseErr(ColGenderPop, s, err)
	}
	return male, female, nil
}

func parseMarked(part string) (sql.NullInt64, error) {
	r := []rune(part)
	if len(r) > 0 {
		r = r[:len(r)-1]
	}
	digits := string(r)
	if digits == "" {
		return sql.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return sql.NullInt64{}, ErrNotNumeric
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

// NormalizeFields 将原始字符串表转换为类型化的记录
// GenderPop 拆分为 Male/Female 后不再保留
func NormalizeFields(df dataframe.DataFrame) (Table, error) {
	required := append([]string{ColState, ColTotalPop, ColIncome, ColGenderPop}, DemographicColumns[:]...)
	if missing := utils.MissingColumns(df, required); len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %v", missing)
	}

	states := df.Col(ColState).Records()
	pops := df.Col(ColTotalPop).Records()
	incomes := df.Col(ColIncome).Records()
	genders := df.Col(ColGenderPop).Records()
	var demo [NumDemographics][]string
	for i, col := range DemographicColumns {
		demo[i] = df.Col(col).Records()
	}

	table := make(Table, df.Nrow())
	for row := range table {
		rec, err := normalizeRow(states[row], pops[row], incomes[row], genders[row], demo, row)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Row = row
			}
			return nil, err
		}
		table[row] = rec
	}
	return table, nil
}

func normalizeRow(state, pop, income, gender string, demo [NumDemographics][]string, row int) (StateRecord, error) {
	var (
		rec StateRecord
		err error
	)

	rec.State = strings.TrimSpace(state)
	if utils.IsMissing(rec.State) {
		return rec, parseErr(ColState, state, ErrEmptyState)
	}
	if rec.TotalPop, err = ParseCount(ColTotalPop, pop); err != nil {
		return rec, err
	}
	if rec.Income, err = ParseCurrency(income); err != nil {
		return rec, err
	}
	if rec.Male, rec.Female, err = SplitComposite(gender); err != nil {
		return rec, err
	}
	for i, col := range DemographicColumns {
		if rec.Demographics[i], err = ParsePercentage(col, demo[i][row]); err != nil {
			return rec, err
		}
	}
	rec.FemaleProportion = math.NaN()
	return rec, nil
}
