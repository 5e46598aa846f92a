package op

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"

	"github.com/nickyhof/CsvHandler/cond"
	"github.com/nickyhof/CsvHandler/core"
)

type Mode string

const (
	Avg    Mode = "avg"
	Median Mode = "med"
	Min    Mode = "min"
	Max    Mode = "max"
)

// aggregationFuncs expect a non-empty slice.
var aggregationFuncs = map[Mode]func([]float64) float64{
	Avg:    mean,
	Median: median,
	Min:    func(values []float64) float64 { return slices.Min(values) },
	Max:    func(values []float64) float64 { return slices.Max(values) },
}

type Aggregator struct {
	column string
	mode   Mode
}

// NewAggregator builds an Aggregator from a condition whose value names the
// aggregation mode.
func NewAggregator(condition cond.Condition) (*Aggregator, error) {
	if condition.Operator != cond.EqualsOperator {
		return nil, fmt.Errorf("%w \"%s\": aggregation mode must be given with '='", core.ErrConditionParse, condition)
	}
	mode := Mode(condition.Value.Text)
	if _, ok := aggregationFuncs[mode]; !ok {
		return nil, fmt.Errorf("%w \"%s\": unknown aggregation '%s', expected avg, med, min or max", core.ErrConditionParse, condition, condition.Value.Text)
	}
	return &Aggregator{column: condition.Column, mode: mode}, nil
}

// ParseAggregator parses a condition such as "price=max" into an Aggregator.
func ParseAggregator(condition string) (*Aggregator, error) {
	parsed, err := cond.Parse(condition)
	if err != nil {
		return nil, err
	}
	return NewAggregator(parsed)
}

func (a *Aggregator) Kind() Kind {
	return AggregateKind
}

func (a *Aggregator) Column() string {
	return a.column
}

func (a *Aggregator) Mode() Mode {
	return a.mode
}

// Apply reduces the column to a single-row table {mode: result}.
func (a *Aggregator) Apply(table core.Table) (core.Table, error) {
	if table.Len() == 0 {
		return core.Table{}, fmt.Errorf("%w: nothing to aggregate with %s over column '%s'", core.ErrEmptyTable, a.mode, a.column)
	}

	values, err := numericColumn(table, a.column)
	if err != nil {
		return core.Table{}, err
	}

	result, err := Aggregate(a.mode, values)
	if err != nil {
		return core.Table{}, err
	}

	key := string(a.mode)
	return core.Table{
		Columns: core.Columns{key},
		Rows:    []core.Row{{key: FormatNumber(result)}},
	}, nil
}

// Aggregate applies mode to values.
func Aggregate(mode Mode, values []float64) (float64, error) {
	fn, ok := aggregationFuncs[mode]
	if !ok {
		return 0, fmt.Errorf("unknown aggregation mode '%s'", mode)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: %s of no values", core.ErrEmptyTable, mode)
	}
	return fn(values), nil
}

// FormatNumber renders a float with the fewest digits that round-trip,
// switching to exponent form below 1e-4 and from 1e6 up.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func mean(values []float64) float64 {
	return exactSum(values) / float64(len(values))
}

// sumPrec holds the sum of any finite float64 values without rounding:
// their bits span at most 2098 places, the rest leaves room for carries.
const sumPrec = 2300

// exactSum adds values without intermediate rounding and rounds the total
// once to the nearest float64.
func exactSum(values []float64) float64 {
	acc := new(big.Float).SetPrec(sumPrec)
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return floatSum(values)
		}
		acc.Add(acc, big.NewFloat(v))
	}
	total, _ := acc.Float64()
	return total
}

// floatSum is the plain running sum, used when a value is infinite or NaN.
func floatSum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

func median(values []float64) float64 {
	sorted := slices.Sorted(slices.Values(values))
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
