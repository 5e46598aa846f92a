package op

import (
	"fmt"

	"github.com/nickyhof/CsvHandler/cond"
	"github.com/nickyhof/CsvHandler/core"
)

type Filter struct {
	column   string
	operator cond.Operator
	value    cond.Value
}

func NewFilter(condition cond.Condition) *Filter {
	return &Filter{
		column:   condition.Column,
		operator: condition.Operator,
		value:    condition.Value,
	}
}

// ParseFilter parses a condition such as "price<350" into a Filter.
func ParseFilter(condition string) (*Filter, error) {
	parsed, err := cond.Parse(condition)
	if err != nil {
		return nil, err
	}
	return NewFilter(parsed), nil
}

func (f *Filter) Kind() Kind {
	return FilterKind
}

func (f *Filter) Column() string {
	return f.column
}

func (f *Filter) Operator() cond.Operator {
	return f.operator
}

func (f *Filter) Value() cond.Value {
	return f.value
}

// Apply returns the rows matching the condition, in their original order.
func (f *Filter) Apply(table core.Table) (core.Table, error) {
	result := make([]core.Row, 0, len(table.Rows))
	for i, row := range table.Rows {
		ok, err := f.matches(cond.Coerce(row[f.column]))
		if err != nil {
			return core.Table{}, fmt.Errorf("%w (row %d)", err, i+1)
		}
		if ok {
			result = append(result, row)
		}
	}
	return table.WithRows(result), nil
}

func (f *Filter) matches(value cond.Value) (bool, error) {
	if value.Numeric && f.value.Numeric {
		switch f.operator {
		case cond.GreaterThanOperator:
			return value.Number > f.value.Number, nil
		case cond.LessThanOperator:
			return value.Number < f.value.Number, nil
		default:
			return value.Number == f.value.Number, nil
		}
	}

	if f.operator == cond.EqualsOperator {
		return !value.Numeric && !f.value.Numeric && value.Text == f.value.Text, nil
	}

	cmp, ok := cond.Compare(value, f.value)
	if !ok {
		return false, fmt.Errorf("%w: cannot compare '%s' %s '%s' in column '%s'",
			core.ErrValueConversion, value.Text, f.operator, f.value.Text, f.column)
	}
	if f.operator == cond.GreaterThanOperator {
		return cmp > 0, nil
	}
	return cmp < 0, nil
}
