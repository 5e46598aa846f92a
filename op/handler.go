package op

import (
	"fmt"

	"github.com/nickyhof/CsvHandler/cond"
	"github.com/nickyhof/CsvHandler/core"
)

// Kind identifies a handler type. The engine applies handlers in ascending
// Kind order.
type Kind int

const (
	FilterKind Kind = iota
	SortKind
	AggregateKind
)

func (kind Kind) String() string {
	switch kind {
	case FilterKind:
		return "filter"
	case SortKind:
		return "sort"
	case AggregateKind:
		return "aggregate"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

// Handler is a table-to-table transformation driven by one condition.
type Handler interface {
	Kind() Kind
	Column() string
	Apply(table core.Table) (core.Table, error)
}

// numericColumn converts every value of column to a float64.
func numericColumn(table core.Table, column string) ([]float64, error) {
	values := make([]float64, len(table.Rows))
	for i, row := range table.Rows {
		value, err := toNumber(row, column, i)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func toNumber(row core.Row, column string, index int) (float64, error) {
	raw := row[column]
	value, err := cond.ParseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: could not convert '%s' in column '%s' (row %d)", core.ErrValueConversion, raw, column, index+1)
	}
	return value, nil
}
