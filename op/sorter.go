package op

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/nickyhof/CsvHandler/cond"
	"github.com/nickyhof/CsvHandler/core"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type Sorter struct {
	column    string
	direction Direction
}

// NewSorter builds a Sorter from a condition whose value is asc or desc.
func NewSorter(condition cond.Condition) (*Sorter, error) {
	if condition.Operator != cond.EqualsOperator {
		return nil, fmt.Errorf("%w \"%s\": sort direction must be given with '='", core.ErrConditionParse, condition)
	}
	direction := Direction(condition.Value.Text)
	if direction != Ascending && direction != Descending {
		return nil, fmt.Errorf("%w \"%s\": unknown sort direction '%s', expected asc or desc", core.ErrConditionParse, condition, condition.Value.Text)
	}
	return &Sorter{column: condition.Column, direction: direction}, nil
}

// ParseSorter parses a condition such as "price=asc" into a Sorter.
func ParseSorter(condition string) (*Sorter, error) {
	parsed, err := cond.Parse(condition)
	if err != nil {
		return nil, err
	}
	return NewSorter(parsed)
}

func (s *Sorter) Kind() Kind {
	return SortKind
}

func (s *Sorter) Column() string {
	return s.column
}

func (s *Sorter) Direction() Direction {
	return s.direction
}

type sortEntry struct {
	key float64
	row core.Row
}

// Apply returns the rows ordered by the numeric value of the column. Rows
// with equal keys keep their relative order.
func (s *Sorter) Apply(table core.Table) (core.Table, error) {
	entries := make([]sortEntry, len(table.Rows))
	for i, row := range table.Rows {
		key, err := toNumber(row, s.column, i)
		if err != nil {
			return core.Table{}, err
		}
		entries[i] = sortEntry{key: key, row: row}
	}

	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		if s.direction == Descending {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})

	rows := make([]core.Row, len(entries))
	for i, entry := range entries {
		rows[i] = entry.row
	}
	return table.WithRows(rows), nil
}
