package core

import "slices"

// Row maps a column name to its raw string value.
type Row map[string]string

// Columns is the ordered list of valid field names of a table.
type Columns []string

// Contains reports whether name is one of the columns.
func (c Columns) Contains(name string) bool {
	return slices.Contains(c, name)
}

type Table struct {
	Columns Columns
	Rows    []Row
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Values returns the value of column for every row, in row order.
func (t Table) Values(column string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[column]
	}
	return values
}

// Data flattens the table into rows of cells ordered like Columns.
func (t Table) Data() [][]string {
	data := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = row[col]
		}
		data[i] = cells
	}
	return data
}

// WithRows returns a table sharing t's columns with the given rows.
func (t Table) WithRows(rows []Row) Table {
	return Table{
		Columns: slices.Clone(t.Columns),
		Rows:    rows,
	}
}
