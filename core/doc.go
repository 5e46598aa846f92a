// Package core provides the core types used throughout csv-handler.
//
// The package defines the in-memory table model and the error kinds shared
// by the parser, the handlers, the loader and the engine.
//
// # Table
//
// A Table is an ordered list of rows plus the ordered column list taken
// from the CSV header. Every value is kept as a string; numeric handling
// happens on demand in the handlers.
//
//	table := core.Table{
//	    Columns: core.Columns{"name", "brand", "price"},
//	    Rows: []core.Row{
//	        {"name": "iphone 14", "brand": "apple", "price": "799"},
//	    },
//	}
//
// # Errors
//
// Errors are sentinels wrapped with context, test them with errors.Is:
//   - ErrConditionParse: a condition string does not match the grammar
//   - ErrColumnNotFound: a handler references a column absent from the table
//   - ErrFileLoad: the CSV file is missing, not a regular file or unreadable
//   - ErrValueConversion: a non-numeric value where a number is required
//   - ErrEmptyTable: an aggregation over zero rows
//   - ErrDuplicateHandler: two handlers of the same kind in one pipeline
package core
