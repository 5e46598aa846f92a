// Package load reads CSV files into tables.
//
// A Source wraps a go-billy filesystem, so the same loading code serves the
// operating system and an in-memory filesystem:
//
//	source, err := load.NewFileSource("/data")
//	table, err := source.Load("products.csv")
//
//	source := load.NewMemorySource() // for tests
//
// The first CSV record is the header and becomes the table's Columns, in
// file order. Records shorter than the header are padded with empty values,
// extra fields are dropped and blank lines are skipped.
package load
