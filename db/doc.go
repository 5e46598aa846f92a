// Package db provides the pipeline runner and result rendering.
//
// Run applies handlers to an in-memory table. The Engine type loads a CSV
// file from its source first and wraps the outcome in a QueryResult.
//
// # Engine Usage
//
//	engine := db.NewEngine(&source)
//	result, err := engine.Execute("products.csv", filter, sorter, aggregator)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Display(os.Stdout)
//
// Handlers run as filter, then sort, then aggregate, regardless of the
// order they are passed in. Every handler column must exist in the loaded
// table.
//
// # Rendering
//
// QueryResult.Display writes a grid table through SimpleTable; the header
// row is the result's columns, which is the aggregation mode name after an
// aggregation.
package db
