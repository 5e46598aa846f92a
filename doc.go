// Package CsvHandler provides a small in-memory query engine for CSV files.
//
// A CSV file is loaded into a table, optionally filtered by a condition,
// sorted by a numeric column and aggregated into a single value. The result
// renders as a grid text table.
//
// # Quick Start
//
//	source, _ := load.NewFileSource(".")
//	engine := CsvHandler.Open(&source).Engine()
//
//	where, _ := op.ParseFilter("brand=apple")
//	orderBy, _ := op.ParseSorter("price=asc")
//
//	result, err := engine.Execute("products.csv", where, orderBy)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Display(os.Stdout)
//
// # Conditions
//
// All handlers share one condition grammar, column<operator>value, with the
// operator one of >, < and =:
//   - Filter: price<350, brand=apple, "name=iphone 14"
//   - Sorter: price=asc, price=desc
//   - Aggregator: price=avg, price=med, price=min, price=max
//
// Handlers always run in the order filter, sort, aggregate.
package CsvHandler
