// Package op provides the table handlers applied by the engine.
//
// Every handler is built from a parsed condition (see package cond) and
// turns one table into a new one; the input table is never modified.
//
// # Filter
//
// Filter keeps the rows whose column compares true against the value:
//
//	filter, _ := op.ParseFilter("brand=apple")
//	apples, err := filter.Apply(table)
//
// # Sorter
//
// Sorter orders rows by the numeric value of a column, asc or desc. The
// sort is stable in both directions:
//
//	sorter, _ := op.ParseSorter("price=desc")
//
// # Aggregator
//
// Aggregator reduces a numeric column to one value with avg, med, min or
// max and returns a single-row table keyed by the mode name:
//
//	aggregator, _ := op.ParseAggregator("price=max")
//	result, _ := aggregator.Apply(table) // {max: 1199}
//
// # Architecture
//
// The layering is:
//
//	Condition Parser (cond/)
//	     ↓
//	Handlers (op/)     ← This package
//	     ↓
//	Engine (db/)
package op
