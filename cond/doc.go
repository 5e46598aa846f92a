// Package cond provides lexing and parsing of handler conditions.
//
// A condition is a compact string of the form column<operator>value, the
// shared textual grammar behind --where, --order-by and --aggregate:
//
//	brand=apple
//	price<350
//	"name=iphone 15 pro"
//	price=asc
//	rating=avg
//
// The whole string is lowercased before it is matched, so column names and
// text values are case-insensitive. The operator is one of >, < and =. The
// value may contain letters, digits, underscores, whitespace and dots, and
// the condition may be wrapped in double quotes.
//
// # Parser Usage
//
//	condition, err := cond.Parse("price<350")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(condition.Column, condition.Operator, condition.Value.Number)
//
// Values are coerced to numbers when they parse as one (3.6e2 becomes 360)
// and kept as text otherwise.
package cond
