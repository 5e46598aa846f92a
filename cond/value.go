package cond

import (
	"errors"
	"strconv"
	"strings"
)

// Value is a condition or cell value, numeric when its text parses as a float.
type Value struct {
	Text    string
	Number  float64
	Numeric bool
}

// Coerce converts text to a numeric Value when possible and keeps the
// original string otherwise. Surrounding whitespace is ignored for the
// numeric attempt; overflowing literals become ±Inf.
func Coerce(text string) Value {
	number, err := ParseNumber(text)
	if err != nil {
		return Value{Text: text}
	}
	return Value{Text: text, Number: number, Numeric: true}
}

// ParseNumber parses text as a float64 after trimming surrounding whitespace.
func ParseNumber(text string) (float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return number, nil
		}
		return 0, err
	}
	return number, nil
}

// Compare orders two values: numerically when both are numbers, by string
// otherwise. ok is false when exactly one side is numeric, since a number
// and a text have no order.
func Compare(a, b Value) (cmp int, ok bool) {
	switch {
	case a.Numeric && b.Numeric:
		if a.Number < b.Number {
			return -1, true
		} else if a.Number > b.Number {
			return 1, true
		}
		return 0, true
	case !a.Numeric && !b.Numeric:
		return strings.Compare(a.Text, b.Text), true
	default:
		return 0, false
	}
}
