package core

import "errors"

var (
	ErrConditionParse   = errors.New("unmatched condition")
	ErrColumnNotFound   = errors.New("column not found")
	ErrFileLoad         = errors.New("cannot load file")
	ErrValueConversion  = errors.New("value is not a number")
	ErrEmptyTable       = errors.New("table is empty")
	ErrDuplicateHandler = errors.New("duplicate handler")
)
