package db

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/nickyhof/CsvHandler/core"
	"github.com/nickyhof/CsvHandler/load"
	"github.com/nickyhof/CsvHandler/op"
)

type Engine struct {
	*load.Source
}

func NewEngine(source *load.Source) *Engine {
	return &Engine{Source: source}
}

// Execute loads the CSV file at path and runs the handlers over it.
func (engine *Engine) Execute(path string, handlers ...op.Handler) (QueryResult, error) {
	startTime := time.Now()

	table, err := engine.Load(path)
	if err != nil {
		return QueryResult{}, err
	}
	slog.Debug("table loaded", "path", path, "rows", table.Len(), "columns", len(table.Columns))

	result, applied, err := run(table, handlers)
	if err != nil {
		return QueryResult{}, err
	}

	queryResult := QueryResult{
		Columns:          slices.Clone(result.Columns),
		Data:             result.Data(),
		RecordsRead:      table.Len(),
		ExecutionTimeSec: time.Since(startTime).Seconds(),
		ExecutionOps:     applied,
	}
	slog.Debug("query executed",
		"rows", len(queryResult.Data),
		"handlers", applied,
		"duration", queryResult.ExecutionTime())

	return queryResult, nil
}

// Run applies the handlers to table in the fixed order filter, sort,
// aggregate, whatever order they are given in. Nil handlers are skipped and
// at most one handler of each kind is allowed. Every handler's column must
// belong to the table's columns.
func Run(table core.Table, handlers ...op.Handler) (core.Table, error) {
	result, _, err := run(table, handlers)
	return result, err
}

func run(table core.Table, handlers []op.Handler) (core.Table, int, error) {
	ordered, err := orderHandlers(handlers)
	if err != nil {
		return core.Table{}, 0, err
	}

	columns := table.Columns
	result := table
	for _, handler := range ordered {
		if !columns.Contains(handler.Column()) {
			return core.Table{}, 0, fmt.Errorf("%w: there's no column '%s' in csv-file", core.ErrColumnNotFound, handler.Column())
		}

		rowsIn := result.Len()
		result, err = handler.Apply(result)
		if err != nil {
			return core.Table{}, 0, fmt.Errorf("%s on '%s': %w", handler.Kind(), handler.Column(), err)
		}
		slog.Debug("handler applied",
			"kind", handler.Kind().String(),
			"column", handler.Column(),
			"rows_in", rowsIn,
			"rows_out", result.Len())
	}

	return result, len(ordered), nil
}

// orderHandlers drops nil handlers and sorts the rest by kind.
func orderHandlers(handlers []op.Handler) ([]op.Handler, error) {
	seen := make(map[op.Kind]bool)
	ordered := make([]op.Handler, 0, len(handlers))
	for _, handler := range handlers {
		if isNil(handler) {
			continue
		}
		if seen[handler.Kind()] {
			return nil, fmt.Errorf("%w: more than one %s handler", core.ErrDuplicateHandler, handler.Kind())
		}
		seen[handler.Kind()] = true
		ordered = append(ordered, handler)
	}

	slices.SortStableFunc(ordered, func(a, b op.Handler) int {
		return int(a.Kind()) - int(b.Kind())
	})
	return ordered, nil
}

// isNil also catches typed nil pointers such as (*op.Filter)(nil).
func isNil(handler op.Handler) bool {
	switch h := handler.(type) {
	case nil:
		return true
	case *op.Filter:
		return h == nil
	case *op.Sorter:
		return h == nil
	case *op.Aggregator:
		return h == nil
	default:
		return false
	}
}
