package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nickyhof/CsvHandler"
	"github.com/nickyhof/CsvHandler/core"
	"github.com/nickyhof/CsvHandler/load"
	"github.com/nickyhof/CsvHandler/op"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitQueryError      = 1
	ExitFileError       = 2
	ExitUnexpectedError = 3
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	file      string
	where     string
	aggregate string
	orderBy   string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "csv-handler",
		Short: "Filter, sort and aggregate a CSV file",
		Long: `csv-handler loads a CSV file, optionally filters, sorts and aggregates
its rows, and prints the result as a grid table.

Handlers always run in the order --where, --order-by, --aggregate.

Examples:
  # Print the whole file
  csv-handler --file products.csv

  # Apple phones, cheapest first
  csv-handler --file products.csv --where "brand=apple" --order-by "price=asc"

  # Most expensive Apple phone
  csv-handler --file products.csv --where "brand=apple" --aggregate "price=max"`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			handlers, err := buildHandlers(cmd, opts)
			if err != nil {
				return err
			}
			return execute(cmd.OutOrStdout(), opts.file, handlers)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "path to a CSV file with a header row")
	flags.StringVar(&opts.where, "where", "", `filter condition, e.g. "price<350" or "brand=apple"`)
	flags.StringVar(&opts.aggregate, "aggregate", "", `aggregation, e.g. "price=avg" (avg, med, min, max)`)
	flags.StringVar(&opts.orderBy, "order-by", "", `sort condition, e.g. "price=desc" (asc, desc)`)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline steps to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// buildHandlers parses the condition flags that were given on the command line.
func buildHandlers(cmd *cobra.Command, opts *options) ([]op.Handler, error) {
	var handlers []op.Handler
	flags := cmd.Flags()

	if flags.Changed("where") {
		filter, err := op.ParseFilter(opts.where)
		if err != nil {
			return nil, fmt.Errorf("--where: %w", err)
		}
		handlers = append(handlers, filter)
	}
	if flags.Changed("order-by") {
		sorter, err := op.ParseSorter(opts.orderBy)
		if err != nil {
			return nil, fmt.Errorf("--order-by: %w", err)
		}
		handlers = append(handlers, sorter)
	}
	if flags.Changed("aggregate") {
		aggregator, err := op.ParseAggregator(opts.aggregate)
		if err != nil {
			return nil, fmt.Errorf("--aggregate: %w", err)
		}
		handlers = append(handlers, aggregator)
	}

	return handlers, nil
}

// execute runs the pipeline and writes the table only once it fully rendered.
func execute(w io.Writer, file string, handlers []op.Handler) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrFileLoad, err)
	}

	source, err := load.NewFileSource(filepath.Dir(abs))
	if err != nil {
		return fmt.Errorf("%w: file %s doesn't exist", core.ErrFileLoad, file)
	}

	engine := CsvHandler.Open(&source).Engine()
	result, err := engine.Execute(filepath.Base(abs), handlers...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	result.Display(&buf)
	_, err = w.Write(buf.Bytes())
	return err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, core.ErrFileLoad):
		return ExitFileError
	case errors.Is(err, core.ErrConditionParse),
		errors.Is(err, core.ErrColumnNotFound),
		errors.Is(err, core.ErrValueConversion),
		errors.Is(err, core.ErrEmptyTable),
		errors.Is(err, core.ErrDuplicateHandler):
		return ExitQueryError
	default:
		return ExitUnexpectedError
	}
}
