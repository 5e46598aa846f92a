package CsvHandler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nickyhof/CsvHandler/core"
	"github.com/nickyhof/CsvHandler/db"
	"github.com/nickyhof/CsvHandler/load"
	"github.com/nickyhof/CsvHandler/op"
)

const phonesCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
iphone 14,apple,799,4.7
galaxy a54,samsung,349,4.2
poco x5 pro,xiaomi,299,4.4
iphone se,apple,429,4.1
galaxy z flip 5,samsung,999,4.6
redmi 10c,xiaomi,149,4.1
iphone 13 mini,apple,599,4.5
`

// TestFunc is the signature for test functions that work with any source
type TestFunc func(t *testing.T, engine *db.Engine)

// runWithBothSources runs a test function with both memory and file sources
func runWithBothSources(t *testing.T, testFunc TestFunc) {
	t.Run("Memory", func(t *testing.T) {
		source := load.NewMemorySource()
		writePhones(t, &source)
		testFunc(t, Open(&source).Engine())
	})

	t.Run("File", func(t *testing.T) {
		source, err := load.NewFileSource(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to initialize file source: %v", err)
		}
		writePhones(t, &source)
		testFunc(t, Open(&source).Engine())
	})
}

func writePhones(t *testing.T, source *load.Source) {
	file, err := source.Filesystem().Create("phones.csv")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte(phonesCSV)); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func parseHandlers(t *testing.T, where, orderBy, aggregate string) []op.Handler {
	var handlers []op.Handler
	if where != "" {
		filter, err := op.ParseFilter(where)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", where, err)
		}
		handlers = append(handlers, filter)
	}
	if orderBy != "" {
		sorter, err := op.ParseSorter(orderBy)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", orderBy, err)
		}
		handlers = append(handlers, sorter)
	}
	if aggregate != "" {
		aggregator, err := op.ParseAggregator(aggregate)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", aggregate, err)
		}
		handlers = append(handlers, aggregator)
	}
	return handlers
}

func TestIntegrationWholeFile(t *testing.T) {
	runWithBothSources(t, func(t *testing.T, engine *db.Engine) {
		result, err := engine.Execute("phones.csv")
		if err != nil {
			t.Fatalf("Failed to execute: %v", err)
		}
		if len(result.Data) != 10 || result.RecordsRead != 10 {
			t.Errorf("Expected all 10 rows, got %d of %d", len(result.Data), result.RecordsRead)
		}
		if result.ExecutionOps != 0 {
			t.Errorf("Expected no handlers applied, got %d", result.ExecutionOps)
		}
		if result.Data[2][0] != "redmi note 12" {
			t.Errorf("Expected file order, got %v", result.Data[2])
		}
	})
}

func TestIntegrationApplePhones(t *testing.T) {
	runWithBothSources(t, func(t *testing.T, engine *db.Engine) {
		result, err := engine.Execute("phones.csv", parseHandlers(t, "brand=apple", "price=asc", "")...)
		if err != nil {
			t.Fatalf("Failed to execute: %v", err)
		}

		var buf bytes.Buffer
		result.Display(&buf)

		expected := "" +
			"+----------------+---------+---------+----------+\n" +
			"| name           | brand   |   price |   rating |\n" +
			"+================+=========+=========+==========+\n" +
			"| iphone se      | apple   |     429 |      4.1 |\n" +
			"+----------------+---------+---------+----------+\n" +
			"| iphone 13 mini | apple   |     599 |      4.5 |\n" +
			"+----------------+---------+---------+----------+\n" +
			"| iphone 14      | apple   |     799 |      4.7 |\n" +
			"+----------------+---------+---------+----------+\n" +
			"| iphone 15 pro  | apple   |     999 |      4.9 |\n" +
			"+----------------+---------+---------+----------+\n"
		if buf.String() != expected {
			t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
		}
	})
}

func TestIntegrationAggregates(t *testing.T) {
	runWithBothSources(t, func(t *testing.T, engine *db.Engine) {
		tests := []struct {
			where     string
			aggregate string
			column    string
			expected  string
		}{
			{"brand=apple", "price=max", "max", "999"},
			{"brand=xiaomi", "price=min", "min", "149"},
			{"price>500", "price=med", "med", "999"},
			{"", "price=avg", "avg", "602"},
			{"brand=samsung", "rating=max", "max", "4.8"},
		}

		for _, test := range tests {
			result, err := engine.Execute("phones.csv", parseHandlers(t, test.where, "", test.aggregate)...)
			if err != nil {
				t.Fatalf("Failed to execute %s: %v", test.aggregate, err)
			}
			if len(result.Columns) != 1 || result.Columns[0] != test.column {
				t.Errorf("%s: expected column %s, got %v", test.aggregate, test.column, result.Columns)
			}
			if len(result.Data) != 1 || result.Data[0][0] != test.expected {
				t.Errorf("%s: expected %s, got %v", test.aggregate, test.expected, result.Data)
			}
		}
	})
}

func TestIntegrationErrors(t *testing.T) {
	runWithBothSources(t, func(t *testing.T, engine *db.Engine) {
		if _, err := engine.Execute("phones.csv", parseHandlers(t, "abc=123", "", "")...); !errors.Is(err, core.ErrColumnNotFound) {
			t.Errorf("Expected ErrColumnNotFound, got %v", err)
		}
		if _, err := engine.Execute("missing.csv", parseHandlers(t, "abc=123", "", "")...); !errors.Is(err, core.ErrFileLoad) {
			t.Errorf("Expected ErrFileLoad, got %v", err)
		}
		if _, err := engine.Execute("phones.csv", parseHandlers(t, "", "name=asc", "")...); !errors.Is(err, core.ErrValueConversion) {
			t.Errorf("Expected ErrValueConversion, got %v", err)
		}
	})
}
