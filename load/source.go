package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/osfs"

	"github.com/nickyhof/CsvHandler/core"
)

var ErrNotInitialized = errors.New("source not initialized")

type Source struct {
	fs billy.Filesystem
}

// IsInitialized returns true if the source has a filesystem
func (s *Source) IsInitialized() bool {
	return s != nil && s.fs != nil
}

// Filesystem exposes the underlying filesystem
func (s *Source) Filesystem() billy.Filesystem {
	return s.fs
}

func NewMemorySource() Source {
	return Source{fs: memfs.New()}
}

func NewFileSource(baseDir string) (Source, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %v", core.ErrFileLoad, err)
	}
	if !info.IsDir() {
		return Source{}, fmt.Errorf("%w: %s is not a directory", core.ErrFileLoad, baseDir)
	}

	return Source{fs: osfs.New(baseDir)}, nil
}

// Load reads the CSV file at path. The path must name an existing regular
// file with a header row.
func (s *Source) Load(path string) (core.Table, error) {
	if !s.IsInitialized() {
		return core.Table{}, ErrNotInitialized
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return core.Table{}, fmt.Errorf("%w: file %s doesn't exist", core.ErrFileLoad, path)
	}
	if !info.Mode().IsRegular() {
		return core.Table{}, fmt.Errorf("%w: %s is not a regular file", core.ErrFileLoad, path)
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return core.Table{}, fmt.Errorf("%w: %v", core.ErrFileLoad, err)
	}
	defer file.Close()

	table, err := readTable(file)
	if err != nil {
		return core.Table{}, fmt.Errorf("%w: %s: %v", core.ErrFileLoad, path, err)
	}
	return table, nil
}

func readTable(r io.Reader) (core.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return core.Table{}, errors.New("missing header row")
	}
	if err != nil {
		return core.Table{}, err
	}

	table := core.Table{Columns: core.Columns(header), Rows: make([]core.Row, 0)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return core.Table{}, err
		}

		row := make(core.Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
