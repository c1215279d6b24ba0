package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/table"
)

// ParquetReader reads Parquet files into tables.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens path and validates it as a Parquet file.
//
// Example:
//
//	r, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: failed to open parquet file: %w", ErrMalformedFile, err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// LoadParquet reads every row of a Parquet file into a table.
func LoadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// Columns returns the top-level column names in schema order.
func (r *ParquetReader) Columns() []string {
	return columnNames(r.pqFile.Schema())
}

// ReadAll reads all rows into memory. Each value is converted to its
// string form so the table looks the same as one loaded from CSV.
func (r *ParquetReader) ReadAll() (*table.Table, error) {
	columns := r.Columns()
	rows := make([]table.Row, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(columns))
		for _, col := range columns {
			row[col] = formatCell(raw[col])
		}
		rows = append(rows, row)
	}

	return table.New(columns, rows), nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
