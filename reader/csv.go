package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/vegasq/csvcat/table"
)

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedFile is returned when a file cannot be parsed as a table.
	ErrMalformedFile = errors.New("malformed file")
)

const utf8BOM = "\ufeff"

// Exists reports whether path exists. Paths that cannot be checked for
// other reasons, such as permissions, are reported as existing so the
// real error surfaces when the file is opened.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Load reads path into a table. Files ending in .parquet are read as
// Parquet; everything else is read as CSV.
func Load(path string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads a comma-separated file whose first line is the header.
// Files ending in .gz or .zst are decompressed while reading.
func LoadCSV(path string) (*table.Table, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	src, err := decompress(path, file)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	tbl, err := ReadCSV(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return tbl, nil
}

// ReadCSV reads CSV data from r. An input without a header yields an empty
// table with no columns.
func ReadCSV(r io.Reader) (*table.Table, error) {
	csvReader := csv.NewReader(r)

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return table.Empty(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrMalformedFile, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows := make([]table.Row, 0)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return table.New(header, rows), nil
}

// openFile opens path, mapping a missing file to ErrFileNotFound.
func openFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// decompress wraps r in a decompressor chosen by the file extension.
func decompress(path string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
