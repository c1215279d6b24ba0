// Package reader loads delimited text and Parquet files into tables.
//
// Every cell is loaded as its raw string form; numeric interpretation is
// left to the query package. CSV files may be gzip (.gz) or zstd (.zst)
// compressed. Parquet files are read with parquet-go and their values are
// converted to the same string forms a CSV export would contain.
//
// # Basic Usage
//
// Load a file, choosing the format from its extension:
//
//	tbl, err := reader.Load("data.csv")
//	if err != nil {
//	    if errors.Is(err, reader.ErrFileNotFound) {
//	        // report and stop
//	    }
//	    log.Fatal(err)
//	}
//
//	for _, row := range tbl.Rows() {
//	    fmt.Println(row["name"])
//	}
//
// Load a specific format directly:
//
//	tbl, err := reader.LoadCSV("data.csv.gz")
//	tbl, err := reader.LoadParquet("data.parquet")
//
// # CSV Format
//
// Files are UTF-8, comma-delimited, with the first line as the header. A
// leading byte order mark is ignored and blank lines are skipped. Every data
// line must have as many fields as the header.
package reader
