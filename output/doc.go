// Package output renders tables for the terminal.
//
// The TableFormatter draws a bordered, aligned table in the style of psql:
// a header line with the column names in table order, followed by one line
// per row. A table without rows is reported with NoDataMessage instead.
//
// # Basic Usage
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewTableFormatter(&buf)
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
//	text := buf.String()
//
// # Value Rendering
//
//   - Strings are written unchanged
//   - Floats use plain decimal notation (45000, 32.5), never an exponent
//   - nil is written as "null"
package output
