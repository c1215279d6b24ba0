package output

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vegasq/csvcat/table"
)

// NoDataMessage is written instead of a table when there are no rows.
const NoDataMessage = "No data to display."

// NullValue is how a nil cell is rendered.
const NullValue = "null"

// TableFormatter renders rows as a bordered, aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table with a header line in column order followed by one
// line per row. A table with no rows produces only NoDataMessage.
func (f *TableFormatter) Format(t *table.Table) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintf(f.writer, "\n%s\n\n", NoDataMessage)
		return err
	}

	columns := t.Columns()

	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader(columns)

	for _, row := range t.Rows() {
		tw.Append(lo.Map(columns, func(col string, _ int) string {
			return FormatValue(row[col])
		}))
	}

	tw.Render()
	return nil
}

// FormatValue converts a cell to its display string. Floats are written in
// plain decimal notation without an exponent.
func FormatValue(v interface{}) string {
	if v == nil {
		return NullValue
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return decimal.NewFromFloat(f).String()
}
