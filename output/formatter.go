package output

import (
	"io"

	"github.com/vegasq/csvcat/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a table and SetOutput to change
// the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
