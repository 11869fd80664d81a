package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vijay-prabhu/disha/internal/scholarship"
)

// JSON writes data as JSON to stdout
func JSON(data any) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as JSON to the given writer
func JSONTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// BadgeFunc decorates a scholarship status label, e.g. with color
type BadgeFunc func(state scholarship.State, label string) string

// Printer renders command results in one format
type Printer struct {
	W      io.Writer
	Format string    // table or json
	Badge  BadgeFunc // optional
}

// NewPrinter creates a Printer writing to stdout
func NewPrinter(format string) *Printer {
	return &Printer{W: os.Stdout, Format: format}
}

// Print writes data in the printer's format
func (p *Printer) Print(data any) error {
	switch p.Format {
	case "json":
		return JSONTo(p.W, data)
	case "table", "":
		return p.table(data)
	default:
		return fmt.Errorf("unknown output format: %s", p.Format)
	}
}

// Output writes data in the specified format to stdout
func Output(format string, data any) error {
	return NewPrinter(format).Print(data)
}
