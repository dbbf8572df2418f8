// Package report renders filtered student records as downloadable PDF and
// CSV documents. Renderers never query; they format the rows they are given.
package report

import (
	"fmt"
	"time"
)

// Format is a supported download format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// ParseFormat validates a download query value.
func ParseFormat(value string) (Format, bool) {
	switch Format(value) {
	case FormatPDF:
		return FormatPDF, true
	case FormatCSV:
		return FormatCSV, true
	default:
		return "", false
	}
}

// ContentType returns the response media type for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the attachment name for a report generated at t.
func (f Format) Filename(t time.Time) string {
	return fmt.Sprintf("ramadan_data_%s.%s", t.Format("2006-01-02"), f)
}

// NotAvailable fills optional cells that have no value.
const NotAvailable = "N/A"
