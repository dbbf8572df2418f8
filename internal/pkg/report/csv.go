package report

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/helpers"
)

// CSVHeader is the first line of every CSV report.
var CSVHeader = []string{"Name", "Roll Number", "College Type", "State", "Hostel", "Year"}

// CSVOptions selects the CSV dialect.
type CSVOptions struct {
	// Strict writes RFC 4180 output. The default legacy dialect wraps the
	// name in quotes and writes every other field verbatim.
	Strict bool
}

func csvFields(s models.Student) []string {
	return []string{
		s.Name,
		s.RollNumber,
		s.CollegeType,
		s.State,
		helpers.StringOr(s.Hostel, NotAvailable),
		helpers.StringOr(s.Year, NotAvailable),
	}
}

// WriteCSV writes rows to w in the selected dialect.
func WriteCSV(w io.Writer, rows []models.Student, opts CSVOptions) error {
	if opts.Strict {
		return writeStrictCSV(w, rows)
	}
	return writeLegacyCSV(w, rows)
}

// writeLegacyCSV keeps the byte format existing spreadsheets import: lines
// joined by "\n" without a trailing newline, only the name quoted.
func writeLegacyCSV(w io.Writer, rows []models.Student) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(CSVHeader, ","))
	for _, row := range rows {
		fields := csvFields(row)
		fields[0] = `"` + fields[0] + `"`
		bw.WriteString("\n")
		bw.WriteString(strings.Join(fields, ","))
	}
	return bw.Flush()
}

func writeStrictCSV(w io.Writer, rows []models.Student) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(csvFields(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
