package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/helpers"
)

// Column is a fixed PDF table column.
type Column struct {
	Title    string
	Width    float64 // mm
	MaxChars int
}

// Columns is the PDF table layout. Widths add up to the printable width of
// an A4 landscape page with 10mm side margins.
var Columns = []Column{
	{Title: "#", Width: 15, MaxChars: 6},
	{Title: "Name", Width: 70, MaxChars: 38},
	{Title: "Roll No", Width: 40, MaxChars: 20},
	{Title: "College", Width: 55, MaxChars: 30},
	{Title: "State", Width: 40, MaxChars: 20},
	{Title: "Hostel", Width: 35, MaxChars: 18},
	{Title: "Year", Width: 22, MaxChars: 10},
}

type rgb struct{ r, g, b int }

var (
	brandColor = rgb{180, 83, 9}
	zebraColor = rgb{255, 247, 237}
	white      = rgb{255, 255, 255}
	textColor  = rgb{31, 41, 55}
	mutedColor = rgb{107, 114, 128}
)

const sideMargin = 10.0

// PDFOptions carries the branding printed on the report.
type PDFOptions struct {
	Title       string
	Brand       string
	Year        int
	GeneratedAt time.Time
	Layout      *LayoutOptions // nil means DefaultLayout
}

// WritePDF renders rows as a paginated table and writes the document to w.
func WritePDF(w io.Writer, rows []models.Student, opts PDFOptions) error {
	pdf, err := buildPDF(rows, opts)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func cells(index int, s models.Student) []string {
	return []string{
		strconv.Itoa(index),
		s.Name,
		s.RollNumber,
		s.CollegeType,
		s.State,
		helpers.StringOr(s.Hostel, NotAvailable),
		helpers.StringOr(s.Year, NotAvailable),
	}
}

func buildPDF(rows []models.Student, opts PDFOptions) (*fpdf.Fpdf, error) {
	layout := DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	if opts.Year == 0 {
		opts.Year = opts.GeneratedAt.Year()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(sideMargin, layout.PageMargin, sideMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator(opts.Brand, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	setFill := func(c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
	setText := func(c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

	for _, page := range Paginate(len(rows), layout) {
		pdf.AddPage()

		if page.Title {
			setText(brandColor)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.CellFormat(200, layout.TitleHeight, tr(opts.Title), "", 0, "L", false, 0, "")
			setText(mutedColor)
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, layout.TitleHeight, opts.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
		}

		if page.Header {
			setFill(brandColor)
			setText(white)
			pdf.SetFont("Helvetica", "B", 10)
			for _, col := range Columns {
				pdf.CellFormat(col.Width, layout.HeaderHeight, col.Title, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(layout.HeaderHeight)
		}

		pdf.SetFont("Helvetica", "", 9)
		setText(textColor)
		for i := page.First; i < page.Last; i++ {
			if i%2 == 0 {
				setFill(white)
			} else {
				setFill(zebraColor)
			}
			for c, value := range cells(i+1, rows[i]) {
				col := Columns[c]
				pdf.CellFormat(col.Width, layout.RowHeight, tr(Truncate(value, col.MaxChars)), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(layout.RowHeight)
		}

		if page.Footer {
			pdf.Ln(4)
			setText(textColor)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, fmt.Sprintf("Total Records: %d", len(rows)), "", 1, "L", false, 0, "")
			setText(mutedColor)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("© %d %s", opts.Year, opts.Brand)), "", 1, "C", false, 0, "")
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to render pdf: %w", pdf.Error())
	}
	return pdf, nil
}
