package report

// LayoutOptions holds the vertical metrics of the PDF table, in millimetres.
type LayoutOptions struct {
	PageHeight   float64
	PageMargin   float64 // top margin and the hard bottom edge for the footer
	BottomMargin float64 // rows never extend past PageHeight-BottomMargin
	TitleHeight  float64
	HeaderHeight float64
	RowHeight    float64
	FooterHeight float64
	RepeatHeader bool
}

// DefaultLayout matches an A4 landscape page.
func DefaultLayout() LayoutOptions {
	return LayoutOptions{
		PageHeight:   210,
		PageMargin:   10,
		BottomMargin: 20,
		TitleHeight:  12,
		HeaderHeight: 8,
		RowHeight:    7,
		FooterHeight: 16,
		RepeatHeader: true,
	}
}

// Page describes one output page: rows [First, Last) and which decorations
// it carries.
type Page struct {
	Number int
	First  int
	Last   int
	Title  bool
	Header bool
	Footer bool
}

// Rows returns the number of table rows on the page.
func (p Page) Rows() int {
	return p.Last - p.First
}

// Paginate plans how n rows are spread over pages. Every page stays within
// the bottom margin and the footer appears on the last page only.
func Paginate(n int, opts LayoutOptions) []Page {
	limit := opts.PageHeight - opts.BottomMargin
	pages := []Page{}

	current := Page{Number: 1, Title: true, Header: true}
	y := opts.PageMargin + opts.TitleHeight + opts.HeaderHeight

	for i := 0; i < n; i++ {
		if y+opts.RowHeight > limit && current.Rows() > 0 {
			pages = append(pages, current)
			current = Page{Number: len(pages) + 1, First: i, Last: i, Header: opts.RepeatHeader}
			y = opts.PageMargin
			if opts.RepeatHeader {
				y += opts.HeaderHeight
			}
		}
		current.Last = i + 1
		y += opts.RowHeight
	}

	if y+opts.FooterHeight > opts.PageHeight-opts.PageMargin {
		pages = append(pages, current)
		current = Page{Number: len(pages) + 1, First: n, Last: n}
	}
	current.Footer = true
	return append(pages, current)
}

// Truncate shortens s to at most max characters, marking the cut with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
