package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/go-pdf/fpdf"
)

const (
	pdfCellW   = 25.0
	pdfCellH   = 18.0
	pdfHeaderH = 10.0
)

// WriteMonthPDF writes an A4 month sheet for g. Core PDF fonts only cover
// Latin text, so the sheet always uses the English labels.
func WriteMonthPDF(w io.Writer, g calendar.Grid, selected *calendar.CalendarDate) error {
	labels := EnglishLabels

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Calendar %s", g.Reference), false)
	pdf.AddPage()
	left, _, _, _ := pdf.GetMargins()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(pdfCellW*calendar.GridColumns, 12, labels.Title(g.Reference), "", 1, "CM", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for _, wd := range labels.Weekdays {
		pdf.CellFormat(pdfCellW, pdfHeaderH, wd, "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 14)
	for r := 0; r < calendar.GridRows; r++ {
		pdf.SetX(left)
		for _, c := range g.Row(r) {
			fill := false
			pdf.SetTextColor(0, 0, 0)
			switch {
			case c.Membership != calendar.Current:
				pdf.SetTextColor(160, 160, 160)
			case selected != nil && g.Reference.Contains(*selected) && selected.Day() == c.Day:
				pdf.SetFillColor(180, 200, 255)
				fill = true
			}
			pdf.CellFormat(pdfCellW, pdfCellH, fmt.Sprintf("%d", c.Day), "1", 0, "CM", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)

	if selected != nil {
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, "Selected: "+selected.Format(calendar.DisplayLayout), "", 1, "LM", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render month sheet: %w", err)
	}
	return nil
}

// ExportMonthPDF writes the month sheet to path, creating its directory.
func ExportMonthPDF(path string, g calendar.Grid, selected *calendar.CalendarDate) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteMonthPDF(f, g, selected)
}
