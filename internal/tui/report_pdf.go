package tui

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"weekview/internal/models"
	"weekview/internal/timegrid"
)

// ExportWeekPDF writes a one-page agenda of the given week and returns
// the generated file name. Events are grouped into their rolling day
// columns, matching what the grid displays.
func ExportWeekPDF(days []timegrid.WeekDay, events []models.Event, startHour int) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("no days to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Week %d, %s",
		timegrid.ISOWeekNumber(days[0].Date),
		timegrid.MonthYearLabel(days[0].Date)))
	pdf.Ln(12)

	total := 0
	for _, day := range days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, day.Date.Format("Monday, January 2"))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		columnStart := timegrid.DateAt(day.Date, startHour, 0)
		columnEnd := columnStart.AddDate(0, 0, 1)
		dayCount := 0
		for _, ev := range events {
			if ev.Start.Before(columnStart) || !ev.Start.Before(columnEnd) {
				continue
			}
			line := fmt.Sprintf("  %s - %s  %s",
				ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Title)
			if ev.Category != "" {
				line += "  [" + ev.Category + "]"
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(6)
			dayCount++
			total++
		}
		if dayCount == 0 {
			pdf.Cell(0, 7, "  -")
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 9, fmt.Sprintf("Total events: %d", total))

	filename := fmt.Sprintf("weekview_%s.pdf", days[0].Date.Format("2006-01-02"))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
