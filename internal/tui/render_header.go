package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"weekview/internal/config"
	"weekview/internal/timegrid"
)

// renderHeader draws the navigation line and the day header band.
func (m Model) renderHeader() string {
	weekStart := timegrid.WeekStart(m.refDate)
	title := m.theme.Header.Render(timegrid.MonthYearLabel(weekStart))
	week := m.theme.WeekLabel.Render(fmt.Sprintf("  Week %d", timegrid.ISOWeekNumber(weekStart)))
	zoom := m.theme.WeekLabel.Render(fmt.Sprintf("  zoom %.1fx", m.zoom))
	nav := padCell(" "+title+week+zoom, m.width)

	return nav + "\n" + m.renderDayBand()
}

func (m Model) renderDayBand() string {
	colW := m.dayColWidth()
	days := m.weekDays()

	names := padCell("", config.TimeGutterWidth)
	numbers := padCell("", config.TimeGutterWidth)
	for _, day := range days {
		nameStyle := m.theme.DayName
		numStyle := m.theme.DayNumber
		if day.IsToday {
			nameStyle, numStyle = m.theme.Today, m.theme.Today
		} else if isWeekend(day.Date) {
			nameStyle, numStyle = m.theme.Weekend, m.theme.Weekend
		}
		name := strings.ToUpper(day.DayName[:3])
		names += nameStyle.Render(lipgloss.PlaceHorizontal(colW, lipgloss.Center, name))
		numbers += numStyle.Render(lipgloss.PlaceHorizontal(colW, lipgloss.Center, fmt.Sprintf("%d", day.DayOfMonth)))
	}
	return names + "\n" + numbers
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
