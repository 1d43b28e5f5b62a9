package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"weekview/internal/config"
	"weekview/internal/models"
	"weekview/internal/timegrid"
)

// padCell truncates or pads text to exactly w columns.
func padCell(text string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > w {
		text = ansi.Truncate(text, w, config.TruncationSuffix)
	}
	if pad := w - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// slotIndex locates a slot in the generated sequence.
func (m Model) slotIndex(slot timegrid.Slot) int {
	for i, s := range m.slots {
		if s.Hour == slot.Hour && s.Minute == slot.Minute {
			return i
		}
	}
	return -1
}

// eventLineText picks the text for the n-th row of an event block.
func eventLineText(ev models.Event, line int) string {
	switch line {
	case 0:
		return " " + ev.Title
	case 1:
		if ev.Category != "" {
			return " " + ev.Category
		}
		return ""
	default:
		return ""
	}
}

// renderGrid produces the scrollable day × slot grid.
func (m Model) renderGrid() string {
	days := m.weekDays()
	rows := m.slotRows()
	colW := m.dayColWidth()

	occs := make([][]occSlot, len(days))
	for i, day := range days {
		occs[i] = m.columnOccupancy(day)
	}

	// Ghost preview range while an event is being moved.
	ghostStart, ghostEnd := -1, -1
	if m.drag.kind == dragMove && m.drag.event != nil {
		if idx := m.slotIndex(m.drag.current.Slot); idx >= 0 {
			ghostStart = idx
			ghostEnd = idx + spanSlots(*m.drag.event, m.interval())
		}
	}

	var b strings.Builder
	for slotIdx := range m.slots {
		for r := 0; r < rows; r++ {
			b.WriteString(m.renderGutter(m.slots[slotIdx], r))
			for dayIdx, day := range days {
				ghost := ghostStart >= 0 &&
					day.Date.Equal(m.drag.current.Day.Date) &&
					slotIdx >= ghostStart && slotIdx < ghostEnd
				b.WriteString(m.renderCellLine(day, occs[dayIdx], slotIdx, r, rows, colW, ghost, ghostStart))
			}
			if slotIdx < len(m.slots)-1 || r < rows-1 {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func (m Model) renderGutter(slot timegrid.Slot, r int) string {
	if r != 0 {
		return padCell("", config.TimeGutterWidth)
	}
	label := padCell(" "+slot.Label, config.TimeGutterWidth)
	if slot.Minute == 0 {
		return m.theme.GutterHour.Render(label)
	}
	return m.theme.Gutter.Render(label)
}

// renderCellLine draws one terminal row of one grid cell.
func (m Model) renderCellLine(day timegrid.WeekDay, occ []occSlot, slotIdx, r, rows, colW int, ghost bool, ghostStart int) string {
	sep := m.theme.HourRule.Render("│")
	innerW := colW - 1
	slot := m.slots[slotIdx]

	if ghost {
		line := (slotIdx-ghostStart)*rows + r
		return sep + m.theme.Ghost.Render(padCell(eventLineText(*m.drag.event, line), innerW))
	}

	if o := occ[slotIdx]; o.ev != nil {
		line := o.offset*rows + r
		text := padCell(eventLineText(*o.ev, line), innerW)
		if m.drag.kind == dragMove && m.drag.event != nil && m.drag.event.ID == o.ev.ID {
			// The original stays visible but dimmed while it is moved.
			return sep + m.theme.EventDimmed.Render(text)
		}
		block := m.theme.EventText.Background(m.theme.eventColor(o.ev.Category, o.ev.Color))
		return sep + block.Render(text)
	}

	if m.drag.kind == dragSelect && inSelection(m.drag.start, m.drag.current, day, slot) {
		return sep + m.theme.Selection.Render(padCell("", innerW))
	}

	if r == 0 && slot.Minute == 0 {
		rule := "─"
		if slot.Hour == 0 {
			rule = "═" // the column crosses into the next calendar day here
		}
		return sep + m.theme.HourRule.Render(strings.Repeat(rule, innerW))
	}
	return sep + padCell("", innerW)
}
