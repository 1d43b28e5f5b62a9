package tui

import (
	"math"

	"weekview/internal/config"
	"weekview/internal/models"
)

// Fixed chrome heights around the scrollable grid.
const (
	headerHeight = 1 + config.HeaderDayRows
	footerHeight = 1

	wheelScrollLines = 3
)

// slotRows is the rendered height of one slot at the current zoom.
func (m Model) slotRows() int {
	rows := int(math.Round(config.BaseSlotRows * m.zoom))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// dayColWidth is the width of one day column, gutter excluded.
func (m Model) dayColWidth() int {
	w := (m.width - config.TimeGutterWidth) / 7
	if w < config.MinDayColumnWidth {
		w = config.MinDayColumnWidth
	}
	return w
}

// hitTest maps a terminal coordinate to the grid cell under it,
// accounting for the viewport scroll offset. ok is false over the
// header, footer, time gutter or past the last slot.
func (m Model) hitTest(x, y int) (cell gridCell, slotIdx int, ok bool) {
	if !m.ready || len(m.slots) == 0 {
		return gridCell{}, 0, false
	}
	if y < headerHeight || y >= headerHeight+m.viewport.Height {
		return gridCell{}, 0, false
	}
	if x < config.TimeGutterWidth {
		return gridCell{}, 0, false
	}
	dayIdx := (x - config.TimeGutterWidth) / m.dayColWidth()
	if dayIdx > 6 {
		return gridCell{}, 0, false
	}
	row := y - headerHeight + m.viewport.YOffset
	slotIdx = row / m.slotRows()
	if slotIdx >= len(m.slots) {
		return gridCell{}, 0, false
	}
	days := m.weekDays()
	return gridCell{Day: days[dayIdx], Slot: m.slots[slotIdx]}, slotIdx, true
}

// eventAt returns the event whose rendered block covers the given cell,
// or nil when the cell is empty.
func (m Model) eventAt(cell gridCell, slotIdx int) *models.Event {
	occ := m.columnOccupancy(cell.Day)
	if slotIdx >= len(occ) {
		return nil
	}
	return occ[slotIdx].ev
}
