package config

// Layout constants.
const (
	// TimeGutterWidth is the width of the time label column.
	TimeGutterWidth = 7

	// MinDayColumnWidth is the minimum width for a day column.
	MinDayColumnWidth = 8

	// BaseSlotRows is the unzoomed height of one slot row. Zoom scales
	// this linearly; the rendered height never drops below one row.
	BaseSlotRows = 2

	// HeaderDayRows is the height of the day header band.
	HeaderDayRows = 2
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
