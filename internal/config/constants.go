package config

// Slot generation.
const (
	// DefaultStartHour is the hour each day column begins at.
	DefaultStartHour = 6

	// DefaultSlotInterval is the slot width in minutes.
	DefaultSlotInterval = 15

	// MinSlotInterval and MaxSlotInterval bound the configurable slot
	// width. Values outside the range fall back to the default.
	MinSlotInterval = 5
	MaxSlotInterval = 30

	// MinutesPerDay is the span covered by one day column.
	MinutesPerDay = 24 * 60
)

// Zoom.
const (
	ZoomMin     = 0.5
	ZoomMax     = 3.0
	ZoomStep    = 0.2
	ZoomDefault = 1.0
)

// Database/application settings.
const (
	AppName        = "weekview"
	DBFileName     = "events.db"
	ConfigFileName = "config.yaml"
)
