// Package tui implements the weekly calendar widget: a Bubble Tea model
// rendering a 7-day time-slot grid with mouse-driven event creation and
// rescheduling. The widget never owns the event list; every user intent
// is reported through the Callbacks contract and the caller decides
// what to do with it.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"weekview/internal/config"
	"weekview/internal/models"
	"weekview/internal/timegrid"
)

// Callbacks is the external contract of the widget. Every field is
// optional; a nil callback turns the corresponding user action into a
// no-op besides the internal state reset.
type Callbacks struct {
	OnTimeSlotClick func(date time.Time, slot timegrid.Slot)
	OnEventClick    func(ev models.Event)
	OnEventCreate   func(start, end time.Time)
	OnEventUpdate   func(ev models.Event, newStart, newEnd time.Time)
}

// Model is the weekly calendar widget.
type Model struct {
	cfg       timegrid.Config
	slots     []timegrid.Slot
	events    []models.Event
	callbacks Callbacks
	theme     Theme

	now    func() time.Time
	reload func() ([]models.Event, error)

	refDate time.Time
	zoom    float64
	drag    dragState

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
}

// New builds a widget for the given slot configuration, initial event
// list and callbacks. The reference date starts at the current week.
func New(cfg timegrid.Config, events []models.Event, cb Callbacks) Model {
	m := Model{
		cfg:       cfg,
		slots:     timegrid.Slots(cfg),
		events:    events,
		callbacks: cb,
		theme:     Themes["default"],
		now:       time.Now,
		zoom:      config.ZoomDefault,
	}
	m.refDate = m.now()
	return m
}

// WithClock injects a time source; tests use this to pin "today".
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	m.refDate = now()
	return m
}

// WithTheme selects a color theme by name.
func (m Model) WithTheme(name string) Model {
	m.theme = ThemeByName(name)
	return m
}

// WithReload lets the widget ask the caller for a fresh event list
// after a create/update commit (and on manual refresh).
func (m Model) WithReload(fn func() ([]models.Event, error)) Model {
	m.reload = fn
	return m
}

// SetEvents replaces the displayed event list.
func (m *Model) SetEvents(events []models.Event) {
	m.events = events
}

// weekDays derives the current week's columns from the reference date.
// Computed on demand so navigation and the today flag never go stale.
func (m Model) weekDays() []timegrid.WeekDay {
	return timegrid.WeekDays(timegrid.WeekStart(m.refDate), m.now())
}

// interval is the slot width in minutes, derived from the generated
// sequence like the rest of the grid math.
func (m Model) interval() int {
	if len(m.slots) > 1 {
		return (m.slots[1].Hour*60 + m.slots[1].Minute) - (m.slots[0].Hour*60 + m.slots[0].Minute)
	}
	return config.DefaultSlotInterval
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	case eventsLoadedMsg:
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()
		} else {
			m.events = msg.events
		}
	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
	}

	if m.ready {
		m.viewport.SetContent(m.renderGrid())
	}
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	gridHeight := m.height - headerHeight - footerHeight
	if gridHeight < 1 {
		gridHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, gridHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = gridHeight
	}
	return m
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}
