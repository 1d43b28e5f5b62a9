package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"weekview/internal/models"
	"weekview/internal/testutil"
)

func plainGrid(m Model) string {
	return ansi.Strip(m.renderGrid())
}

func TestRenderGridShowsGutterLabels(t *testing.T) {
	m := sizedModel(t, nil, Callbacks{})
	grid := plainGrid(m)
	for _, label := range []string{"06:00", "12:00", "23:45", "00:00", "05:45"} {
		if !strings.Contains(grid, label) {
			t.Fatalf("grid is missing gutter label %s", label)
		}
	}
	lines := strings.Split(grid, "\n")
	if want := 96 * 2; len(lines) != want {
		t.Fatalf("grid has %d lines, want %d", len(lines), want)
	}
}

func TestRenderGridShowsEventBlock(t *testing.T) {
	ev := testutil.NewEvent().
		WithTitle("Standup").
		WithCategory(models.CategorySports).
		StartingAt(time.Date(2026, time.September, 7, 10, 0, 0, 0, time.Local)).
		Lasting(30 * time.Minute).
		Build()
	m := sizedModel(t, []models.Event{ev}, Callbacks{})

	grid := plainGrid(m)
	if !strings.Contains(grid, "Standup") {
		t.Fatalf("event title not rendered")
	}
	if !strings.Contains(grid, "sports") {
		t.Fatalf("event category not rendered")
	}
}

func TestRenderGridGhostDuringMove(t *testing.T) {
	ev := testutil.NewEvent().
		WithTitle("Standup").
		StartingAt(time.Date(2026, time.September, 7, 6, 30, 0, 0, time.Local)).
		Lasting(30 * time.Minute).
		Build()
	m := sizedModel(t, []models.Event{ev}, Callbacks{})

	m = mouse(m, 8, 7, tea.MouseActionPress)
	m = mouse(m, 18, 3, tea.MouseActionMotion)

	// While moving: the original stays (dimmed) and a ghost appears in
	// the target cell, so the title shows up twice.
	if got := strings.Count(plainGrid(m), "Standup"); got != 2 {
		t.Fatalf("expected dimmed original plus ghost (2 titles), got %d", got)
	}
}

func TestRenderGridSelectionHighlightOnlyDuringDrag(t *testing.T) {
	m := sizedModel(t, nil, Callbacks{})
	before := m.renderGrid()

	m = mouse(m, 8, 3, tea.MouseActionPress)
	m = mouse(m, 8, 11, tea.MouseActionMotion)
	during := m.renderGrid()
	if before == during {
		t.Fatalf("selection highlight did not change the rendering")
	}

	m = mouse(m, 8, 11, tea.MouseActionRelease)
	after := m.renderGrid()
	if after != before {
		t.Fatalf("grid did not return to idle rendering after release")
	}
}

func TestRenderHeaderShowsWeekAndToday(t *testing.T) {
	m := sizedModel(t, nil, Callbacks{})
	header := ansi.Strip(m.renderHeader())
	if !strings.Contains(header, "September 2026") {
		t.Fatalf("month-year label missing: %q", header)
	}
	if !strings.Contains(header, "Week 37") {
		t.Fatalf("week number missing: %q", header)
	}
	for _, name := range []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"} {
		if !strings.Contains(header, name) {
			t.Fatalf("day name %s missing", name)
		}
	}
}

func TestRenderFooterKeepsQuitHint(t *testing.T) {
	m := sizedModel(t, nil, Callbacks{})

	footer := ansi.Strip(m.renderFooter())
	if !strings.Contains(footer, "q quit") {
		t.Fatalf("quit hint truncated from footer: %q", footer)
	}
	if got := ansi.StringWidth(footer); got != testWidth {
		t.Fatalf("footer width = %d, want %d", got, testWidth)
	}

	// A long status message takes over the line but is never lost.
	m.status = "exported weekview_2026-09-07.pdf"
	if got := ansi.Strip(m.renderFooter()); !strings.Contains(got, "weekview_2026-09-07.pdf") {
		t.Fatalf("status message missing from footer: %q", got)
	}
}

func TestViewComposesChrome(t *testing.T) {
	m := sizedModel(t, nil, Callbacks{})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "06:00") {
		t.Fatalf("view does not include the grid")
	}
	if !strings.Contains(view, "q quit") {
		t.Fatalf("view does not include the footer help")
	}

	uninitialized := newTestModel(nil, Callbacks{})
	if got := uninitialized.View(); got != "Initializing..." {
		t.Fatalf("unsized view = %q", got)
	}
}
