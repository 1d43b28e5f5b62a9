package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"weekview/internal/config"
	"weekview/internal/ics"
	"weekview/internal/models"
	"weekview/internal/store"
	"weekview/internal/timegrid"
	"weekview/internal/tui"
	"weekview/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	dbPath := flag.String("db", "", "path to event database")
	importPath := flag.String("import", "", "import an ICS file and exit")
	flag.Parse()

	if *configPath == "" {
		*configPath = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	cfg, err := config.Load(*configPath)
	util.MustSucceed("load config", err)

	if *dbPath == "" {
		*dbPath = cfg.DBPath
	}
	if *dbPath == "" {
		dir := util.DataDir(config.AppName)
		util.MustSucceed("create data dir", os.MkdirAll(dir, 0o755))
		*dbPath = filepath.Join(dir, config.DBFileName)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, *dbPath)
	util.MustSucceed("open event store", err)
	defer st.Close()

	if *importPath != "" {
		n, err := ics.ImportFile(ctx, st, *importPath)
		util.MustSucceed("import ics", err)
		fmt.Printf("Imported %d events from %s\n", n, *importPath)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "weekview needs an interactive terminal")
		os.Exit(1)
	}

	events, err := st.AllEvents(ctx)
	util.MustSucceed("load events", err)

	gridCfg := timegrid.Config{StartHour: cfg.StartHour, SlotInterval: cfg.SlotInterval}
	callbacks := tui.Callbacks{
		OnEventCreate: func(start, end time.Time) {
			ev := models.Event{
				ID:    uuid.NewString(),
				Title: "New Event",
				Start: start,
				End:   end,
			}
			util.LogError("create event", st.Insert(ctx, ev))
		},
		OnEventUpdate: func(ev models.Event, newStart, newEnd time.Time) {
			util.LogError("move event", st.UpdateTimes(ctx, ev.ID, newStart, newEnd))
		},
	}

	model := tui.New(gridCfg, events, callbacks).
		WithTheme(cfg.Theme).
		WithReload(func() ([]models.Event, error) {
			return st.AllEvents(ctx)
		})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
