package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/chrono/internal/config"
	"github.com/td0m/chrono/pkg/task"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	check(err)

	// the terminal belongs to the ui, so logs can only go to a file
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "chrono")
		check(err)
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed, err := cfg.Seed()
	check(err)
	store, err := task.NewStore(seed)
	check(err)
	store.Subscribe(logChange)

	a := newApp(store)
	p := tea.NewProgram(a)
	p.EnableMouseAllMotion()
	defer p.DisableMouseAllMotion()
	p.EnterAltScreen()
	defer p.ExitAltScreen()

	check(p.Start())
}

func logChange(c task.Change) {
	log.Printf("%s %s, %d entries", c.Op, c.ID, len(c.Records))
}
