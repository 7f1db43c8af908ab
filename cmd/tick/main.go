package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tickdone/tick/internal/cli"
	"github.com/tickdone/tick/internal/config"
	"github.com/tickdone/tick/internal/store/jsonstore"
	"github.com/tickdone/tick/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config file")
	dataPath := flag.String("data", "", "path to the todo data file")
	theme := flag.String("theme", "", "color theme: light or dark")
	plain := flag.Bool("plain", false, "print the list instead of the TUI")
	flag.Parse()

	path := *configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.DataFile = *dataPath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	st := jsonstore.New(cfg.DataFile)

	code := cli.Run(flag.Args(), st, cli.Options{
		Plain: *plain,
		Theme: cfg.Theme,
	})
	os.Exit(code)
}
