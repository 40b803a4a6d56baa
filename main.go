package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"ironplan/internal/auth"
	"ironplan/internal/config"
	"ironplan/internal/plan"
	"ironplan/internal/service"
	"ironplan/internal/strava"
	"ironplan/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		dir, _ := config.Dir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", dir)
		fmt.Println("You need Strava API credentials and a refresh token.")
		fmt.Println("Get them from: https://www.strava.com/settings/api")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		dir, _ := config.Dir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", dir)
		return nil
	}

	// Load the plan document
	var trainingPlan *plan.Plan
	if cfg.Plan.Path != "" {
		trainingPlan, err = plan.Load(cfg.Plan.Path)
	} else {
		trainingPlan, err = plan.Default()
	}
	if err != nil {
		return fmt.Errorf("loading training plan: %w", err)
	}

	log, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Token cache lives for the process only; the first API call
	// performs the initial refresh
	tokenSource := auth.NewTokenSource(auth.Credentials{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
		RefreshToken: cfg.Strava.RefreshToken,
	})

	client := strava.NewClient(tokenSource)
	progressSvc := service.NewProgressService(client, trainingPlan, log, cfg.Revalidate())

	app := tui.NewApp(progressSvc)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// openLogger sets up file-backed logging; stdout belongs to the TUI
func openLogger() (*logrus.Logger, func(), error) {
	log := logrus.New()

	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "ironplan.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, func() { f.Close() }, nil
}
