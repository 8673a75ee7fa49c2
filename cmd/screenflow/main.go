package main

import (
	"context"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/tesseract/screenflow/internal/config"
	"github.com/tesseract/screenflow/internal/machine"
	"github.com/tesseract/screenflow/internal/state"
	"github.com/tesseract/screenflow/internal/ui"
	"github.com/tesseract/screenflow/internal/worker"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.tesseract.screenflow"

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg)
	logger := slog.Default()
	logger.Info("starting", "version", version, "env", cfg.Environment)

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp)
	language := cfg.Language
	if language == "system" {
		language = settings.GetLanguage()
	}

	loc := ui.NewLocalization()
	loc.SetLanguage(language)

	driver := ui.NewDriver(fyneApp, loc, logger)

	// The environment overrides the persisted preference.
	workers := settings.GetWorkerCount()
	if os.Getenv("SF_WORKER_COUNT") != "" {
		workers = cfg.WorkerCount
	}
	pool := worker.NewPool(workers, logger)
	pool.Start()

	m := machine.New(driver, pool, logger, machine.Config{
		PollTimeout:      cfg.PollTimeout,
		DownloadDuration: cfg.DownloadDuration,
	})
	m.AddScreen(state.NewInitialScreen(m, logger))
	m.AddScreen(state.NewScreenA())
	m.AddScreen(state.NewScreenB())
	m.AddSecondaryScreen(state.NewScreenC())
	if err := m.SetInitial(state.NameInitial); err != nil {
		logger.Error("failed to set initial screen", "error", err)
		os.Exit(1)
	}

	// The dispatch loop runs off the main goroutine; Fyne owns main.
	go func() {
		if err := m.Run(context.Background()); err != nil {
			logger.Error("dispatch loop failed", "error", err)
		}
		fyneApp.Quit()
	}()

	fyneApp.Run()
	logger.Info("stopped")
}
