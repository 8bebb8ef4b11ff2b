package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Thereal-Vadim/Word-Game/internal/cli"
	"github.com/Thereal-Vadim/Word-Game/internal/config"
	"github.com/Thereal-Vadim/Word-Game/internal/db"
	"github.com/Thereal-Vadim/Word-Game/internal/logging"
	"github.com/Thereal-Vadim/Word-Game/internal/progress"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
	"github.com/Thereal-Vadim/Word-Game/internal/sound"
	"github.com/Thereal-Vadim/Word-Game/internal/words"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.Load(".env")

	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		// The game still runs; only diagnostics are lost.
		log = logging.Console(os.Stderr, "warn")
		log.Warn().Err(err).Str("path", cfg.LogFile).Msg("logging to stderr")
	} else {
		defer logFile.Close()
	}

	wordDB, err := words.Load(cfg.WordsPath)
	if err != nil {
		return fmt.Errorf("loading words: %w", err)
	}

	// Wire repositories
	var stores repository.Stores
	switch cfg.Store {
	case config.BackendSQLite:
		var database *sql.DB
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		stores = repository.NewSQLiteStores(database)
	default:
		stores = repository.NewFileStores(cfg.Home)
	}
	log.Info().Str("store", string(cfg.Store)).Str("home", cfg.Home).Msg("starting")

	store := progress.NewStore(stores.Progress, log)
	store.Load(ctx)

	// Wire services
	observer := service.NewLogUseCaseObserver(log)
	settings := service.NewSettingsService(stores.Settings, log, observer)

	player := sound.Gated(sound.Open(!cfg.SoundDisabled, log), func() bool {
		return settings.Get(ctx).SoundEnabled
	})
	defer player.Close()

	app := &cli.App{
		Game:       service.NewGameService(wordDB, store, settings, stores.Difficult, stores.History, cfg, log, observer),
		Settings:   settings,
		Dictionary: service.NewDictionaryService(wordDB, store, settings, stores.Difficult),
		Status:     service.NewStatusService(wordDB, store, stores.Difficult, stores.History),
		Sound:      player,
		Log:        log,
	}

	// Full-screen play only when stdin is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
