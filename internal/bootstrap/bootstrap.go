package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	backupinadapter "studytracker/internal/modules/backup/adapter/in"
	backupoutadapter "studytracker/internal/modules/backup/adapter/out"
	backupservice "studytracker/internal/modules/backup/service"
	backupusecase "studytracker/internal/modules/backup/usecase"
	cataloginadapter "studytracker/internal/modules/catalog/adapter/in"
	catalogoutadapter "studytracker/internal/modules/catalog/adapter/out"
	catalogservice "studytracker/internal/modules/catalog/service"
	catalogusecase "studytracker/internal/modules/catalog/usecase"
	libraryinadapter "studytracker/internal/modules/library/adapter/in"
	libraryoutadapter "studytracker/internal/modules/library/adapter/out"
	libraryservice "studytracker/internal/modules/library/service"
	libraryusecase "studytracker/internal/modules/library/usecase"
	progressinadapter "studytracker/internal/modules/progress/adapter/in"
	progressoutadapter "studytracker/internal/modules/progress/adapter/out"
	progressservice "studytracker/internal/modules/progress/service"
	progressusecase "studytracker/internal/modules/progress/usecase"
	sessioninadapter "studytracker/internal/modules/session/adapter/in"
	sessionoutadapter "studytracker/internal/modules/session/adapter/out"
	sessionout "studytracker/internal/modules/session/port/out"
	sessionservice "studytracker/internal/modules/session/service"
	sessionusecase "studytracker/internal/modules/session/usecase"
	settingsinadapter "studytracker/internal/modules/settings/adapter/in"
	settingsoutadapter "studytracker/internal/modules/settings/adapter/out"
	settingsservice "studytracker/internal/modules/settings/service"
	settingsusecase "studytracker/internal/modules/settings/usecase"
	timerinadapter "studytracker/internal/modules/timer/adapter/in"
	timeroutadapter "studytracker/internal/modules/timer/adapter/out"
	timerdomain "studytracker/internal/modules/timer/domain"
	timerdto "studytracker/internal/modules/timer/dto"
	timerout "studytracker/internal/modules/timer/port/out"
	timerservice "studytracker/internal/modules/timer/service"
	timerusecase "studytracker/internal/modules/timer/usecase"
	"studytracker/internal/platform/clock"
	"studytracker/internal/platform/config"
	"studytracker/internal/platform/id"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/kv/rediskv"
	"studytracker/internal/platform/kv/sqlitekv"
	"studytracker/internal/platform/persistence"
	"studytracker/internal/platform/ticker"
	uiapp "studytracker/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	LibraryCLI  libraryinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler
	Timer       timerinadapter.Handler

	store kv.Store
}

// Options tweak wiring for the command being run.
type Options struct {
	// CueOutput receives the terminal bell cues; nil silences them.
	CueOutput io.Writer
}

// TUIOptions rings cues on stderr since the UI owns stdout.
func TUIOptions(stderr io.Writer) Options {
	return Options{CueOutput: stderr}
}

func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}
	gateway := persistence.New(store, slog.Default())

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsoutadapter.NewGatewayStore(gateway)))

	var journal sessionout.Journal
	if cfg.Journal.Enabled {
		journal = sessionoutadapter.NewMarkdownJournal(cfg.Journal.Dir, time.Local)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewRecorder(clk, ids, sessionoutadapter.NewGatewayHistoryStore(gateway), journal))

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewGatewayStore(gateway),
		ids,
		catalogoutadapter.NewSettingsColorMode(settingsUC),
	))

	progressUC := progressusecase.NewInteractor(progressservice.NewStatsService(
		clk,
		progressoutadapter.NewSessionHistory(sessionUC),
		progressoutadapter.NewCatalogSize(catalogUC),
		progressoutadapter.NewSettingsGoal(settingsUC),
	))

	libraryUC := libraryusecase.NewInteractor(libraryservice.NewBookService(
		clk,
		libraryoutadapter.NewGatewayBookStore(gateway),
		libraryoutadapter.NewOpenLibrarySearcher(cfg.Library.BaseURL, cfg.Library.CoversURL, cfg.Library.Timeout),
	))

	backupUC := backupusecase.NewInteractor(backupservice.NewBackupService(clk, backupoutadapter.NewGatewayStateStore(gateway)))

	controller := timerservice.NewController(
		timerdomain.NewEngine(cfg.Timer.StudyMinutes, cfg.Timer.BreakMinutes),
		ticker.Interval{},
		timeroutadapter.NewSessionRecorderAdapter(sessionUC),
		cuePlayer(opts),
		timeroutadapter.NewDesktopNotifier(cfg.Notifications.Command),
		timeroutadapter.NewSettingsPreferences(settingsUC),
	)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		LibraryCLI:  libraryinadapter.NewCLIHandler(libraryUC),
		BackupCLI:   backupinadapter.NewCLIHandler(backupUC),
		Timer:       timerinadapter.NewHandler(timerusecase.NewInteractor(controller)),
		store:       store,
	}, nil
}

func cuePlayer(opts Options) timerout.CuePlayer {
	if opts.CueOutput == nil {
		return timeroutadapter.SilentCuePlayer{}
	}
	return timeroutadapter.NewBellCuePlayer(opts.CueOutput)
}

// Close stops the timer and releases the store.
func (a *App) Close() error {
	a.Timer.Close()
	return a.store.Close()
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	case config.DriverRedis:
		store, err := rediskv.Open(ctx, rediskv.Config{
			Addr:      cfg.Storage.Redis.Addr,
			Password:  cfg.Storage.Redis.Password,
			DB:        cfg.Storage.Redis.DB,
			KeyPrefix: cfg.Storage.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return store, nil
	default:
		store, err := sqlitekv.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Timer, app.CatalogCLI, app.ProgressCLI, app.LibraryCLI, app.SettingsCLI, app.BackupCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	app.Timer.Subscribe(func(event timerdto.Event) {
		program.Send(uiapp.TimerEventMsg{Event: event})
	})
	defer app.Timer.Subscribe(nil)
	_, err := program.Run()
	return err
}
