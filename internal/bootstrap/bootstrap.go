package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	accountoutadapter "eduterm/internal/modules/account/adapter/out"
	accountin "eduterm/internal/modules/account/port/in"
	accountservice "eduterm/internal/modules/account/service"
	accountusecase "eduterm/internal/modules/account/usecase"
	assistantoutadapter "eduterm/internal/modules/assistant/adapter/out"
	assistantin "eduterm/internal/modules/assistant/port/in"
	assistantservice "eduterm/internal/modules/assistant/service"
	assistantusecase "eduterm/internal/modules/assistant/usecase"
	bookmarksoutadapter "eduterm/internal/modules/bookmarks/adapter/out"
	bookmarksin "eduterm/internal/modules/bookmarks/port/in"
	bookmarksservice "eduterm/internal/modules/bookmarks/service"
	bookmarksusecase "eduterm/internal/modules/bookmarks/usecase"
	cataloginadapter "eduterm/internal/modules/catalog/adapter/in"
	catalogoutadapter "eduterm/internal/modules/catalog/adapter/out"
	catalogin "eduterm/internal/modules/catalog/port/in"
	catalogservice "eduterm/internal/modules/catalog/service"
	catalogusecase "eduterm/internal/modules/catalog/usecase"
	forumoutadapter "eduterm/internal/modules/forum/adapter/out"
	forumin "eduterm/internal/modules/forum/port/in"
	forumservice "eduterm/internal/modules/forum/service"
	forumusecase "eduterm/internal/modules/forum/usecase"
	searchinadapter "eduterm/internal/modules/search/adapter/in"
	searchoutadapter "eduterm/internal/modules/search/adapter/out"
	searchdomain "eduterm/internal/modules/search/domain"
	searchin "eduterm/internal/modules/search/port/in"
	searchservice "eduterm/internal/modules/search/service"
	searchusecase "eduterm/internal/modules/search/usecase"
	shortcutsin "eduterm/internal/modules/shortcuts/port/in"
	shortcutsservice "eduterm/internal/modules/shortcuts/service"
	shortcutsusecase "eduterm/internal/modules/shortcuts/usecase"
	stateinadapter "eduterm/internal/modules/userstate/adapter/in"
	statein "eduterm/internal/modules/userstate/port/in"
	stateout "eduterm/internal/modules/userstate/port/out"
	stateservice "eduterm/internal/modules/userstate/service"
	stateusecase "eduterm/internal/modules/userstate/usecase"
	"eduterm/internal/platform/clock"
	"eduterm/internal/platform/config"
	"eduterm/internal/platform/id"
	"eduterm/internal/platform/kvstore"
	"eduterm/internal/platform/logging"
	uiapp "eduterm/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *zap.Logger

	Account   accountin.Usecase
	State     statein.Usecase
	Shortcuts shortcutsin.Usecase
	Catalog   catalogin.Usecase
	Bookmarks bookmarksin.Usecase
	Forum     forumin.Usecase
	Assistant assistantin.Usecase
	Search    searchin.Usecase

	CatalogCLI cataloginadapter.CLIHandler
	SearchCLI  searchinadapter.CLIHandler
	StateCLI   stateinadapter.CLIHandler

	durable *kvstore.SQLite
}

// New wires the full module graph. The notifier receives state-side
// notifications (save results, achievement unlocks); the TUI passes its
// message-loop bridge, the CLI a writer-backed one.
func New(ctx context.Context, cfg config.Config, notifier stateout.Notifier) (*App, error) {
	logger, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	clk := clock.SystemClock{}

	durable, err := kvstore.NewSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	session := kvstore.NewMemory()

	accountSvc := accountservice.NewAccountService(ctx,
		accountoutadapter.NewRESTClient(cfg.BaseURL, logger), durable)
	accountUC := accountusecase.NewInteractor(accountSvc)

	stateUC := stateusecase.NewInteractor(
		stateservice.NewStateService(ctx, clk, durable, session, notifier))

	shortcutsUC := shortcutsusecase.NewInteractor(
		shortcutsservice.NewShortcutService(clk, durable))

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewRESTClient(cfg.BaseURL, catalogoutadapter.NewAccountSessionAdapter(accountUC), logger),
		catalogoutadapter.NewLocalPDFPreviewer(),
		catalogoutadapter.NewAccountSessionAdapter(accountUC),
		catalogoutadapter.NewUserstateActivityAdapter(stateUC),
		filepath.Join(cfg.StateDir, "downloads"),
	))

	bookmarksUC := bookmarksusecase.NewInteractor(bookmarksservice.NewBookmarkService(
		bookmarksoutadapter.NewRESTClient(cfg.BaseURL, bookmarksoutadapter.NewAccountSessionAdapter(accountUC), logger),
		bookmarksoutadapter.NewAccountSessionAdapter(accountUC),
		bookmarksoutadapter.NewUserstateActivityAdapter(stateUC),
		logger,
	))

	forumUC := forumusecase.NewInteractor(forumservice.NewForumService(
		forumoutadapter.NewRESTClient(cfg.BaseURL, forumoutadapter.NewAccountSessionAdapter(accountUC), logger),
		forumoutadapter.NewAccountSessionAdapter(accountUC),
	))

	assistantUC := assistantusecase.NewInteractor(assistantservice.NewAssistantService(
		assistantoutadapter.NewRESTClient(cfg.BaseURL, assistantoutadapter.NewAccountSessionAdapter(accountUC)),
		clk,
		id.UUID{},
	))

	searchUC := searchusecase.NewInteractor(searchservice.NewSearchService(
		searchoutadapter.NewCatalogGateway(catalogUC, searchdomain.KindPaper),
		searchoutadapter.NewCatalogGateway(catalogUC, searchdomain.KindNote),
		searchoutadapter.NewCatalogGateway(catalogUC, searchdomain.KindSyllabus),
		searchoutadapter.NewForumGateway(forumUC),
		searchoutadapter.NewKVRecentStore(durable),
	))

	return &App{
		Config:     cfg,
		Logger:     logger,
		Account:    accountUC,
		State:      stateUC,
		Shortcuts:  shortcutsUC,
		Catalog:    catalogUC,
		Bookmarks:  bookmarksUC,
		Forum:      forumUC,
		Assistant:  assistantUC,
		Search:     searchUC,
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		SearchCLI:  searchinadapter.NewCLIHandler(searchUC),
		StateCLI:   stateinadapter.NewCLIHandler(stateUC),
		durable:    durable,
	}, nil
}

// Close flushes the logger and releases the state database.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.durable.Close()
}

func RunTUI(app *App, notifier *uiapp.Notifier) error {
	model := uiapp.NewModel(
		app.Search, app.Shortcuts, app.State, app.Account,
		notifier, app.Catalog, app.Bookmarks, app.Forum, app.Assistant,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
