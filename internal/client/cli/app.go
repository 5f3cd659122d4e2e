// Package cli implements the interactive storefront: a REPL over the state
// store and the application services. It renders state and dispatches state
// updates; all durable logic lives below it.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/catalog"
	"github.com/example/coursemart/internal/client/config"
	"github.com/example/coursemart/internal/client/repositories/state"
	"github.com/example/coursemart/internal/client/services"
	"github.com/example/coursemart/internal/client/store"
	"github.com/example/coursemart/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db     *sql.DB
	client api.Client
	store  *store.Store

	authService    services.AuthService
	catalogService services.CatalogService
	cartService    services.CartService

	userEmail string
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := state.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local state: %w", err)
	}

	repo := state.NewSQLiteRepository(db)
	st := store.New(ctx, repo, log)

	client := api.NewHTTPClient(c.APIBaseURL, c.HTTPTimeout)
	norm := catalog.NewNormalizer(c.AssetBaseURL)

	return &App{
		config:         c,
		log:            log,
		db:             db,
		client:         client,
		store:          st,
		authService:    services.NewAuthService(client, st, log),
		catalogService: services.NewCatalogService(client, norm, st, c.RefreshInterval, log),
		cartService:    services.NewCartService(st, log),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session, does the initial catalog load, starts
// the background refresh and enters the REPL. It returns when the user exits
// or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if session := a.authService.Restore(ctx); session.IsAuthenticated && session.User != nil {
		a.userEmail = session.User.Email
		fmt.Printf("Welcome back, %s!\n", a.userEmail)
	}

	if err := a.catalogService.Refresh(ctx); err != nil {
		a.log.Error(ctx, "initial catalog load failed", "error", err)
		fmt.Println("Failed to load courses. Type 'refresh' to try again.")
	}

	go a.catalogService.StartAutoRefresh(ctx, a.config.RefreshInterval)

	fmt.Println("Welcome to CourseMart (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing state database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth.Get().IsAuthenticated
}

// getStatus renders the prompt suffix: the signed-in user (if any) and the
// cart size.
func (a *App) getStatus() string {
	s := ""
	if a.userEmail != "" {
		s = a.userEmail
	}
	if n := a.cartService.Count(); n > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
