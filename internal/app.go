// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "github.com/Bomfimdev/controle-financeiro/internal/api"
	"github.com/Bomfimdev/controle-financeiro/internal/api/handler"
	"github.com/Bomfimdev/controle-financeiro/internal/config"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
	"github.com/Bomfimdev/controle-financeiro/internal/repository/postgres"
	"github.com/Bomfimdev/controle-financeiro/internal/service"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
	"github.com/Bomfimdev/controle-financeiro/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UsuarioRepository   repository.UsuarioRepository
	ContaRepository     repository.ContaRepository
	TransacaoRepository repository.TransacaoRepository

	// Services
	UsuarioService   service.UsuarioService
	ContaService     service.ContaService
	TransacaoService service.TransacaoService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UsuarioRepository = postgres.NewUsuarioRepository()
	app.ContaRepository = postgres.NewContaRepository()
	app.TransacaoRepository = postgres.NewTransacaoRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.UsuarioService = service.NewUsuarioService(app.DB, app.UsuarioRepository)
	app.ContaService = service.NewContaService(app.DB, app.ContaRepository)
	app.TransacaoService = service.NewTransacaoService(app.DB, app.TransacaoRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	usuarioHandler := handler.NewUsuarioHandler(app.UsuarioService, app.Logger)
	contaHandler := handler.NewContaHandler(app.ContaService, app.Logger)
	transacaoHandler := handler.NewTransacaoHandler(app.TransacaoService, app.Logger)
	authHandler := handler.NewAuthHandler(app.Logger)
	app.HTTPHandler = router.NewRouter(usuarioHandler, contaHandler, transacaoHandler, authHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
