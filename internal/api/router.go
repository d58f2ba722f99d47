// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Bomfimdev/controle-financeiro/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	usuarioHandler *handler.UsuarioHandler,
	contaHandler *handler.ContaHandler,
	transacaoHandler *handler.TransacaoHandler,
	authHandler *handler.AuthHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Authentication stub
	r.Get("/api/auth/test", authHandler.Test)

	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", usuarioHandler.ListarUsuarios)
		r.Post("/", usuarioHandler.CriarUsuario)
		r.Get("/{id}", usuarioHandler.BuscarUsuario)
		r.Put("/{id}", usuarioHandler.AtualizarUsuario)
		r.Delete("/{id}", usuarioHandler.DeletarUsuario)
	})

	r.Route("/contas", func(r chi.Router) {
		r.Get("/", contaHandler.ListarContas)
		r.Post("/", contaHandler.CriarConta)
		r.Get("/{id}", contaHandler.BuscarConta)
		r.Put("/{id}", contaHandler.AtualizarConta)
		r.Delete("/{id}", contaHandler.DeletarConta)
	})

	r.Route("/transacoes", func(r chi.Router) {
		r.Get("/", transacaoHandler.ListarTransacoes)
		r.Post("/", transacaoHandler.CriarTransacao)
		r.Get("/{id}", transacaoHandler.BuscarTransacao)
		r.Put("/{id}", transacaoHandler.AtualizarTransacao)
		r.Delete("/{id}", transacaoHandler.DeletarTransacao)
	})

	return r
}
