// internal/repository/usuario_repo.go
package repository

import (
	"context"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
)

// UsuarioRepository defines the interface for user data operations.
type UsuarioRepository interface {
	// List retrieves all users using the provided DBExecutor.
	List(ctx context.Context, q DBExecutor) ([]domain.Usuario, error)
	// FindByID retrieves a user by ID, returning util.ErrNotFound when absent.
	FindByID(ctx context.Context, q DBExecutor, id string) (*domain.Usuario, error)
	// ExistsByID reports whether a user row exists for the given ID.
	ExistsByID(ctx context.Context, q DBExecutor, id string) (bool, error)
	// Create inserts a new user, assigning its ID and creation timestamps.
	Create(ctx context.Context, q DBExecutor, usuario *domain.Usuario) error
	// Update overwrites the whole user row by ID and stamps the update timestamp.
	Update(ctx context.Context, q DBExecutor, usuario *domain.Usuario) error
	// DeleteByID removes the user row, returning util.ErrNotFound when absent.
	DeleteByID(ctx context.Context, q DBExecutor, id string) error
}
