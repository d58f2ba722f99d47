// internal/repository/conta_repo.go
package repository

import (
	"context"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
)

// ContaRepository defines the interface for account data operations.
type ContaRepository interface {
	// List retrieves all accounts using the provided DBExecutor.
	List(ctx context.Context, q DBExecutor) ([]domain.Conta, error)
	// FindByID retrieves an account by ID, returning util.ErrNotFound when absent.
	FindByID(ctx context.Context, q DBExecutor, id string) (*domain.Conta, error)
	// ExistsByID reports whether an account row exists for the given ID.
	ExistsByID(ctx context.Context, q DBExecutor, id string) (bool, error)
	// Create inserts a new account, assigning its ID and creation timestamp.
	Create(ctx context.Context, q DBExecutor, conta *domain.Conta) error
	// Update overwrites the whole account row by ID and stamps the update timestamp.
	Update(ctx context.Context, q DBExecutor, conta *domain.Conta) error
	// DeleteByID removes the account row, returning util.ErrNotFound when absent.
	DeleteByID(ctx context.Context, q DBExecutor, id string) error
}
