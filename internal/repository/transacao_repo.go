// internal/repository/transacao_repo.go
package repository

import (
	"context"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
)

// TransacaoRepository defines the interface for transaction data operations.
type TransacaoRepository interface {
	// List retrieves all transactions using the provided DBExecutor.
	List(ctx context.Context, q DBExecutor) ([]domain.Transacao, error)
	// FindByID retrieves a transaction by ID, returning util.ErrNotFound when absent.
	FindByID(ctx context.Context, q DBExecutor, id string) (*domain.Transacao, error)
	// ExistsByID reports whether a transaction row exists for the given ID.
	ExistsByID(ctx context.Context, q DBExecutor, id string) (bool, error)
	// Create inserts a new transaction, assigning its ID and creation timestamps.
	Create(ctx context.Context, q DBExecutor, transacao *domain.Transacao) error
	// Update overwrites the whole transaction row by ID and stamps the update timestamp.
	Update(ctx context.Context, q DBExecutor, transacao *domain.Transacao) error
	// DeleteByID removes the transaction row, returning util.ErrNotFound when absent.
	DeleteByID(ctx context.Context, q DBExecutor, id string) error
}
