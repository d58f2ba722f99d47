// internal/repository/postgres/conta_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// ContaRepository implements repository.ContaRepository for PostgreSQL.
type ContaRepository struct{}

// NewContaRepository creates a new ContaRepository.
func NewContaRepository() repository.ContaRepository {
	return &ContaRepository{}
}

// prepareContaInsert assigns the server-side fields of a new account.
// DataAtualizacao stays nil until the first update.
func prepareContaInsert(conta *domain.Conta) {
	if conta.ID == "" {
		conta.ID = uuid.NewString()
	}
	conta.DataCriacao = time.Now().UTC()
	conta.DataAtualizacao = nil
}

// prepareContaUpdate stamps the update timestamp. Client-supplied
// timestamp values are always discarded.
func prepareContaUpdate(conta *domain.Conta) {
	now := time.Now().UTC()
	conta.DataAtualizacao = &now
}

// List retrieves all accounts using the provided DBExecutor.
func (r *ContaRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Conta, error) {
	contas := []domain.Conta{}
	query := `SELECT id, nome, saldo, tipo, usuario_id, data_criacao, data_atualizacao
	          FROM contas`
	if err := q.SelectContext(ctx, &contas, query); err != nil {
		return nil, fmt.Errorf("failed to list contas: %w", err)
	}
	return contas, nil
}

// FindByID retrieves an account by ID using the provided DBExecutor.
func (r *ContaRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Conta, error) {
	var conta domain.Conta
	query := `SELECT id, nome, saldo, tipo, usuario_id, data_criacao, data_atualizacao
	          FROM contas WHERE id = $1`
	if err := q.GetContext(ctx, &conta, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conta by ID %s: %w", id, err)
	}
	return &conta, nil
}

// ExistsByID reports whether an account row exists for the given ID.
func (r *ContaRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM contas WHERE id = $1)`
	if err := q.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check conta existence for ID %s: %w", id, err)
	}
	return exists, nil
}

// Create inserts a new account into the database using the provided DBExecutor.
func (r *ContaRepository) Create(ctx context.Context, q repository.DBExecutor, conta *domain.Conta) error {
	prepareContaInsert(conta)
	query := `INSERT INTO contas (id, nome, saldo, tipo, usuario_id, data_criacao, data_atualizacao)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		conta.ID,
		conta.Nome,
		conta.Saldo,
		conta.Tipo,
		conta.UsuarioID,
		conta.DataCriacao,
		conta.DataAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: usuário informado não existe", sentinel)
		}
		return fmt.Errorf("failed to create conta: %w", err)
	}
	return nil
}

// Update overwrites the whole account row by ID. The creation timestamp is
// preserved; every other column takes the value from the given entity.
func (r *ContaRepository) Update(ctx context.Context, q repository.DBExecutor, conta *domain.Conta) error {
	prepareContaUpdate(conta)
	query := `UPDATE contas
	          SET nome = $2, saldo = $3, tipo = $4, usuario_id = $5, data_atualizacao = $6
	          WHERE id = $1`
	result, err := q.ExecContext(ctx, query,
		conta.ID,
		conta.Nome,
		conta.Saldo,
		conta.Tipo,
		conta.UsuarioID,
		conta.DataAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: usuário informado não existe", sentinel)
		}
		return fmt.Errorf("failed to update conta %s: %w", conta.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating conta %s: %w", conta.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteByID removes the account row using the provided DBExecutor.
// Deletion is restricted while transactions still reference the account.
func (r *ContaRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM contas WHERE id = $1`, id)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: conta possui transações vinculadas", sentinel)
		}
		return fmt.Errorf("failed to delete conta %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting conta %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
