// internal/repository/postgres/transacao_pg.go
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

// TransacaoRepository implements repository.TransacaoRepository for PostgreSQL.
type TransacaoRepository struct{}

// NewTransacaoRepository creates a new TransacaoRepository.
func NewTransacaoRepository() repository.TransacaoRepository {
	return &TransacaoRepository{}
}

// prepareTransacaoInsert assigns the server-side fields of a new transaction:
// a generated ID when the caller did not supply one, and both timestamps.
func prepareTransacaoInsert(transacao *domain.Transacao) {
	if transacao.ID == "" {
		transacao.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	transacao.DataCriacao = now
	transacao.UltimaAtualizacao = now
}

// prepareTransacaoUpdate stamps the update timestamp. Client-supplied
// timestamp values are always discarded.
func prepareTransacaoUpdate(transacao *domain.Transacao) {
	transacao.UltimaAtualizacao = time.Now().UTC()
}

// List retrieves all transactions using the provided DBExecutor.
func (r *TransacaoRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Transacao, error) {
	transacoes := []domain.Transacao{}
	query := `SELECT id, descricao, valor, data, tipo, categoria, conta_id, usuario_id, data_criacao, ultima_atualizacao
	          FROM transacoes`
	if err := q.SelectContext(ctx, &transacoes, query); err != nil {
		return nil, fmt.Errorf("failed to list transacoes: %w", err)
	}
	return transacoes, nil
}

// FindByID retrieves a transaction by ID using the provided DBExecutor.
func (r *TransacaoRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Transacao, error) {
	var transacao domain.Transacao
	query := `SELECT id, descricao, valor, data, tipo, categoria, conta_id, usuario_id, data_criacao, ultima_atualizacao
	          FROM transacoes WHERE id = $1`
	if err := q.GetContext(ctx, &transacao, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transacao by ID %s: %w", id, err)
	}
	return &transacao, nil
}

// ExistsByID reports whether a transaction row exists for the given ID.
func (r *TransacaoRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transacoes WHERE id = $1)`
	if err := q.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check transacao existence for ID %s: %w", id, err)
	}
	return exists, nil
}

// Create inserts a new transaction into the database using the provided DBExecutor.
func (r *TransacaoRepository) Create(ctx context.Context, q repository.DBExecutor, transacao *domain.Transacao) error {
	prepareTransacaoInsert(transacao)
	query := `INSERT INTO transacoes (id, descricao, valor, data, tipo, categoria, conta_id, usuario_id, data_criacao, ultima_atualizacao)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.ExecContext(ctx, query,
		transacao.ID,
		transacao.Descricao,
		transacao.Valor,
		transacao.Data,
		transacao.Tipo,
		transacao.Categoria,
		transacao.ContaID,
		transacao.UsuarioID,
		transacao.DataCriacao,
		transacao.UltimaAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: conta ou usuário informado não existe", sentinel)
		}
		return fmt.Errorf("failed to create transacao: %w", err)
	}
	return nil
}

// Update overwrites the whole transaction row by ID. The creation timestamp
// is preserved; every other column takes the value from the given entity.
func (r *TransacaoRepository) Update(ctx context.Context, q repository.DBExecutor, transacao *domain.Transacao) error {
	prepareTransacaoUpdate(transacao)
	query := `UPDATE transacoes
	          SET descricao = $2, valor = $3, data = $4, tipo = $5, categoria = $6, conta_id = $7, usuario_id = $8, ultima_atualizacao = $9
	          WHERE id = $1`
	result, err := q.ExecContext(ctx, query,
		transacao.ID,
		transacao.Descricao,
		transacao.Valor,
		transacao.Data,
		transacao.Tipo,
		transacao.Categoria,
		transacao.ContaID,
		transacao.UsuarioID,
		transacao.UltimaAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: conta ou usuário informado não existe", sentinel)
		}
		return fmt.Errorf("failed to update transacao %s: %w", transacao.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transacao %s: %w", transacao.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteByID removes the transaction row using the provided DBExecutor.
func (r *TransacaoRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM transacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transacao %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transacao %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
