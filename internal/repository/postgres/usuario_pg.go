// internal/repository/postgres/usuario_pg.go
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

// UsuarioRepository implements repository.UsuarioRepository for PostgreSQL.
type UsuarioRepository struct{}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository() repository.UsuarioRepository {
	return &UsuarioRepository{}
}

// prepareUsuarioInsert assigns the server-side fields of a new user:
// a generated ID when the caller did not supply one, and both timestamps.
func prepareUsuarioInsert(usuario *domain.Usuario) {
	if usuario.ID == "" {
		usuario.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	usuario.DataCriacao = now
	usuario.UltimaAtualizacao = now
}

// prepareUsuarioUpdate stamps the update timestamp. Client-supplied
// timestamp values are always discarded.
func prepareUsuarioUpdate(usuario *domain.Usuario) {
	usuario.UltimaAtualizacao = time.Now().UTC()
}

// List retrieves all users using the provided DBExecutor.
func (r *UsuarioRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Usuario, error) {
	usuarios := []domain.Usuario{}
	query := `SELECT id, nome, sobrenome, email, senha, avatar_url, data_criacao, ultima_atualizacao
	          FROM usuarios`
	if err := q.SelectContext(ctx, &usuarios, query); err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	return usuarios, nil
}

// FindByID retrieves a user by ID using the provided DBExecutor.
func (r *UsuarioRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Usuario, error) {
	var usuario domain.Usuario
	query := `SELECT id, nome, sobrenome, email, senha, avatar_url, data_criacao, ultima_atualizacao
	          FROM usuarios WHERE id = $1`
	if err := q.GetContext(ctx, &usuario, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get usuario by ID %s: %w", id, err)
	}
	return &usuario, nil
}

// ExistsByID reports whether a user row exists for the given ID.
func (r *UsuarioRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM usuarios WHERE id = $1)`
	if err := q.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check usuario existence for ID %s: %w", id, err)
	}
	return exists, nil
}

// Create inserts a new user into the database using the provided DBExecutor.
func (r *UsuarioRepository) Create(ctx context.Context, q repository.DBExecutor, usuario *domain.Usuario) error {
	prepareUsuarioInsert(usuario)
	query := `INSERT INTO usuarios (id, nome, sobrenome, email, senha, avatar_url, data_criacao, ultima_atualizacao)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		usuario.ID,
		usuario.Nome,
		usuario.Sobrenome,
		usuario.Email,
		usuario.Senha,
		usuario.AvatarURL,
		usuario.DataCriacao,
		usuario.UltimaAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: email já cadastrado", sentinel)
		}
		return fmt.Errorf("failed to create usuario: %w", err)
	}
	return nil
}

// Update overwrites the whole user row by ID. The creation timestamp is
// preserved; every other column takes the value from the given entity.
func (r *UsuarioRepository) Update(ctx context.Context, q repository.DBExecutor, usuario *domain.Usuario) error {
	prepareUsuarioUpdate(usuario)
	query := `UPDATE usuarios
	          SET nome = $2, sobrenome = $3, email = $4, senha = $5, avatar_url = $6, ultima_atualizacao = $7
	          WHERE id = $1`
	result, err := q.ExecContext(ctx, query,
		usuario.ID,
		usuario.Nome,
		usuario.Sobrenome,
		usuario.Email,
		usuario.Senha,
		usuario.AvatarURL,
		usuario.UltimaAtualizacao,
	)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: email já cadastrado", sentinel)
		}
		return fmt.Errorf("failed to update usuario %s: %w", usuario.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating usuario %s: %w", usuario.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteByID removes the user row using the provided DBExecutor.
func (r *UsuarioRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("%w: usuário possui contas ou transações vinculadas", sentinel)
		}
		return fmt.Errorf("failed to delete usuario %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting usuario %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
