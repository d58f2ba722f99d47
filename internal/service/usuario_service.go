// internal/service/usuario_service.go
package service

import (
	"context"
	"fmt"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// UsuarioService defines the interface for user-related business logic.
type UsuarioService interface {
	ListarUsuarios(ctx context.Context) ([]domain.Usuario, error)
	BuscarUsuario(ctx context.Context, id string) (*domain.Usuario, error)
	CriarUsuario(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	AtualizarUsuario(ctx context.Context, id string, usuario *domain.Usuario) (*domain.Usuario, error)
	DeletarUsuario(ctx context.Context, id string) error
}

// usuarioService implements the UsuarioService interface.
type usuarioService struct {
	dbExecutor  repository.DBExecutor
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioService creates a new instance of UsuarioService.
func NewUsuarioService(dbExecutor repository.DBExecutor, usuarioRepo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{
		dbExecutor:  dbExecutor,
		usuarioRepo: usuarioRepo,
	}
}

// ListarUsuarios returns every user.
func (s *usuarioService) ListarUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	usuarios, err := s.usuarioRepo.List(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return usuarios, nil
}

// BuscarUsuario retrieves a single user by ID.
func (s *usuarioService) BuscarUsuario(ctx context.Context, id string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("buscar usuario %s: %w", id, err)
	}
	return usuario, nil
}

// CriarUsuario validates and persists a new user, returning the stored
// record with its generated ID and timestamps populated. Email uniqueness
// is enforced by the database and surfaces as util.ErrDuplicateEntry.
func (s *usuarioService) CriarUsuario(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	if err := usuario.Validate(); err != nil {
		return nil, err
	}
	if err := s.usuarioRepo.Create(ctx, s.dbExecutor, usuario); err != nil {
		return nil, fmt.Errorf("criar usuario: %w", err)
	}
	return usuario, nil
}

// AtualizarUsuario replaces the whole user row at the path ID. Any ID in
// the payload is overridden by the path ID before saving. The row is
// re-read after the write so the preserved creation timestamp comes back.
func (s *usuarioService) AtualizarUsuario(ctx context.Context, id string, usuario *domain.Usuario) (*domain.Usuario, error) {
	exists, err := s.usuarioRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar usuario %s: %w", id, err)
	}
	if !exists {
		return nil, util.ErrUsuarioNotFound
	}
	usuario.ID = id
	if err := usuario.Validate(); err != nil {
		return nil, err
	}
	if err := s.usuarioRepo.Update(ctx, s.dbExecutor, usuario); err != nil {
		return nil, fmt.Errorf("atualizar usuario %s: %w", id, err)
	}
	stored, err := s.usuarioRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar usuario %s: %w", id, err)
	}
	return stored, nil
}

// DeletarUsuario removes the user at the given ID. Deletion is restricted
// while accounts or transactions still reference the user.
func (s *usuarioService) DeletarUsuario(ctx context.Context, id string) error {
	exists, err := s.usuarioRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("deletar usuario %s: %w", id, err)
	}
	if !exists {
		return util.ErrUsuarioNotFound
	}
	if err := s.usuarioRepo.DeleteByID(ctx, s.dbExecutor, id); err != nil {
		return fmt.Errorf("deletar usuario %s: %w", id, err)
	}
	return nil
}
