// internal/service/conta_service.go
package service

import (
	"context"
	"fmt"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// ContaService defines the interface for account-related business logic.
type ContaService interface {
	ListarContas(ctx context.Context) ([]domain.Conta, error)
	BuscarConta(ctx context.Context, id string) (*domain.Conta, error)
	CriarConta(ctx context.Context, conta *domain.Conta) (*domain.Conta, error)
	AtualizarConta(ctx context.Context, id string, conta *domain.Conta) (*domain.Conta, error)
	DeletarConta(ctx context.Context, id string) error
}

// contaService implements the ContaService interface.
type contaService struct {
	dbExecutor repository.DBExecutor
	contaRepo  repository.ContaRepository
}

// NewContaService creates a new instance of ContaService.
func NewContaService(dbExecutor repository.DBExecutor, contaRepo repository.ContaRepository) ContaService {
	return &contaService{
		dbExecutor: dbExecutor,
		contaRepo:  contaRepo,
	}
}

// ListarContas returns every account. Listing is intentionally global:
// the original system never filters accounts by owner.
func (s *contaService) ListarContas(ctx context.Context) ([]domain.Conta, error) {
	contas, err := s.contaRepo.List(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}
	return contas, nil
}

// BuscarConta retrieves a single account by ID.
func (s *contaService) BuscarConta(ctx context.Context, id string) (*domain.Conta, error) {
	conta, err := s.contaRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrContaNotFound
		}
		return nil, fmt.Errorf("buscar conta %s: %w", id, err)
	}
	return conta, nil
}

// CriarConta validates and persists a new account, returning the stored
// record with its generated ID and creation timestamp populated.
func (s *contaService) CriarConta(ctx context.Context, conta *domain.Conta) (*domain.Conta, error) {
	if err := conta.Validate(); err != nil {
		return nil, err
	}
	if err := s.contaRepo.Create(ctx, s.dbExecutor, conta); err != nil {
		return nil, fmt.Errorf("criar conta: %w", err)
	}
	return conta, nil
}

// AtualizarConta replaces the whole account row at the path ID. Any ID in
// the payload is overridden by the path ID before saving. The row is
// re-read after the write so the preserved creation timestamp comes back.
func (s *contaService) AtualizarConta(ctx context.Context, id string, conta *domain.Conta) (*domain.Conta, error) {
	exists, err := s.contaRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar conta %s: %w", id, err)
	}
	if !exists {
		return nil, util.ErrContaNotFound
	}
	conta.ID = id
	if err := conta.Validate(); err != nil {
		return nil, err
	}
	if err := s.contaRepo.Update(ctx, s.dbExecutor, conta); err != nil {
		return nil, fmt.Errorf("atualizar conta %s: %w", id, err)
	}
	stored, err := s.contaRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar conta %s: %w", id, err)
	}
	return stored, nil
}

// DeletarConta removes the account at the given ID.
func (s *contaService) DeletarConta(ctx context.Context, id string) error {
	exists, err := s.contaRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("deletar conta %s: %w", id, err)
	}
	if !exists {
		return util.ErrContaNotFound
	}
	if err := s.contaRepo.DeleteByID(ctx, s.dbExecutor, id); err != nil {
		return fmt.Errorf("deletar conta %s: %w", id, err)
	}
	return nil
}
