// internal/service/transacao_service.go
package service

import (
	"context"
	"fmt"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// TransacaoService defines the interface for transaction-related business logic.
type TransacaoService interface {
	ListarTransacoes(ctx context.Context) ([]domain.Transacao, error)
	BuscarTransacao(ctx context.Context, id string) (*domain.Transacao, error)
	CriarTransacao(ctx context.Context, transacao *domain.Transacao) (*domain.Transacao, error)
	AtualizarTransacao(ctx context.Context, id string, transacao *domain.Transacao) (*domain.Transacao, error)
	DeletarTransacao(ctx context.Context, id string) error
}

// transacaoService implements the TransacaoService interface.
type transacaoService struct {
	dbExecutor    repository.DBExecutor
	transacaoRepo repository.TransacaoRepository
}

// NewTransacaoService creates a new instance of TransacaoService.
func NewTransacaoService(dbExecutor repository.DBExecutor, transacaoRepo repository.TransacaoRepository) TransacaoService {
	return &transacaoService{
		dbExecutor:    dbExecutor,
		transacaoRepo: transacaoRepo,
	}
}

// ListarTransacoes returns every transaction.
func (s *transacaoService) ListarTransacoes(ctx context.Context) ([]domain.Transacao, error) {
	transacoes, err := s.transacaoRepo.List(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("listar transacoes: %w", err)
	}
	return transacoes, nil
}

// BuscarTransacao retrieves a single transaction by ID.
func (s *transacaoService) BuscarTransacao(ctx context.Context, id string) (*domain.Transacao, error) {
	transacao, err := s.transacaoRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransacaoNotFound
		}
		return nil, fmt.Errorf("buscar transacao %s: %w", id, err)
	}
	return transacao, nil
}

// CriarTransacao validates and persists a new transaction, returning the
// stored record with its generated ID and timestamps populated. The owning
// account balance is never adjusted by transaction activity.
func (s *transacaoService) CriarTransacao(ctx context.Context, transacao *domain.Transacao) (*domain.Transacao, error) {
	if err := transacao.Validate(); err != nil {
		return nil, err
	}
	if err := s.transacaoRepo.Create(ctx, s.dbExecutor, transacao); err != nil {
		return nil, fmt.Errorf("criar transacao: %w", err)
	}
	return transacao, nil
}

// AtualizarTransacao replaces the whole transaction row at the path ID.
// Any ID in the payload is overridden by the path ID before saving. The
// row is re-read after the write so the preserved creation timestamp
// comes back.
func (s *transacaoService) AtualizarTransacao(ctx context.Context, id string, transacao *domain.Transacao) (*domain.Transacao, error) {
	exists, err := s.transacaoRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar transacao %s: %w", id, err)
	}
	if !exists {
		return nil, util.ErrTransacaoNotFound
	}
	transacao.ID = id
	if err := transacao.Validate(); err != nil {
		return nil, err
	}
	if err := s.transacaoRepo.Update(ctx, s.dbExecutor, transacao); err != nil {
		return nil, fmt.Errorf("atualizar transacao %s: %w", id, err)
	}
	stored, err := s.transacaoRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("atualizar transacao %s: %w", id, err)
	}
	return stored, nil
}

// DeletarTransacao removes the transaction at the given ID.
func (s *transacaoService) DeletarTransacao(ctx context.Context, id string) error {
	exists, err := s.transacaoRepo.ExistsByID(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("deletar transacao %s: %w", id, err)
	}
	if !exists {
		return util.ErrTransacaoNotFound
	}
	if err := s.transacaoRepo.DeleteByID(ctx, s.dbExecutor, id); err != nil {
		return fmt.Errorf("deletar transacao %s: %w", id, err)
	}
	return nil
}
