// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/repository"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
// Services only hand it through to repositories, so the methods are
// never exercised directly in these tests.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUsuarioRepository is a mock implementation of repository.UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Usuario, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Usuario, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsuarioRepository) Create(ctx context.Context, q repository.DBExecutor, usuario *domain.Usuario) error {
	args := m.Called(ctx, q, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, q repository.DBExecutor, usuario *domain.Usuario) error {
	args := m.Called(ctx, q, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

// MockContaRepository is a mock implementation of repository.ContaRepository.
type MockContaRepository struct {
	mock.Mock
}

func (m *MockContaRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Conta, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conta), args.Error(1)
}

func (m *MockContaRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Conta, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conta), args.Error(1)
}

func (m *MockContaRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContaRepository) Create(ctx context.Context, q repository.DBExecutor, conta *domain.Conta) error {
	args := m.Called(ctx, q, conta)
	return args.Error(0)
}

func (m *MockContaRepository) Update(ctx context.Context, q repository.DBExecutor, conta *domain.Conta) error {
	args := m.Called(ctx, q, conta)
	return args.Error(0)
}

func (m *MockContaRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

// MockTransacaoRepository is a mock implementation of repository.TransacaoRepository.
type MockTransacaoRepository struct {
	mock.Mock
}

func (m *MockTransacaoRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Transacao, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transacao), args.Error(1)
}

func (m *MockTransacaoRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Transacao, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transacao), args.Error(1)
}

func (m *MockTransacaoRepository) ExistsByID(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransacaoRepository) Create(ctx context.Context, q repository.DBExecutor, transacao *domain.Transacao) error {
	args := m.Called(ctx, q, transacao)
	return args.Error(0)
}

func (m *MockTransacaoRepository) Update(ctx context.Context, q repository.DBExecutor, transacao *domain.Transacao) error {
	args := m.Called(ctx, q, transacao)
	return args.Error(0)
}

func (m *MockTransacaoRepository) DeleteByID(ctx context.Context, q repository.DBExecutor, id string) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}
