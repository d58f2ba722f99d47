// internal/domain/conta.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary values
)

// Conta represents a financial account owned by a user.
// Saldo is maintained manually by the caller; it is never derived
// from transaction activity.
type Conta struct {
	ID              string          `db:"id"`
	Nome            string          `db:"nome" validate:"required"`
	Saldo           decimal.Decimal `db:"saldo"`
	Tipo            string          `db:"tipo" validate:"required"` // CORRENTE, POUPANCA, INVESTIMENTO, etc.
	UsuarioID       string          `db:"usuario_id" validate:"required"`
	DataCriacao     time.Time       `db:"data_criacao"`
	DataAtualizacao *time.Time      `db:"data_atualizacao"` // nil until first update
}

// Validate checks the field constraints of the account.
func (c *Conta) Validate() error {
	return checkStruct(c)
}
