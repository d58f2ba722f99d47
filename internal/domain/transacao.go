// internal/domain/transacao.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal" // For precise monetary values

	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// TipoTransacao defines the direction of a transaction.
type TipoTransacao string

const (
	TipoTransacaoEntrada TipoTransacao = "ENTRADA"
	TipoTransacaoSaida   TipoTransacao = "SAIDA"
)

// Valid reports whether t is a known transaction type.
func (t TipoTransacao) Valid() bool {
	return t == TipoTransacaoEntrada || t == TipoTransacaoSaida
}

// Transacao represents a single dated monetary movement tied to an
// account and a user. Direction of money flow is carried by Tipo,
// not by the sign of Valor, which is always positive.
type Transacao struct {
	ID                string          `db:"id"`
	Descricao         string          `db:"descricao" validate:"required"`
	Valor             decimal.Decimal `db:"valor"`
	Data              Date            `db:"data"`
	Tipo              TipoTransacao   `db:"tipo"`
	Categoria         string          `db:"categoria" validate:"required"`
	ContaID           string          `db:"conta_id" validate:"required"`
	UsuarioID         string          `db:"usuario_id" validate:"required"`
	DataCriacao       time.Time       `db:"data_criacao"`
	UltimaAtualizacao time.Time       `db:"ultima_atualizacao"`
}

// Validate checks the field constraints of the transaction.
func (t *Transacao) Validate() error {
	if err := checkStruct(t); err != nil {
		return err
	}
	if !t.Valor.IsPositive() {
		return fmt.Errorf("%w: valor deve ser positivo", util.ErrInvalidInput)
	}
	if t.Data.IsZero() {
		return fmt.Errorf("%w: data é obrigatória", util.ErrInvalidInput)
	}
	if t.Data.After(Today().Time) {
		return fmt.Errorf("%w: data não pode estar no futuro", util.ErrInvalidInput)
	}
	if !t.Tipo.Valid() {
		return fmt.Errorf("%w: tipo deve ser ENTRADA ou SAIDA", util.ErrInvalidInput)
	}
	return nil
}
