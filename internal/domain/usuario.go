// internal/domain/usuario.go
package domain

import "time"

// Usuario represents an account holder in the system. The struct mirrors
// the storage row; the HTTP wire representation lives in the handler
// package, which never serializes Senha outward.
type Usuario struct {
	ID                string    `db:"id"`
	Nome              string    `db:"nome" validate:"required,max=50"`
	Sobrenome         string    `db:"sobrenome" validate:"required,max=100"`
	Email             string    `db:"email" validate:"required,email,max=100"`
	Senha             string    `db:"senha"`
	AvatarURL         *string   `db:"avatar_url"`
	DataCriacao       time.Time `db:"data_criacao"`
	UltimaAtualizacao time.Time `db:"ultima_atualizacao"`
}

// NomeCompleto returns the user's full display name.
func (u *Usuario) NomeCompleto() string {
	return u.Nome + " " + u.Sobrenome
}

// Validate checks the field constraints of the user.
func (u *Usuario) Validate() error {
	return checkStruct(u)
}
