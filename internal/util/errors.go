// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input provided")
	ErrUsuarioNotFound   = errors.New("usuário não encontrado")
	ErrContaNotFound     = errors.New("conta não encontrada")
	ErrTransacaoNotFound = errors.New("transação não encontrada")
	ErrDuplicateEntry    = errors.New("duplicate entry")   // For cases like creating a user with an existing email
	ErrConflict          = errors.New("conflicting state") // For cases like deleting a record other rows still reference
	// Add more specific errors as needed
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
