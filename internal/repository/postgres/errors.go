// internal/repository/postgres/errors.go
package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// PostgreSQL error codes for constraint violations.
const (
	codeUniqueViolation     = pq.ErrorCode("23505")
	codeForeignKeyViolation = pq.ErrorCode("23503")
)

// constraintError translates PostgreSQL constraint violations into
// application sentinel errors. It returns nil when err is not a
// recognized constraint violation.
func constraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		return util.ErrDuplicateEntry
	case codeForeignKeyViolation:
		return util.ErrConflict
	}
	return nil
}
