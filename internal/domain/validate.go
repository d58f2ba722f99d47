// internal/domain/validate.go
package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// validate is the shared validator instance for declarative field constraints.
var validate = validator.New()

// checkStruct runs the validator tags of v and wraps any violation
// in util.ErrInvalidInput so callers can map it to a client error.
func checkStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: campo %s inválido (%s)", util.ErrInvalidInput, f.Field(), f.Tag())
		}
		return fmt.Errorf("%w: %v", util.ErrInvalidInput, err)
	}
	return nil
}
