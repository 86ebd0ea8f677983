package payment

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the request before it is sent to a provider.
func (tx CreateTransaction) Validate() error {
	err := validate.Struct(tx)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Errorf("%w: %s failed on %q", ErrValidation, ve[0].Namespace(), ve[0].Tag())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
