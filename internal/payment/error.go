package payment

import (
	"errors"
	"fmt"
)

var (
	ErrFormat         = errors.New("malformed payload")
	ErrAuthentication = errors.New("authentication failed")
	ErrConfiguration  = errors.New("invalid gateway configuration")
	ErrValidation     = errors.New("invalid transaction")
)

// ProviderError is returned when a provider rejects a request, either with a
// non-2xx status or with an unsuccessful response body.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
}
