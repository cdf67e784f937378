package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderConfigured indicates no provider is configured
	ErrNoProviderConfigured = errors.New("no LLM provider configured")

	// ErrUnknownProvider indicates the configured provider name is not supported
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
