package usecasecontract

import "context"

// IAIService is the outbound chat-completion client.
type IAIService interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Configured reports whether an API key is present; when false callers
	// skip the provider entirely.
	Configured() bool
}
