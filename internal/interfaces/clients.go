package interfaces

import "context"

// AIClient is the external feedback service collaborator. The exchange is
// a single blocking request/response bounded by the caller's context;
// retry policy, if any, belongs to the caller.
type AIClient interface {
	// GenerateContent submits a prompt and returns the raw response text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
