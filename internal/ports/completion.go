package ports

import "context"

// CompletionClient is the single-call interface to the external AI
// completion service. Each call is stateless: the adapter sends the
// fixed persona plus the one user message, no prior history.
type CompletionClient interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}
