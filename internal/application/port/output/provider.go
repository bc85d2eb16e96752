package output

import (
	"context"

	"action-agent/internal/domain/entity"
)

// Provider executes tasks against one external web surface. Implementations
// own the mapping from logical step targets to concrete selectors.
type Provider interface {
	Descriptor() entity.Descriptor

	// Authenticate is idempotent per session and returns false, never an
	// error, on missing or rejected credentials.
	Authenticate(ctx context.Context, sess Session, creds map[string]string) bool

	// Execute applies the steps in order. Step failures are translated into a
	// failed TaskResult; no fault escapes to the orchestrator.
	Execute(ctx context.Context, sess Session, task entity.Task, steps []entity.UIStep) entity.TaskResult
}
