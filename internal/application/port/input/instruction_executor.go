package input

import (
	"context"
	"time"

	"action-agent/internal/domain/entity"
)

// ExecuteRequest is one end-to-end execution request. Credentials are
// provider-scoped and never stored by the core; an empty Providers list means
// all registered providers. Timeout, when positive, overrides the configured
// per-provider execution timeout.
type ExecuteRequest struct {
	Instruction string
	Providers   []string
	Credentials map[string]map[string]string
	Timeout     time.Duration
}

// InstructionExecutor runs one instruction across the requested providers and
// returns exactly one result per provider, in request order. Errors are
// returned only for malformed requests; per-provider failures are data.
type InstructionExecutor interface {
	Execute(ctx context.Context, req ExecuteRequest) (*entity.AggregateResponse, error)
}
