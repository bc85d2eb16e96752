package output

import (
	"context"

	"action-agent/internal/domain/entity"
)

// Interpreter maps a raw instruction to a structured task. Interpret is total:
// it always returns a task with a defined action (possibly ActionUnknown) and
// never returns an error, whatever the input or the backend does.
type Interpreter interface {
	Interpret(ctx context.Context, instruction string) entity.Task
}
