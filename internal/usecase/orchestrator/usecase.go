package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"action-agent/internal/application/port/input"
	"action-agent/internal/application/port/output"
	"action-agent/internal/application/service"
	"action-agent/internal/domain/entity"
	"action-agent/internal/usecase/aggregate"
	"action-agent/internal/usecase/steps"
)

var _ input.InstructionExecutor = (*Orchestrator)(nil)

// Request-level errors. Everything below these is captured into per-provider
// results and never escapes the orchestrator.
var (
	ErrEmptyInstruction = errors.New("instruction is empty")
	ErrNoProviders      = errors.New("no providers registered")
	ErrUnknownProvider  = errors.New("unknown provider")
)

// phase names the per-request state machine states. Transitions are logged;
// a response is only ever produced from phaseDone.
type phase string

const (
	phaseReceived     phase = "received"
	phaseInterpreting phase = "interpreting"
	phaseDispatching  phase = "dispatching"
	phaseAwaiting     phase = "awaiting"
	phaseAggregating  phase = "aggregating"
	phaseDone         phase = "done"
)

const defaultUnitTimeout = 60 * time.Second

type Config struct {
	// UnitTimeout bounds each provider unit. A request may override it with
	// its own timeout.
	UnitTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{UnitTimeout: defaultUnitTimeout}
}

// Orchestrator fans one interpreted task out to N providers concurrently and
// aggregates the outcomes. It holds no per-request state; every Execute call
// is independent.
type Orchestrator struct {
	interpreter output.Interpreter
	registry    *service.ProviderRegistry
	browser     output.BrowserPort
	logger      output.LoggerPort
	unitTimeout time.Duration
}

func New(
	interpreter output.Interpreter,
	registry *service.ProviderRegistry,
	browser output.BrowserPort,
	logger output.LoggerPort,
	cfg Config,
) *Orchestrator {
	timeout := cfg.UnitTimeout
	if timeout <= 0 {
		timeout = defaultUnitTimeout
	}

	return &Orchestrator{
		interpreter: interpreter,
		registry:    registry,
		browser:     browser,
		logger:      logger,
		unitTimeout: timeout,
	}
}

func (o *Orchestrator) Execute(ctx context.Context, req input.ExecuteRequest) (*entity.AggregateResponse, error) {
	execID := uuid.NewString()
	log := o.logger.WithField("execution_id", execID)
	log.Debug("Phase transition", "phase", phaseReceived)

	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return nil, ErrEmptyInstruction
	}
	if o.registry.Len() == 0 {
		return nil, ErrNoProviders
	}

	names := req.Providers
	if len(names) == 0 {
		names = o.registry.Names()
	}

	providers := make([]output.Provider, len(names))
	for i, name := range names {
		p, ok := o.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
		}
		providers[i] = p
	}

	log.Debug("Phase transition", "phase", phaseInterpreting)
	task := o.interpreter.Interpret(ctx, instruction)
	log.Info("Instruction interpreted", "action", task.Action)

	timeout := o.unitTimeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	// Dispatch always happens, even for an unknown action: each provider
	// reports "not applicable" uniformly instead of short-circuiting here.
	log.Debug("Phase transition", "phase", phaseDispatching, "providers", len(providers))

	results := make([]entity.TaskResult, len(providers))
	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p output.Provider) {
			defer wg.Done()
			results[i] = o.runUnit(ctx, log, task, p, req.Credentials[p.Descriptor().Name], timeout)
		}(i, p)
	}

	log.Debug("Phase transition", "phase", phaseAwaiting, "units", len(providers))
	wg.Wait()

	log.Debug("Phase transition", "phase", phaseAggregating)
	resp := aggregate.Build(execID, task.Clone(), names, results)

	log.Debug("Phase transition", "phase", phaseDone)
	return &resp, nil
}

// runUnit executes one provider unit: generate steps, open an isolated
// session, authenticate, execute. All failure modes end up in the returned
// result; the unit never lets a fault escape.
func (o *Orchestrator) runUnit(
	ctx context.Context,
	log output.LoggerPort,
	task entity.Task,
	p output.Provider,
	creds map[string]string,
	timeout time.Duration,
) (res entity.TaskResult) {
	desc := p.Descriptor()
	ulog := log.WithField("provider", desc.Name)

	defer func() {
		if r := recover(); r != nil {
			ulog.Error("Provider unit panicked", "panic", r)
			res = internalFailure(desc.Name, fmt.Sprintf("panic: %v", r))
		}
	}()

	uiSteps := steps.Generate(task, desc)
	if len(uiSteps) == 0 {
		ulog.Info("Action not applicable, skipping", "action", task.Action)
		return entity.TaskResult{
			Provider: desc.Name,
			Skipped:  true,
			Message:  fmt.Sprintf("%s does not support action %q", desc.Name, task.Action),
		}
	}

	unitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan entity.TaskResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ulog.Error("Provider unit panicked", "panic", r)
				done <- internalFailure(desc.Name, fmt.Sprintf("panic: %v", r))
			}
		}()
		done <- o.executeOnProvider(unitCtx, ulog, p, task, uiSteps, creds)
	}()

	select {
	case res := <-done:
		return res
	case <-unitCtx.Done():
		ulog.Warn("Provider unit cancelled", "timeout", timeout, "cause", unitCtx.Err())
		return entity.TaskResult{
			Provider: desc.Name,
			Kind:     entity.FailureTimeout,
			Message:  fmt.Sprintf("Execution on %s did not complete within %s", desc.Name, timeout),
			Error:    fmt.Sprintf("timeout: %v", unitCtx.Err()),
		}
	}
}

func (o *Orchestrator) executeOnProvider(
	ctx context.Context,
	ulog output.LoggerPort,
	p output.Provider,
	task entity.Task,
	uiSteps []entity.UIStep,
	creds map[string]string,
) entity.TaskResult {
	desc := p.Descriptor()

	sess, err := o.browser.NewSession(ctx)
	if err != nil {
		ulog.Error("Browser session unavailable", "error", err)
		return internalFailure(desc.Name, fmt.Sprintf("browser session unavailable: %v", err))
	}
	defer sess.Close()

	if !p.Authenticate(ctx, sess, creds) {
		ulog.Warn("Authentication failed")
		return entity.TaskResult{
			Provider: desc.Name,
			Kind:     entity.FailureAuthentication,
			Message:  fmt.Sprintf("Authentication failed for %s", desc.Name),
			Error:    "Authentication failed",
		}
	}

	ulog.Info("Executing steps", "steps", len(uiSteps))
	return p.Execute(ctx, sess, task, uiSteps)
}

func internalFailure(provider, errMsg string) entity.TaskResult {
	return entity.TaskResult{
		Provider: provider,
		Kind:     entity.FailureInternal,
		Message:  fmt.Sprintf("Execution failed for %s", provider),
		Error:    errMsg,
	}
}
