// Package webmail implements providers for browser-driven web mail surfaces.
// Variants differ only in their selector tables, login flows and declared
// capabilities; the execution logic is shared.
package webmail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

var _ output.Provider = (*Provider)(nil)

// Selectors maps logical step targets to concrete CSS selectors.
type Selectors map[entity.Target]string

// Views maps navigate targets to URLs relative to the provider base URL.
type Views map[entity.Target]string

// LoginFlow describes the provider's sign-in sequence.
type LoginFlow struct {
	// LandingPath is appended to the base URL for the initial navigation.
	LandingPath string
	// LoggedInSelector marks an authenticated page; when it is already
	// visible, authentication short-circuits.
	LoggedInSelector string
	EmailField       string
	EmailNext        string
	PasswordField    string
	PasswordNext     string
}

type Config struct {
	Descriptor entity.Descriptor
	Selectors  Selectors
	Views      Views
	Login      LoginFlow
	// StepDelay is the settle pause between steps.
	StepDelay time.Duration
	// ScreenshotDir receives failure screenshots; empty disables them.
	ScreenshotDir string
}

type Provider struct {
	cfg    Config
	logger output.LoggerPort
}

func New(cfg Config, logger output.LoggerPort) *Provider {
	if cfg.StepDelay == 0 {
		cfg.StepDelay = 500 * time.Millisecond
	}
	return &Provider{
		cfg:    cfg,
		logger: logger.WithField("provider", cfg.Descriptor.Name),
	}
}

func (p *Provider) Descriptor() entity.Descriptor {
	return p.cfg.Descriptor
}

// Authenticate signs the session in. It returns false on missing or rejected
// credentials and never lets a driver fault escape.
func (p *Provider) Authenticate(ctx context.Context, sess output.Session, creds map[string]string) bool {
	login := p.cfg.Login

	if err := sess.Navigate(ctx, p.cfg.Descriptor.BaseURL+login.LandingPath); err != nil {
		p.logger.Error("Login page unreachable", "error", err)
		return false
	}

	if sess.Visible(ctx, login.LoggedInSelector) {
		p.logger.Info("Already authenticated")
		return true
	}

	email, password := creds["email"], creds["password"]
	if email == "" || password == "" {
		p.logger.Warn("Credentials missing")
		return false
	}

	signIn := []struct {
		op   string
		run  func() error
	}{
		{"fill email", func() error { return sess.Fill(ctx, login.EmailField, email) }},
		{"submit email", func() error { return sess.Click(ctx, login.EmailNext) }},
		{"wait password field", func() error { return sess.WaitVisible(ctx, login.PasswordField) }},
		{"fill password", func() error { return sess.Fill(ctx, login.PasswordField, password) }},
		{"submit password", func() error { return sess.Click(ctx, login.PasswordNext) }},
		{"wait inbox", func() error { return sess.WaitVisible(ctx, login.LoggedInSelector) }},
	}

	for _, step := range signIn {
		if err := step.run(); err != nil {
			p.logger.Warn("Authentication failed", "op", step.op, "error", err)
			return false
		}
	}

	p.logger.Info("Authenticated")
	return true
}

// Execute applies the steps in order. A failing step is translated into a
// failed TaskResult naming the step; execution never panics out.
func (p *Provider) Execute(ctx context.Context, sess output.Session, task entity.Task, steps []entity.UIStep) entity.TaskResult {
	name := p.cfg.Descriptor.Name

	for i, step := range steps {
		p.logger.Info("Executing step", "index", i, "kind", step.Kind, "target", step.Target)

		if err := p.apply(ctx, sess, step); err != nil {
			p.logger.Error("Step failed", "index", i, "kind", step.Kind, "target", step.Target, "error", err)
			p.captureFailure(ctx, sess)
			return entity.TaskResult{
				Provider: name,
				Kind:     entity.FailureExecution,
				Message:  fmt.Sprintf("Failed to execute %s on %s", task.Action, name),
				Error:    fmt.Sprintf("step %d (%s %s): %v", i, step.Kind, step.Target, err),
			}
		}

		select {
		case <-ctx.Done():
			return entity.TaskResult{
				Provider: name,
				Kind:     entity.FailureExecution,
				Message:  fmt.Sprintf("Execution interrupted on %s", name),
				Error:    fmt.Sprintf("after step %d: %v", i, ctx.Err()),
			}
		case <-time.After(p.cfg.StepDelay):
		}
	}

	p.logger.Info("All steps executed", "steps", len(steps))
	return entity.TaskResult{
		Provider: name,
		Success:  true,
		Message:  fmt.Sprintf("Successfully executed %s on %s", task.Action, name),
		Details: &entity.ResultDetails{
			Provider: name,
			Task:     task.Clone(),
		},
	}
}

func (p *Provider) apply(ctx context.Context, sess output.Session, step entity.UIStep) error {
	switch step.Kind {
	case entity.StepNavigate:
		url, ok := p.cfg.Views[step.Target]
		if !ok {
			return fmt.Errorf("no view for target %q", step.Target)
		}
		return sess.Navigate(ctx, p.cfg.Descriptor.BaseURL+url)

	case entity.StepFill:
		selector, err := p.resolve(step.Target)
		if err != nil {
			return err
		}
		return sess.Fill(ctx, selector, step.Value)

	case entity.StepClick:
		selector, err := p.resolve(step.Target)
		if err != nil {
			return err
		}
		return sess.Click(ctx, selector)

	case entity.StepWait:
		selector, err := p.resolve(step.Target)
		if err != nil {
			return err
		}
		return sess.WaitVisible(ctx, selector)

	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (p *Provider) resolve(target entity.Target) (string, error) {
	selector, ok := p.cfg.Selectors[target]
	if !ok {
		return "", fmt.Errorf("no selector for target %q", target)
	}
	return selector, nil
}

// captureFailure saves a best-effort screenshot for diagnostics.
func (p *Provider) captureFailure(ctx context.Context, sess output.Session) {
	if p.cfg.ScreenshotDir == "" {
		return
	}

	data, err := sess.Screenshot(ctx)
	if err != nil {
		p.logger.Debug("Failure screenshot unavailable", "error", err)
		return
	}

	if err := os.MkdirAll(p.cfg.ScreenshotDir, 0o755); err != nil {
		return
	}

	path := filepath.Join(p.cfg.ScreenshotDir,
		fmt.Sprintf("%s_%s.jpg", p.cfg.Descriptor.Name, time.Now().Format("2006-01-02_15-04-05")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.logger.Debug("Failed to write screenshot", "error", err)
		return
	}

	p.logger.Info("Failure screenshot saved", "path", path)
}
