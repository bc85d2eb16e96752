package di

import (
	"context"
	"fmt"
	"strings"
	"time"

	"action-agent/internal/application/port/input"
	"action-agent/internal/application/port/output"
	"action-agent/internal/application/service"
	"action-agent/internal/infrastructure/browser/rod"
	"action-agent/internal/infrastructure/llm/openrouter"
	"action-agent/internal/infrastructure/logger"
	"action-agent/internal/infrastructure/webmail"
	"action-agent/internal/usecase/interpreter"
	"action-agent/internal/usecase/orchestrator"
)

const defaultModel = "openai/gpt-4o-mini"

type Config struct {
	Headless         bool
	LogLevel         string
	OpenRouterAPIKey string
	OpenRouterModel  string
	UnitTimeout      time.Duration
}

type Container struct {
	Logger      output.LoggerPort
	Browser     output.BrowserPort
	Registry    *service.ProviderRegistry
	Credentials map[string]map[string]string

	// PatternExecutor always works; GenerativeExecutor is nil when no LLM
	// credentials are configured.
	PatternExecutor    input.InstructionExecutor
	GenerativeExecutor input.InstructionExecutor
}

func NewContainer(ctx context.Context, cfg Config, env output.ConfigPort) (*Container, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Headless
	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	registry := service.NewProviderRegistry(
		webmail.NewGmail(log),
		webmail.NewOutlook(log),
	)

	orchCfg := orchestrator.Config{UnitTimeout: cfg.UnitTimeout}

	patternExec := orchestrator.New(interpreter.NewPattern(), registry, browser, log, orchCfg)

	var generativeExec input.InstructionExecutor
	if cfg.OpenRouterAPIKey != "" {
		model := cfg.OpenRouterModel
		if model == "" {
			model = defaultModel
		}

		llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, model)
		llmCfg.Logger = log
		llm := openrouter.NewOpenRouterAdapter(llmCfg)

		gen, err := interpreter.NewGenerative(llm, log)
		if err != nil {
			browser.Close()
			_ = log.Close()
			return nil, fmt.Errorf("failed to create generative interpreter: %w", err)
		}
		generativeExec = orchestrator.New(gen, registry, browser, log, orchCfg)
	}

	return &Container{
		Logger:             log,
		Browser:            browser,
		Registry:           registry,
		Credentials:        loadCredentials(env, registry.Names()),
		PatternExecutor:    patternExec,
		GenerativeExecutor: generativeExec,
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}

// loadCredentials reads <PROVIDER>_EMAIL / <PROVIDER>_PASSWORD pairs from the
// environment. Credentials stay provider-scoped; the core never persists them.
func loadCredentials(env output.ConfigPort, names []string) map[string]map[string]string {
	creds := make(map[string]map[string]string, len(names))
	for _, name := range names {
		prefix := strings.ToUpper(name)
		email := env.Get(prefix + "_EMAIL")
		password := env.Get(prefix + "_PASSWORD")
		if email == "" && password == "" {
			continue
		}
		creds[name] = map[string]string{
			"email":    email,
			"password": password,
		}
	}
	return creds
}
