package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
	"action-agent/internal/infrastructure/prompts"
)

var _ output.Interpreter = (*Generative)(nil)

// knownActions is the closed set the generative backend may answer with.
var knownActions = []entity.Action{
	entity.ActionSendEmail,
	entity.ActionScheduleMeeting,
}

// Generative delegates interpretation to the reasoning backend and parses its
// structured reply. This is the only boundary between the orchestrator and the
// backend's failure modes: transport errors and malformed output both degrade
// to an unknown task instead of propagating.
type Generative struct {
	llm          output.LLMPort
	logger       output.LoggerPort
	systemPrompt string
}

func NewGenerative(llm output.LLMPort, logger output.LoggerPort) (*Generative, error) {
	prompt, err := prompts.InterpreterPrompt(knownActions)
	if err != nil {
		return nil, fmt.Errorf("build interpreter prompt: %w", err)
	}

	return &Generative{
		llm:          llm,
		logger:       logger,
		systemPrompt: prompt,
	}, nil
}

func (g *Generative) Interpret(ctx context.Context, instruction string) entity.Task {
	resp, err := g.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: g.systemPrompt},
			{Role: entity.RoleUser, Content: fmt.Sprintf("Convert this instruction to a task object: %s", instruction)},
		},
		Temperature: 0.1,
	})
	if err != nil {
		g.logger.Warn("Interpretation backend call failed", "error", err)
		return entity.UnknownTask("interpretation backend unavailable")
	}

	task, err := parseTaskJSON(resp.Message.Content)
	if err != nil {
		g.logger.Warn("Interpretation backend returned unparseable output", "error", err)
		return entity.UnknownTask("interpretation backend returned unparseable output")
	}

	return task
}

// parseTaskJSON extracts the first JSON object from the reply and maps it onto
// a task. Models often wrap the object in prose, so everything outside the
// outermost braces is ignored.
func parseTaskJSON(content string) (entity.Task, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return entity.Task{}, fmt.Errorf("no JSON object in response")
	}

	var raw struct {
		Action string            `json:"action"`
		Attrs  map[string]string `json:"attrs"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return entity.Task{}, fmt.Errorf("decode task object: %w", err)
	}

	action := entity.Action(raw.Action)
	if !isKnownAction(action) {
		return entity.UnknownTask(fmt.Sprintf("backend proposed unsupported action %q", raw.Action)), nil
	}

	attrs := raw.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}

	return entity.Task{Action: action, Attrs: attrs}, nil
}

func isKnownAction(a entity.Action) bool {
	for _, known := range knownActions {
		if a == known {
			return true
		}
	}
	return false
}
