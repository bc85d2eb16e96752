package interpreter

import (
	"context"
	"errors"
	"testing"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
	"action-agent/internal/infrastructure/logger"
)

type fakeLLM struct {
	content string
	err     error
}

func (f *fakeLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: f.content},
	}, nil
}

func newGenerative(t *testing.T, llm output.LLMPort) *Generative {
	t.Helper()
	g, err := NewGenerative(llm, logger.Nop())
	if err != nil {
		t.Fatalf("NewGenerative failed: %v", err)
	}
	return g
}

func TestGenerative_ValidResponse(t *testing.T) {
	g := newGenerative(t, &fakeLLM{
		content: `{"action": "send_email", "attrs": {"to": "joe@example.com", "subject": "hi"}}`,
	})

	task := g.Interpret(context.Background(), "send email to joe@example.com about hi")

	if task.Action != entity.ActionSendEmail {
		t.Fatalf("expected send_email, got %q", task.Action)
	}
	if task.Attr(entity.AttrTo) != "joe@example.com" {
		t.Errorf("expected to=joe@example.com, got %q", task.Attr(entity.AttrTo))
	}
}

func TestGenerative_ResponseWithSurroundingText(t *testing.T) {
	g := newGenerative(t, &fakeLLM{
		content: "Here is the task:\n{\"action\": \"schedule_meeting\", \"attrs\": {\"title\": \"sync\"}}\nDone.",
	})

	task := g.Interpret(context.Background(), "schedule a meeting")

	if task.Action != entity.ActionScheduleMeeting {
		t.Fatalf("expected schedule_meeting, got %q", task.Action)
	}
}

func TestGenerative_BackendErrorDegradesToUnknown(t *testing.T) {
	g := newGenerative(t, &fakeLLM{err: errors.New("connection refused")})

	task := g.Interpret(context.Background(), "send email to joe@example.com")

	if task.Action != entity.ActionUnknown {
		t.Fatalf("expected unknown, got %q", task.Action)
	}
	if task.Attr(entity.AttrReason) == "" {
		t.Error("expected an explanatory reason attribute")
	}
}

func TestGenerative_MalformedResponseDegradesToUnknown(t *testing.T) {
	for _, content := range []string{
		"this is not JSON at all",
		`{"action": broken}`,
		"",
	} {
		g := newGenerative(t, &fakeLLM{content: content})

		task := g.Interpret(context.Background(), "send email")
		if task.Action != entity.ActionUnknown {
			t.Errorf("content %q: expected unknown, got %q", content, task.Action)
		}
	}
}

func TestGenerative_UnsupportedActionDegradesToUnknown(t *testing.T) {
	g := newGenerative(t, &fakeLLM{content: `{"action": "launch_rocket"}`})

	task := g.Interpret(context.Background(), "launch a rocket")

	if task.Action != entity.ActionUnknown {
		t.Fatalf("expected unknown, got %q", task.Action)
	}
}
