package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "openai/gpt-4o-mini")

	if cfg.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.APIKey != "key" || cfg.Model != "openai/gpt-4o-mini" {
		t.Error("config must carry key and model through")
	}
}

func TestConvertMessages(t *testing.T) {
	in := []entity.Message{
		{Role: entity.RoleSystem, Content: "you are an interpreter"},
		{Role: entity.RoleUser, Content: "send email"},
	}

	out := convertMessages(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].Role != "system" || out[0].Content != "you are an interpreter" {
		t.Errorf("system message mangled: %+v", out[0])
	}
	if out[1].Role != "user" || out[1].Content != "send email" {
		t.Errorf("user message mangled: %+v", out[1])
	}
}

func TestChat_AgainstStubEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{
					"role":    "assistant",
					"content": `{"action": "send_email"}`,
				}},
			},
		})
	}))
	defer srv.Close()

	cfg := DefaultConfig("test-key", "test-model")
	cfg.BaseURL = srv.URL
	adapter := NewOpenRouterAdapter(cfg)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "send email"}},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Message.Role != entity.RoleAssistant {
		t.Errorf("expected assistant role, got %q", resp.Message.Role)
	}
	if resp.Message.Content != `{"action": "send_email"}` {
		t.Errorf("unexpected content %q", resp.Message.Content)
	}
}

func TestChat_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	cfg := DefaultConfig("test-key", "test-model")
	cfg.BaseURL = srv.URL
	adapter := NewOpenRouterAdapter(cfg)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "x"}},
	})
	if err == nil {
		t.Fatal("expected an error for a response without choices")
	}
}
