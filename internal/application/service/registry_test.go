package service

import (
	"context"
	"testing"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Descriptor() entity.Descriptor {
	return entity.Descriptor{Name: s.name, Capabilities: []entity.Action{entity.ActionSendEmail}}
}

func (s *stubProvider) Authenticate(context.Context, output.Session, map[string]string) bool {
	return true
}

func (s *stubProvider) Execute(context.Context, output.Session, entity.Task, []entity.UIStep) entity.TaskResult {
	return entity.TaskResult{Provider: s.name, Success: true}
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	r := NewProviderRegistry(
		&stubProvider{name: "gmail"},
		&stubProvider{name: "outlook"},
		&stubProvider{name: "yahoo"},
	)

	names := r.Names()
	want := []string{"gmail", "outlook", "yahoo"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewProviderRegistry(&stubProvider{name: "gmail"})

	if _, ok := r.Get("gmail"); !ok {
		t.Error("registered provider must be retrievable")
	}
	if _, ok := r.Get("hotmail"); ok {
		t.Error("unregistered provider must not be found")
	}
}

func TestRegistry_DuplicateNamesKeepFirst(t *testing.T) {
	first := &stubProvider{name: "gmail"}
	second := &stubProvider{name: "gmail"}
	r := NewProviderRegistry(first, second)

	if r.Len() != 1 {
		t.Fatalf("expected 1 provider, got %d", r.Len())
	}
	got, _ := r.Get("gmail")
	if got != first {
		t.Error("first registration must win")
	}
}

func TestRegistry_Descriptors(t *testing.T) {
	r := NewProviderRegistry(&stubProvider{name: "gmail"}, &stubProvider{name: "outlook"})

	descs := r.Descriptors()
	if len(descs) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descs))
	}
	if descs[0].Name != "gmail" || descs[1].Name != "outlook" {
		t.Error("descriptors must follow registration order")
	}
}
