package aggregate

import (
	"testing"

	"action-agent/internal/domain/entity"
)

func TestBuild_OneResultPerProvider(t *testing.T) {
	task := entity.Task{Action: entity.ActionSendEmail}
	names := []string{"gmail", "outlook"}
	results := []entity.TaskResult{
		{Provider: "gmail", Success: true, Message: "ok"},
		{Provider: "outlook", Kind: entity.FailureExecution, Error: "boom"},
	}

	resp := Build("exec-1", task, names, results)

	if resp.ID != "exec-1" {
		t.Errorf("expected id exec-1, got %q", resp.ID)
	}
	if resp.Task.Action != entity.ActionSendEmail {
		t.Errorf("expected task echo, got %q", resp.Task.Action)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Provider != "gmail" || resp.Results[1].Provider != "outlook" {
		t.Error("results must follow request order")
	}
}

func TestBuild_FillsMissingSlots(t *testing.T) {
	names := []string{"gmail", "outlook"}
	results := []entity.TaskResult{
		{Provider: "gmail", Success: true, Message: "ok"},
		{}, // unit never wrote its slot
	}

	resp := Build("exec-2", entity.Task{Action: entity.ActionSendEmail}, names, results)

	missing := resp.Results[1]
	if missing.Provider != "outlook" {
		t.Errorf("empty slot must be stamped with the provider name, got %q", missing.Provider)
	}
	if missing.Kind != entity.FailureInternal {
		t.Errorf("empty slot must become an internal failure, got %q", missing.Kind)
	}
	if missing.Success {
		t.Error("filled slot must not report success")
	}
}

func TestBuild_SkippedSlotIsNotMissing(t *testing.T) {
	names := []string{"outlook"}
	results := []entity.TaskResult{
		{Provider: "outlook", Skipped: true, Message: "outlook does not support action"},
	}

	resp := Build("exec-3", entity.Task{Action: entity.ActionScheduleMeeting}, names, results)

	if resp.Results[0].Kind != entity.FailureNone {
		t.Errorf("skipped result must keep its kind, got %q", resp.Results[0].Kind)
	}
	if !resp.Results[0].Skipped {
		t.Error("skipped flag must survive aggregation")
	}
}
