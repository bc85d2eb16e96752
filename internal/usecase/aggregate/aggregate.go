// Package aggregate merges per-provider outcomes into the single response for
// one execution request.
package aggregate

import (
	"action-agent/internal/domain/entity"
)

// Build assembles the aggregate response. results is indexed by request order,
// one slot per requested provider; slots a unit never filled become internal
// failures so the response always carries exactly one result per provider.
func Build(id string, task entity.Task, names []string, results []entity.TaskResult) entity.AggregateResponse {
	out := make([]entity.TaskResult, len(names))
	copy(out, results)

	for i := range out {
		if out[i].Provider == "" {
			out[i].Provider = names[i]
		}
		if isEmpty(out[i]) {
			out[i].Kind = entity.FailureInternal
			out[i].Message = "no result recorded for provider"
			out[i].Error = "missing unit result"
		}
	}

	return entity.AggregateResponse{
		ID:      id,
		Task:    task,
		Results: out,
	}
}

func isEmpty(r entity.TaskResult) bool {
	return !r.Success && !r.Skipped && r.Message == "" && r.Error == ""
}
