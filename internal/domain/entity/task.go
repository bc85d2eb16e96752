package entity

// Action is the provider-agnostic intent of a task.
type Action string

const (
	ActionSendEmail       Action = "send_email"
	ActionScheduleMeeting Action = "schedule_meeting"
	ActionUnknown         Action = "unknown"
)

// Attribute names shared between interpreters and the step generator.
const (
	AttrTo          = "to"
	AttrSubject     = "subject"
	AttrBody        = "body"
	AttrTitle       = "title"
	AttrTime        = "time"
	AttrDuration    = "duration"
	AttrDescription = "description"
	AttrReason      = "reason"
)

// Task is the structured interpretation of one instruction. It is created by an
// interpreter and read-only afterwards; providers never mutate it.
type Task struct {
	Action Action            `json:"action"`
	Attrs  map[string]string `json:"attrs,omitempty"`
}

// Attr returns the named attribute or the empty string.
func (t Task) Attr(name string) string {
	return t.Attrs[name]
}

// Clone returns a deep copy so results can echo the task without aliasing the
// orchestrator-owned value.
func (t Task) Clone() Task {
	out := Task{Action: t.Action}
	if t.Attrs != nil {
		out.Attrs = make(map[string]string, len(t.Attrs))
		for k, v := range t.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// UnknownTask builds the distinguished task for uninterpretable input.
func UnknownTask(reason string) Task {
	return Task{
		Action: ActionUnknown,
		Attrs:  map[string]string{AttrReason: reason},
	}
}

// FailureKind classifies a failed TaskResult.
type FailureKind string

const (
	FailureNone           FailureKind = ""
	FailureAuthentication FailureKind = "authentication"
	FailureExecution      FailureKind = "execution"
	FailureTimeout        FailureKind = "timeout"
	FailureInternal       FailureKind = "internal"
)

// ResultDetails echoes the executed task back to the caller.
type ResultDetails struct {
	Provider string `json:"provider"`
	Task     Task   `json:"task"`
}

// TaskResult is the outcome of executing one task against one provider.
// Skipped marks the non-error "not applicable" outcome for providers that do
// not support the task's action.
type TaskResult struct {
	Provider string         `json:"provider"`
	Success  bool           `json:"success"`
	Skipped  bool           `json:"skipped,omitempty"`
	Kind     FailureKind    `json:"kind,omitempty"`
	Message  string         `json:"message"`
	Error    string         `json:"error,omitempty"`
	Details  *ResultDetails `json:"details,omitempty"`
}

// AggregateResponse is the single response for one execution request: the
// interpreted task plus one result per requested provider, in request order.
type AggregateResponse struct {
	ID      string       `json:"execution_id"`
	Task    Task         `json:"task_interpretation"`
	Results []TaskResult `json:"results"`
}
