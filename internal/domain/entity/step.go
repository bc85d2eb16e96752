package entity

// StepKind is the kind of one abstract UI interaction.
type StepKind string

const (
	StepNavigate StepKind = "navigate"
	StepFill     StepKind = "fill"
	StepClick    StepKind = "click"
	StepWait     StepKind = "wait"
)

// Target is a logical reference to a UI surface or field. Providers resolve
// targets to their own concrete selectors; the core never carries raw selectors.
type Target string

const (
	TargetCompose  Target = "compose"
	TargetTo       Target = "to"
	TargetSubject  Target = "subject"
	TargetBody     Target = "body"
	TargetSend     Target = "send"
	TargetCalendar Target = "calendar"
	TargetTitle    Target = "title"
	TargetTime     Target = "time"
	TargetDuration Target = "duration"
	TargetSave     Target = "save"
)

// UIStep is one abstract interaction. Steps are generated fresh per
// (task, provider) pair and arrive at the provider in canonical order.
type UIStep struct {
	Kind        StepKind `json:"kind"`
	Target      Target   `json:"target,omitempty"`
	Value       string   `json:"value,omitempty"`
	Description string   `json:"description,omitempty"`
}
