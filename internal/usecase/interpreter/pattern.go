package interpreter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

var _ output.Interpreter = (*Pattern)(nil)

// Defaults applied when an optional field is absent from the instruction.
const (
	defaultSubject     = "Message"
	defaultBody        = "Automated message from the action agent"
	defaultTitle       = "Scheduled meeting"
	defaultDuration    = "30"
	defaultDescription = "Meeting scheduled by the action agent"
)

var (
	recipientRe = regexp.MustCompile(`to\s+(\S+@\S+)`)
	subjectRe   = regexp.MustCompile(`about\s+([^.]+)`)
	timeRe      = regexp.MustCompile(`at\s+(\d{1,2}(?::\d{2})?\s?(?:am|pm)?)`)
)

// rule pairs a trigger predicate with its extraction function. Rules are
// evaluated top to bottom over the lower-cased instruction and the first
// match wins: the table order is the documented precedence.
type rule struct {
	match   func(s string) bool
	extract func(s string) entity.Task
}

func defaultRules() []rule {
	return []rule{
		{
			match: func(s string) bool {
				return strings.Contains(s, "email") && strings.Contains(s, "send")
			},
			extract: extractEmail,
		},
		{
			match: func(s string) bool {
				return strings.Contains(s, "schedule") && strings.Contains(s, "meeting")
			},
			extract: extractMeeting,
		},
	}
}

// Pattern is the deterministic interpreter: a fixed ordered rule table with no
// side effects and no external calls.
type Pattern struct {
	rules []rule
}

func NewPattern() *Pattern {
	return &Pattern{rules: defaultRules()}
}

func (p *Pattern) Interpret(_ context.Context, instruction string) entity.Task {
	lowered := strings.ToLower(strings.TrimSpace(instruction))

	for _, r := range p.rules {
		if r.match(lowered) {
			return r.extract(lowered)
		}
	}

	return entity.UnknownTask(fmt.Sprintf("could not interpret: %s", strings.TrimSpace(instruction)))
}

func extractEmail(s string) entity.Task {
	to := "recipient@example.com"
	if m := recipientRe.FindStringSubmatch(s); m != nil {
		to = strings.TrimRight(m[1], ".,;:")
	}

	subject := defaultSubject
	if m := subjectRe.FindStringSubmatch(s); m != nil {
		subject = strings.TrimSpace(m[1])
	}

	return entity.Task{
		Action: entity.ActionSendEmail,
		Attrs: map[string]string{
			entity.AttrTo:      to,
			entity.AttrSubject: subject,
			entity.AttrBody:    defaultBody,
		},
	}
}

func extractMeeting(s string) entity.Task {
	attrs := map[string]string{
		entity.AttrTitle:       defaultTitle,
		entity.AttrDuration:    defaultDuration,
		entity.AttrDescription: defaultDescription,
	}

	if m := timeRe.FindStringSubmatch(s); m != nil {
		attrs[entity.AttrTime] = strings.TrimSpace(m[1])
	}

	return entity.Task{
		Action: entity.ActionScheduleMeeting,
		Attrs:  attrs,
	}
}
