// Package steps turns a structured task into the canonical ordered sequence of
// abstract UI steps for one provider. Generation is a pure function of the
// task and the provider's capability declaration.
package steps

import (
	"action-agent/internal/domain/entity"
)

// Generate returns the step sequence for the task, or an empty sequence when
// the provider does not declare the task's action. The order is a contract
// surface: providers may assume steps arrive exactly in this order.
func Generate(task entity.Task, desc entity.Descriptor) []entity.UIStep {
	if !desc.Supports(task.Action) {
		return nil
	}

	switch task.Action {
	case entity.ActionSendEmail:
		return []entity.UIStep{
			{Kind: entity.StepNavigate, Target: entity.TargetCompose, Description: "Open the compose view"},
			{Kind: entity.StepFill, Target: entity.TargetTo, Value: task.Attr(entity.AttrTo), Description: "Fill the recipient field"},
			{Kind: entity.StepFill, Target: entity.TargetSubject, Value: task.Attr(entity.AttrSubject), Description: "Fill the subject field"},
			{Kind: entity.StepFill, Target: entity.TargetBody, Value: task.Attr(entity.AttrBody), Description: "Fill the message body"},
			{Kind: entity.StepClick, Target: entity.TargetSend, Description: "Send the message"},
		}
	case entity.ActionScheduleMeeting:
		return []entity.UIStep{
			{Kind: entity.StepNavigate, Target: entity.TargetCalendar, Description: "Open the calendar view"},
			{Kind: entity.StepFill, Target: entity.TargetTitle, Value: task.Attr(entity.AttrTitle), Description: "Fill the meeting title"},
			{Kind: entity.StepFill, Target: entity.TargetTime, Value: task.Attr(entity.AttrTime), Description: "Fill the meeting time"},
			{Kind: entity.StepFill, Target: entity.TargetDuration, Value: task.Attr(entity.AttrDuration), Description: "Fill the duration"},
			{Kind: entity.StepClick, Target: entity.TargetSave, Description: "Save the meeting"},
		}
	default:
		// ActionUnknown is never a declared capability.
		return nil
	}
}
