package webmail

import (
	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

// NewGmail builds the Gmail provider. Selectors follow the Gmail web UI;
// calendar targets go through the Google Calendar surface.
func NewGmail(logger output.LoggerPort) *Provider {
	return New(Config{
		Descriptor: entity.Descriptor{
			Name:        "gmail",
			Description: "Gmail web interface",
			BaseURL:     "https://mail.google.com",
			Capabilities: []entity.Action{
				entity.ActionSendEmail,
				entity.ActionScheduleMeeting,
			},
		},
		Views: Views{
			entity.TargetCompose:  "/mail/u/0/#inbox?compose=new",
			entity.TargetCalendar: "/mail/u/0/#calendar",
		},
		Selectors: Selectors{
			entity.TargetTo:       "input[aria-label='To recipients']",
			entity.TargetSubject:  "input[name='subjectbox']",
			entity.TargetBody:     "div[aria-label='Message Body']",
			entity.TargetSend:     "div[aria-label^='Send']",
			entity.TargetTitle:    "input[aria-label='Add title']",
			entity.TargetTime:     "input[aria-label='Start time']",
			entity.TargetDuration: "input[aria-label='Duration']",
			entity.TargetSave:     "button[aria-label='Save']",
		},
		Login: LoginFlow{
			LandingPath:      "/mail",
			LoggedInSelector: "div[gh='cm']",
			EmailField:       "input[type='email']",
			EmailNext:        "#identifierNext button",
			PasswordField:    "input[type='password']",
			PasswordNext:     "#passwordNext button",
		},
		ScreenshotDir: "artifacts",
	}, logger)
}
