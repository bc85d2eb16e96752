package webmail

import (
	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

// NewOutlook builds the Outlook provider.
func NewOutlook(logger output.LoggerPort) *Provider {
	return New(Config{
		Descriptor: entity.Descriptor{
			Name:        "outlook",
			Description: "Outlook web interface",
			BaseURL:     "https://outlook.live.com",
			Capabilities: []entity.Action{
				entity.ActionSendEmail,
			},
		},
		Views: Views{
			entity.TargetCompose: "/mail/0/deeplink/compose",
		},
		Selectors: Selectors{
			entity.TargetTo:      "div[aria-label='To'] input",
			entity.TargetSubject: "input[aria-label='Add a subject']",
			entity.TargetBody:    "div[aria-label='Message body']",
			entity.TargetSend:    "button[aria-label='Send']",
		},
		Login: LoginFlow{
			LandingPath:      "/mail",
			LoggedInSelector: "button[aria-label='New mail']",
			EmailField:       "input[type='email']",
			EmailNext:        "input[type='submit']",
			PasswordField:    "input[type='password']",
			PasswordNext:     "button[type='submit']",
		},
		ScreenshotDir: "artifacts",
	}, logger)
}
