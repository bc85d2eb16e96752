package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one chat turn exchanged with the reasoning backend.
type Message struct {
	Role    MessageRole
	Content string
}
