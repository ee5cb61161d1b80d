package domain

// Message roles as understood by OpenAI-compatible chat completion APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged entry of a conversation. The same shape is
// stored in per-chat history and sent on the wire to the completion service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
