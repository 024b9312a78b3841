package assistant

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	SourceAI       = "ai"
	SourceFallback = "fallback"
)

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required,max=4000"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required,max=2000"`
	History []ChatMessage `json:"history" binding:"max=20,dive"`
}

type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
