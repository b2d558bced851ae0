package domain

// ChatMessage is the provider-agnostic prompt message shape shared by the
// pipeline and the completion client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
