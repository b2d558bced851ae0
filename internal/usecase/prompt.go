package usecase

import (
	"strings"

	"genai-bridge/internal/domain"
)

// buildPromptMessages composes the fixed instructions, the rendered
// transcript (when present) and the current question into the message list
// sent to the completion service.
func buildPromptMessages(transcript, question string) []domain.ChatMessage {
	messages := []domain.ChatMessage{
		{Role: "system", Content: buildInstructionsPrompt()},
	}
	if strings.TrimSpace(transcript) != "" {
		messages = append(messages, domain.ChatMessage{
			Role:    "system",
			Content: "Conversation so far:\n" + transcript,
		})
	}
	messages = append(messages, domain.ChatMessage{
		Role:    "user",
		Content: question,
	})
	return messages
}

func buildInstructionsPrompt() string {
	return strings.Join([]string{
		"You are a helpful assistant replying inside a Telegram chat.",
		"",
		"Behavior Rules:",
		"1) Answer only the current user message.",
		"2) Use the conversation so far, when provided, to stay consistent with earlier turns.",
		"3) Reply in plain text suitable for a chat message.",
		"4) If the user message is empty, ask what they would like to talk about.",
	}, "\n")
}
