package usecase

import (
	"context"
	"errors"
	"strings"

	"genai-bridge/internal/domain"
)

// LLMClient invokes the hosted completion service with a composed prompt.
type LLMClient interface {
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

// Messenger delivers a (possibly chunked) message to the destination chat.
type Messenger interface {
	Send(ctx context.Context, text string) error
}

// Transcript is the rolling conversation memory consumed and extended by the
// pipeline.
type Transcript interface {
	Render() string
	Append(question, answer string)
}

// BridgeService runs the inner request pipeline: render transcript, invoke
// the model, record the turn, deliver the reply.
type BridgeService struct {
	llm       LLMClient
	messenger Messenger
	memory    Transcript
	model     string
}

// RespondOutput carries the generated answer back to the handler.
type RespondOutput struct {
	Answer string
}

func NewBridgeService(llm LLMClient, messenger Messenger, memory Transcript, model string) (*BridgeService, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if messenger == nil {
		return nil, errors.New("usecase: messenger must not be nil")
	}
	if memory == nil {
		return nil, errors.New("usecase: memory must not be nil")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("usecase: model must not be empty")
	}
	return &BridgeService{
		llm:       llm,
		messenger: messenger,
		memory:    memory,
		model:     model,
	}, nil
}

// Respond runs one request through the pipeline. An empty question is passed
// through to the model unchanged. The turn is recorded only after the model
// call succeeds, and before delivery, so a delivery failure still leaves the
// exchange in memory.
func (s *BridgeService) Respond(ctx context.Context, question string) (RespondOutput, error) {
	transcript := s.memory.Render()

	answer, err := s.llm.Chat(ctx, s.model, buildPromptMessages(transcript, question))
	if err != nil {
		return RespondOutput{}, newError(StageInvoke, err)
	}

	s.memory.Append(question, answer)

	if err := s.messenger.Send(ctx, answer); err != nil {
		return RespondOutput{}, newError(StageDeliver, err)
	}

	return RespondOutput{Answer: answer}, nil
}
