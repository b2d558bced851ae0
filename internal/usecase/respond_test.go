package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"genai-bridge/internal/domain"
)

type mockLLM struct {
	answer   string
	err      error
	captured []domain.ChatMessage
	model    string
	calls    int
}

func (m *mockLLM) Chat(_ context.Context, model string, msgs []domain.ChatMessage) (string, error) {
	m.calls++
	m.model = model
	m.captured = msgs
	return m.answer, m.err
}

type mockMessenger struct {
	sent  []string
	err   error
	calls int
}

func (m *mockMessenger) Send(_ context.Context, text string) error {
	m.calls++
	m.sent = append(m.sent, text)
	return m.err
}

type mockTranscript struct {
	rendered  string
	appendedQ string
	appendedA string
	appends   int
}

func (m *mockTranscript) Render() string { return m.rendered }

func (m *mockTranscript) Append(question, answer string) {
	m.appends++
	m.appendedQ = question
	m.appendedA = answer
}

func newTestService(t *testing.T, llm LLMClient, msgr Messenger, mem Transcript) *BridgeService {
	t.Helper()
	svc, err := NewBridgeService(llm, msgr, mem, "gpt-4o-mini")
	require.NoError(t, err)
	return svc
}

func expectStageError(t *testing.T, err error, stage Stage) {
	t.Helper()
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, stage, ucErr.Stage)
}

func TestNewBridgeService_ValidatesDependencies(t *testing.T) {
	_, err := NewBridgeService(nil, &mockMessenger{}, &mockTranscript{}, "m")
	require.Error(t, err)

	_, err = NewBridgeService(&mockLLM{}, nil, &mockTranscript{}, "m")
	require.Error(t, err)

	_, err = NewBridgeService(&mockLLM{}, &mockMessenger{}, nil, "m")
	require.Error(t, err)

	_, err = NewBridgeService(&mockLLM{}, &mockMessenger{}, &mockTranscript{}, " ")
	require.Error(t, err)
}

func TestRespond_HappyPath(t *testing.T) {
	llm := &mockLLM{answer: "Hi there!"}
	msgr := &mockMessenger{}
	mem := &mockTranscript{}
	svc := newTestService(t, llm, msgr, mem)

	out, err := svc.Respond(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hi there!", out.Answer)
	require.Equal(t, "gpt-4o-mini", llm.model)
	require.Equal(t, []string{"Hi there!"}, msgr.sent)
	require.Equal(t, 1, mem.appends)
	require.Equal(t, "Hello", mem.appendedQ)
	require.Equal(t, "Hi there!", mem.appendedA)
}

func TestRespond_TranscriptFlowsIntoPrompt(t *testing.T) {
	llm := &mockLLM{answer: "ok"}
	mem := &mockTranscript{rendered: "User: earlier\nAssistant: before\n"}
	svc := newTestService(t, llm, &mockMessenger{}, mem)

	_, err := svc.Respond(context.Background(), "now?")
	require.NoError(t, err)
	require.Len(t, llm.captured, 3)
	require.Equal(t, "system", llm.captured[1].Role)
	require.Contains(t, llm.captured[1].Content, "User: earlier")
	require.Equal(t, "now?", llm.captured[2].Content)
}

func TestRespond_EmptyQuestionPassesThrough(t *testing.T) {
	llm := &mockLLM{answer: "What would you like to talk about?"}
	svc := newTestService(t, llm, &mockMessenger{}, &mockTranscript{})

	_, err := svc.Respond(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, llm.calls)
	last := llm.captured[len(llm.captured)-1]
	require.Equal(t, "user", last.Role)
	require.Equal(t, "", last.Content)
}

func TestRespond_ModelError_NoRecordNoDelivery(t *testing.T) {
	llm := &mockLLM{err: errors.New("upstream timeout")}
	msgr := &mockMessenger{}
	mem := &mockTranscript{}
	svc := newTestService(t, llm, msgr, mem)

	_, err := svc.Respond(context.Background(), "Hello")
	expectStageError(t, err, StageInvoke)
	require.Zero(t, mem.appends)
	require.Zero(t, msgr.calls)
	// The root cause keeps its original text for the user notification.
	require.EqualError(t, errors.Unwrap(err), "upstream timeout")
}

func TestRespond_DeliveryError_TurnStillRecorded(t *testing.T) {
	llm := &mockLLM{answer: "answer"}
	msgr := &mockMessenger{err: errors.New("telegram unreachable")}
	mem := &mockTranscript{}
	svc := newTestService(t, llm, msgr, mem)

	_, err := svc.Respond(context.Background(), "Hello")
	expectStageError(t, err, StageDeliver)
	require.Equal(t, 1, mem.appends)
}
