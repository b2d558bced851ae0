// Package handler adapts Lambda function URL events to the bridge pipeline
// and owns the failure funnel: every error, whichever stage raised it, is
// converted to text exactly once, best-effort delivered to the chat, and
// returned as a 500 response.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"genai-bridge/internal/usecase"
)

// Responder runs the inner pipeline for one extracted question.
type Responder interface {
	Respond(ctx context.Context, question string) (usecase.RespondOutput, error)
}

// Notifier delivers the failure text to the destination chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Handler struct {
	svc      Responder
	notifier Notifier
}

func NewHandler(svc Responder, notifier Notifier) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("handler: responder must not be nil")
	}
	if notifier == nil {
		return nil, errors.New("handler: notifier must not be nil")
	}
	return &Handler{svc: svc, notifier: notifier}, nil
}

// Handle serves one webhook invocation. It never returns a non-nil error:
// the caller always receives a well-formed 200 or 500 response.
func (h *Handler) Handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	corrID := correlationID(event.Headers)

	question, err := decodeUpdate(event)
	if err != nil {
		return h.fail(ctx, corrID, err), nil
	}

	out, err := h.svc.Respond(ctx, question)
	if err != nil {
		return h.fail(ctx, corrID, err), nil
	}

	return respond(http.StatusOK, out.Answer, corrID), nil
}

// fail notifies the chat with the root-cause text and encodes the failure
// response. A secondary failure while delivering the notification is logged
// and swallowed; the original failure still determines the response.
func (h *Handler) fail(ctx context.Context, corrID string, err error) events.LambdaFunctionURLResponse {
	text := rootCause(err).Error()
	if notifyErr := h.notifier.Send(ctx, text); notifyErr != nil {
		slog.Error("error notification delivery failed", "correlation_id", corrID, "err", notifyErr)
	}
	slog.Error("pipeline failed", "correlation_id", corrID, "err", err)
	return respond(http.StatusInternalServerError, text, corrID)
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, "x-correlation-id") && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// rootCause unwraps to the innermost error so the user-visible text matches
// the original failure description rather than the wrapping chain.
func rootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
