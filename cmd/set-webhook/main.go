// One-shot webhook registration: invoked once at deployment time with the
// bridge's public function URL, it points the bot's webhook at that URL.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"genai-bridge/internal/config"
	"genai-bridge/internal/integrations/telegram"
)

// registrationEvent is the custom-resource payload the deployment sends; the
// function URL is the only property the registration needs.
type registrationEvent struct {
	ResourceProperties struct {
		FunctionURL string `json:"FunctionUrl"`
	} `json:"ResourceProperties"`
}

type webhookRegistrar interface {
	RegisterWebhook(ctx context.Context, webhookURL string) (string, error)
}

type registrationHandler struct {
	registrar webhookRegistrar
}

func (h *registrationHandler) Handle(ctx context.Context, raw json.RawMessage) (events.LambdaFunctionURLResponse, error) {
	var event registrationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		slog.Error("failed to parse registration event", "err", err)
		return failure(err.Error()), nil
	}

	body, err := h.registrar.RegisterWebhook(ctx, event.ResourceProperties.FunctionURL)
	if err != nil {
		slog.Error("webhook registration failed", "err", err)
		return failure(err.Error()), nil
	}

	slog.Info("webhook registered", "url", event.ResourceProperties.FunctionURL)
	return events.LambdaFunctionURLResponse{
		StatusCode: http.StatusOK,
		Body:       body,
	}, nil
}

func failure(text string) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       text,
	}
}

func main() {
	_ = godotenv.Load() // local runs only; Lambda supplies the real environment
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	if cfg.Telegram.Token() == "" {
		slog.Error("telegram bot token is not set (TELEGRAM_BOT_TOKEN or TELEGRAM_TOKEN)")
		os.Exit(1)
	}

	tgClient, err := telegram.NewClient(cfg.Telegram.Token(), "")
	if err != nil {
		slog.Error("failed to create Telegram client", "err", err)
		os.Exit(1)
	}

	h := &registrationHandler{registrar: tgClient}
	lambda.Start(h.Handle)
}
