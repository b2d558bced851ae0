package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"

	"genai-bridge/handler"
	"genai-bridge/internal/config"
	"genai-bridge/internal/integrations/openai"
	"genai-bridge/internal/integrations/paramstore"
	"genai-bridge/internal/integrations/telegram"
	"genai-bridge/internal/memory"
	"genai-bridge/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	_ = godotenv.Load() // local runs only; Lambda supplies the real environment
	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load configuration", err)
	}
	if cfg.Telegram.Token() == "" {
		fatal("telegram bot token is not set (TELEGRAM_BOT_TOKEN or TELEGRAM_TOKEN)", nil)
	}
	if cfg.Telegram.ChatID == "" {
		fatal("TELEGRAM_CHAT_ID is not set", nil)
	}

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		fatal("failed to load AWS config", err)
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		fatal("failed to create SSM client", err)
	}

	var llmOpts []openai.Option
	if cfg.OpenAI.BaseURL != "" {
		llmOpts = append(llmOpts, openai.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	llmClient, err := openai.NewClient(ssmClient, cfg.OpenAI.ParamPrefix, llmOpts...)
	if err != nil {
		fatal("failed to create OpenAI client", err)
	}

	tgClient, err := telegram.NewClient(cfg.Telegram.Token(), cfg.Telegram.ChatID)
	if err != nil {
		fatal("failed to create Telegram client", err)
	}

	// ---- Handler ----
	// The memory store outlives individual requests: it is shared by every
	// invocation this warm context serves and discarded on recycle.
	mem := memory.New(cfg.Memory.MaxTurns)

	svc, err := usecase.NewBridgeService(llmClient, tgClient, mem, cfg.OpenAI.Model)
	if err != nil {
		fatal("failed to create bridge service", err)
	}

	h, err := handler.NewHandler(svc, tgClient)
	if err != nil {
		fatal("failed to create handler", err)
	}

	lambda.Start(h.Handle)
}

func fatal(msg string, err error) {
	if err != nil {
		slog.Error(msg, "err", err)
	} else {
		slog.Error(msg)
	}
	os.Exit(1)
}
