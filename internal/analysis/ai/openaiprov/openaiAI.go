package openaiprov

import (
	"errors"
	"sync"

	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/customHttpClient"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

// Alternate provider behind the same port as Gemini, selected with
// AI_PROVIDER=openai.

type aiClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *aiClient
var once sync.Once

func GetOpenAIClient(modelName string, apikey string) ai.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("ai_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is empty")
			return
		}
		openaiClient = &aiClient{
			client: openai.NewClient(
				option.WithAPIKey(apikey),
				option.WithHTTPClient(customHttpClient.PooledClient()),
			),
			modelName: modelName,
		}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *aiClient) Analyze(ctx context.Context, text string, filename string) (*ai.Insights, error) {
	logger.With("traceId", ctx.Value("traceId"))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(ai.SystemInstruction()),
			openai.UserMessage(ai.BuildPrompt(text, filename)),
		},
	})
	if err != nil {
		logger.Error("OpenAI analyze call failed", "error", err)
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("empty openai response")
	}
	return ai.DecodeInsights(completion.Choices[0].Message.Content)
}
