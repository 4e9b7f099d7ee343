package gemini

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

type aiClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *aiClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) ai.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("ai_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return &aiClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
	}
	if c != nil {
		geminiClient = &aiClient{client: c, modelName: modelName}
		logger.Info("Gemini client created", "model", modelName)
		go closeClient(ctx, geminiClient)
	}
}

func (c *aiClient) Analyze(ctx context.Context, text string, filename string) (*ai.Insights, error) {
	logger.With("traceId", ctx.Value("traceId"))

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: ai.SystemInstruction()}},
		},
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(ai.BuildPrompt(text, filename)),
		contentConfig,
	)
	if err != nil {
		logger.Error("Gemini analyze call failed", "error", err)
		return nil, err
	}
	if result == nil {
		return nil, errors.New("empty gemini response")
	}
	return ai.DecodeInsights(result.Text())
}

func closeClient(ctx context.Context, c *aiClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	c.client = nil
	c.modelName = ""
}
