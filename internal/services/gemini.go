package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/hr-toolkit/internal/logger"
)

const (
	defaultModel      = "gemini-2.5-flash"
	defaultMaxLogRune = 200
)

// ErrModelCall wraps every failure of the remote model round trip.
var ErrModelCall = errors.New("model call failed")

// ModelClient is the only contract the pipelines need from a language model.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	models    contentGenerator
	modelName string
	logger    *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiClient(client.Models, model, log), nil
}

func newGeminiClient(models contentGenerator, model string, log *zap.Logger) *GeminiClient {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiClient{
		models:    models,
		modelName: model,
		logger:    logger.OrNop(log).With(zap.String("ai_model", model)),
	}
}

// Generate sends prompt in a single round trip and returns the reply text.
// There is no retry: a failure fails the whole analysis.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, defaultMaxLogRune)),
	)

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelCall, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrModelCall)
	}

	// Blank text is returned as is; callers decide what an empty reply means.
	text := resp.Text()

	g.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", logger.TruncateForLog(text, defaultMaxLogRune)),
	)

	return text, nil
}

func (g *GeminiClient) Model() string {
	return g.modelName
}
