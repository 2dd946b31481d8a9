package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	prompt string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeminiClientGenerate(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	models := &fakeModels{resp: textResponse(`{"match_score": 80}`)}
	client := newGeminiClient(models, "", zap.New(core))

	text, err := client.Generate(context.Background(), "score this resume")
	require.NoError(t, err)

	assert.Equal(t, `{"match_score": 80}`, text)
	assert.Equal(t, 1, models.calls)
	assert.Equal(t, defaultModel, models.model)
	assert.Equal(t, "score this resume", models.prompt)
	assert.Equal(t, defaultModel, client.Model())
	assert.Len(t, observed.FilterMessage("gemini generate content request").All(), 1)
	assert.Len(t, observed.FilterMessage("gemini generate content response").All(), 1)
}

func TestGeminiClientDoesNotRetry(t *testing.T) {
	models := &fakeModels{err: errors.New("unavailable")}
	client := newGeminiClient(models, "gemini-test", nil)

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelCall)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Equal(t, 1, models.calls)
}

func TestGeminiClientEmptyResponse(t *testing.T) {
	client := newGeminiClient(&fakeModels{resp: &genai.GenerateContentResponse{}}, "gemini-test", nil)
	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrModelCall)

	client = newGeminiClient(&fakeModels{}, "gemini-test", nil)
	_, err = client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrModelCall)
}

func TestGeminiClientBlankTextIsNotAnError(t *testing.T) {
	client := newGeminiClient(&fakeModels{resp: textResponse("   \n")}, "gemini-test", nil)

	text, err := client.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "   \n", text)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "  ", "", nil)
	require.Error(t, err)
}
