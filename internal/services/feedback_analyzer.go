package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hr-toolkit/internal/logger"
	"alfredoptarigan/hr-toolkit/internal/models"
)

type FeedbackAnalyzer struct {
	promptBuilder *PromptBuilder
	model         ModelClient
	logger        *zap.Logger
}

func NewFeedbackAnalyzer(model ModelClient, log *zap.Logger) *FeedbackAnalyzer {
	return &FeedbackAnalyzer{
		promptBuilder: NewPromptBuilder(),
		model:         model,
		logger:        logger.OrNop(log),
	}
}

// Analyze estimates sentiment and attrition risk for a piece of employee
// feedback. Blank feedback short-circuits without calling the model. A reply
// that cannot be parsed becomes an error record; only the model call itself
// can fail.
func (f *FeedbackAnalyzer) Analyze(ctx context.Context, feedback string) (*models.FeedbackOutcome, error) {
	requestID := uuid.NewString()
	log := logger.ForRequest(f.logger, "feedback", requestID)

	if strings.TrimSpace(feedback) == "" {
		log.Info("feedback is empty, skipping model call")
		return &models.FeedbackOutcome{
			RequestID: requestID,
			Result: &models.FeedbackAnalysis{
				Sentiment:       models.SentimentNeutral,
				RiskScore:       0,
				RiskLevel:       models.RiskUnknown,
				Recommendations: []string{},
			},
			Error: &models.AnalysisError{
				Kind:   models.ErrorKindEmptyInput,
				Detail: "feedback text is empty",
			},
		}, nil
	}

	log.Debug("feedback prompt sent")
	raw, err := f.model.Generate(ctx, f.promptBuilder.BuildFeedbackPrompt(feedback))
	if err != nil {
		log.Error("feedback analysis failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate feedback analysis: %w", err)
	}

	verdict := ParseFeedbackVerdict(raw)
	if verdict.Err != nil {
		log.Warn("feedback reply could not be normalized",
			zap.String("kind", string(verdict.Err.Kind)),
			zap.String("reply_preview", logger.TruncateForLog(raw, defaultMaxLogRune)),
		)
		return &models.FeedbackOutcome{RequestID: requestID, Error: verdict.Err}, nil
	}

	if len(verdict.Analysis.Issues) > 0 {
		log.Warn("feedback reply corrected", zap.Strings("issues", verdict.Analysis.Issues))
	}
	log.Info("feedback analysis completed",
		zap.String("sentiment", string(verdict.Analysis.Sentiment)),
		zap.Int("risk_score", verdict.Analysis.RiskScore),
	)

	return &models.FeedbackOutcome{RequestID: requestID, Result: verdict.Analysis}, nil
}
