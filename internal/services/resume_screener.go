package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hr-toolkit/internal/logger"
	"alfredoptarigan/hr-toolkit/internal/models"
)

type ResumeScreener struct {
	extractor     TextExtractor
	features      *FeatureExtractor
	scorer        *SimilarityScorer
	promptBuilder *PromptBuilder
	model         ModelClient
	logger        *zap.Logger
}

func NewResumeScreener(lexicon *Lexicon, extractor TextExtractor, model ModelClient, log *zap.Logger) *ResumeScreener {
	if lexicon == nil {
		lexicon = NewLexicon()
	}
	if extractor == nil {
		extractor = NewTextExtractor()
	}

	return &ResumeScreener{
		extractor:     extractor,
		features:      NewFeatureExtractor(lexicon),
		scorer:        NewSimilarityScorer(lexicon),
		promptBuilder: NewPromptBuilder(),
		model:         model,
		logger:        logger.OrNop(log),
	}
}

// Analyze scores a resume against a job description. Extraction failures
// produce a fixed "cannot analyze" outcome; model call and score parsing
// failures are returned as errors.
func (s *ResumeScreener) Analyze(ctx context.Context, doc Document, jobDescription string) (*models.ResumeOutcome, error) {
	requestID := uuid.NewString()
	log := logger.ForRequest(s.logger, "resume", requestID)

	resumeText, err := s.extractor.Extract(doc)
	if err != nil {
		log.Warn("resume text extraction failed", zap.Error(err))
		return cannotAnalyzeResume(requestID, err), nil
	}

	signals := s.features.Extract(resumeText)
	required := s.features.ExtractSkills(jobDescription)
	matched, missing := CompareSkills(signals.Skills, required)
	similarity := s.scorer.Score(resumeText, jobDescription)

	log.Info("resume features extracted",
		zap.Int("resume_length", len(resumeText)),
		zap.Strings("skills_matched", matched),
		zap.Strings("skills_missing", missing),
		zap.Float64("similarity", similarity),
	)

	narrative, err := s.model.Generate(ctx, s.promptBuilder.BuildResumeEvaluationPrompt(resumeText, jobDescription, matched, missing))
	if err != nil {
		log.Error("resume evaluation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate resume evaluation: %w", err)
	}

	scoreReply, err := s.model.Generate(ctx, s.promptBuilder.BuildResumeScorePrompt(resumeText, jobDescription, matched, missing))
	if err != nil {
		log.Error("resume scoring failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate resume score: %w", err)
	}

	matchScore, err := ExtractScore(scoreReply)
	if err != nil {
		log.Error("resume score reply has no score",
			zap.String("reply_preview", logger.TruncateForLog(scoreReply, defaultMaxLogRune)),
		)
		return nil, fmt.Errorf("failed to parse resume score: %w", err)
	}

	log.Info("resume analysis completed", zap.Int("match_score", matchScore))

	return &models.ResumeOutcome{
		RequestID: requestID,
		Result: &models.ResumeAnalysis{
			MatchScore:      matchScore,
			SkillsMatched:   matched,
			SkillsMissing:   missing,
			ExperienceYears: signals.ExperienceYears,
			Education:       signals.Education,
			Similarity:      similarity,
			Narrative:       narrative,
		},
	}, nil
}

func cannotAnalyzeResume(requestID string, cause error) *models.ResumeOutcome {
	return &models.ResumeOutcome{
		RequestID: requestID,
		Result: &models.ResumeAnalysis{
			MatchScore:    0,
			SkillsMatched: []string{},
			SkillsMissing: []string{},
			Education:     []string{},
			Narrative:     "Cannot analyze - resume text extraction failed",
		},
		Error: &models.AnalysisError{
			Kind:   models.ErrorKindExtraction,
			Detail: fmt.Sprintf("could not extract text from the resume: %v", cause),
		},
	}
}
