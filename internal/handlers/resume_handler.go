package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/hr-toolkit/internal/logger"
	"alfredoptarigan/hr-toolkit/internal/models"
	"alfredoptarigan/hr-toolkit/internal/services"
)

type resumeAnalyzer interface {
	Analyze(ctx context.Context, doc services.Document, jobDescription string) (*models.ResumeOutcome, error)
}

type jobFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type ResumeHandler struct {
	screener       resumeAnalyzer
	storageService services.StorageService
	fetcher        jobFetcher
	validate       *validator.Validate
	maxFileSize    int64
	logger         *zap.Logger
}

func NewResumeHandler(
	screener resumeAnalyzer,
	storageService services.StorageService,
	fetcher jobFetcher,
	maxFileSize int64,
	log *zap.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		screener:       screener,
		storageService: storageService,
		fetcher:        fetcher,
		validate:       validator.New(),
		maxFileSize:    maxFileSize,
		logger:         logger.OrNop(log),
	}
}

// HandleAnalyze handles POST /resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	ctx := c.UserContext()

	jobDescription := req.JobDescription
	switch {
	case strings.TrimSpace(jobDescription) != "":
	case req.JobDescriptionURL != "":
		jobDescription, err = h.fetcher.Fetch(ctx, req.JobDescriptionURL)
		if err != nil {
			h.logger.Warn("job posting fetch failed", zap.String("url", req.JobDescriptionURL), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to fetch job description",
			})
		}
	default:
		jobDescription = services.DefaultJobDescription
	}

	filename, filePath, err := h.storageService.SaveFile(resumeFile, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			h.logger.Warn("failed to remove spooled resume", zap.String("file", filename), zap.Error(err))
		}
	}()

	outcome, err := h.screener.Analyze(ctx, services.Document{Path: filePath}, jobDescription)
	if err != nil {
		return analysisFailure(c, err)
	}

	return c.JSON(outcome)
}

func analysisFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrScoreNotFound):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Model reply did not contain a score",
		})
	case errors.Is(err, services.ErrModelCall):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Language model request failed",
		})
	default:
		return err
	}
}
