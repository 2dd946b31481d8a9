package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-toolkit/internal/models"
)

type feedbackAnalyzer interface {
	Analyze(ctx context.Context, feedback string) (*models.FeedbackOutcome, error)
}

type FeedbackHandler struct {
	analyzer feedbackAnalyzer
	validate *validator.Validate
}

func NewFeedbackHandler(analyzer feedbackAnalyzer) *FeedbackHandler {
	return &FeedbackHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

// HandleAnalyze handles POST /feedback/analyze. Empty feedback is not a
// client error: it yields the fixed neutral result.
func (h *FeedbackHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.FeedbackRequest
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

	outcome, err := h.analyzer.Analyze(c.UserContext(), req.Feedback)
	if err != nil {
		return analysisFailure(c, err)
	}

	return c.JSON(outcome)
}
