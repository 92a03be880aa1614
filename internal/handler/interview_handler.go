package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
	"interview-prep/internal/validation"
)

// InterviewHandler handles interview HTTP requests
type InterviewHandler struct {
	interviewService service.InterviewService
	validator        *validation.Validator
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(interviewService service.InterviewService, validator *validation.Validator) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		validator:        validator,
	}
}

// Start godoc
// @Summary Start a new interview session
// @Description Generates questions from the user's latest resume and opens a session
// @Tags interview
// @Security ApiKeyAuth
// @Produce json
// @Success 201 {object} dto.StartInterviewResponse
// @Failure 400 {object} middleware.ErrorResponse "No resume uploaded yet"
// @Failure 401 {object} middleware.ErrorResponse
// @Router /interview/start [post]
func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.interviewService.StartInterview(c.Context(), userID)
	if err != nil {
		return err
	}

	logger.Get().Info("Interview started",
		zap.String("userID", userID),
		zap.String("interviewID", resp.InterviewID),
	)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Submit godoc
// @Summary Submit interview answers
// @Description Scores the submitted answers and completes the session
// @Tags interview
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitInterviewRequest true "Interview answers"
// @Success 200 {object} dto.SubmitInterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/submit [post]
func (h *InterviewHandler) Submit(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.SubmitInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSubmitInterviewRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.interviewService.SubmitInterview(c.Context(), userID, req)
	if err != nil {
		return err
	}

	logger.Get().Info("Interview submitted",
		zap.String("userID", userID),
		zap.String("interviewID", req.InterviewID),
		zap.Int("overallScore", resp.OverallScore),
	)
	return c.JSON(resp)
}
