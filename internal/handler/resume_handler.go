package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
)

// maxResumeSize bounds the uploaded file to 10 MiB.
const maxResumeSize = 10 << 20

// ResumeHandler handles resume HTTP requests
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler instance
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Upload godoc
// @Summary Upload and analyze a resume
// @Description Accepts a DOCX file under the "resume" form field, extracts its text and analyzes it
// @Tags resume
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (DOCX)"
// @Success 201 {object} dto.UploadResumeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return domain.NewInvalidInputError("No resume file provided")
	}
	if fileHeader.Size > maxResumeSize {
		return domain.NewInvalidInputError("Resume file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.resumeService.Upload(c.Context(), userID, data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		return err
	}

	logger.Get().Info("Resume uploaded",
		zap.String("userID", userID),
		zap.String("fileName", fileHeader.Filename),
	)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetLatest godoc
// @Summary Get the authenticated user's latest resume
// @Tags resume
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ResumeResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /resume [get]
func (h *ResumeHandler) GetLatest(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resume, err := h.resumeService.GetLatest(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resume)
}
