package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
)

// UserHandler handles profile HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Applies a partial update, only the provided fields change
// @Tags profile
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	profile, err := h.userService.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return err
	}

	logger.Get().Info("Profile updated", zap.String("userID", userID))
	return c.JSON(profile)
}
