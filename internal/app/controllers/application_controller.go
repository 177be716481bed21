package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/services"
	"github.com/joinwork/joinwork/internal/middleware"
)

// ApplicationController handles application status endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// UpdateStatus decides on an application
// @Summary Update application status
// @Description Sets an application's status. The caller must own the company behind the application's job.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} models.Application "Updated application"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 403 {object} dto.ErrorResponse "Application belongs to another company's job"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	applicationID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid status payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	application, err := c.applicationService.UpdateStatus(ctx.Request.Context(), applicationID, userID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("applicationID", application.ID).
		Str("status", string(application.Status)).
		Msg("Application status updated")

	ctx.JSON(http.StatusOK, application)
}
