package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/services"
	"github.com/joinwork/joinwork/internal/middleware"
)

// GraduateController handles graduate profile endpoints
type GraduateController struct {
	graduateService *services.GraduateService
	logger          zerolog.Logger
}

// NewGraduateController creates a new GraduateController
func NewGraduateController(graduateService *services.GraduateService, logger zerolog.Logger) *GraduateController {
	return &GraduateController{
		graduateService: graduateService,
		logger:          logger,
	}
}

// GetGraduate returns a graduate profile
// @Summary Get graduate profile
// @Description Returns a graduate with the owning account's name and email
// @Tags graduates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Success 200 {object} dto.GraduateProfileView "Graduate profile"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Router /graduates/{id} [get]
func (c *GraduateController) GetGraduate(ctx *gin.Context) {
	graduateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	view, err := c.graduateService.GetGraduate(ctx.Request.Context(), graduateID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// GetByUser returns the graduate profile owned by a user
// @Summary Get graduate profile by user
// @Description Returns the caller's graduate profile. Only the owner may read it.
// @Tags graduates
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.GraduateProfileView "Graduate profile"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Router /graduates/user/{userId} [get]
func (c *GraduateController) GetByUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	requestingUserID, _ := middleware.UserID(ctx)

	view, err := c.graduateService.GetByUser(ctx.Request.Context(), userID, requestingUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CreateProfile creates the caller's graduate profile
// @Summary Create graduate profile
// @Description Creates the graduate profile for the authenticated account. Rejected when one already exists.
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGraduateRequest true "Profile fields"
// @Success 201 {object} models.Graduate "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Duplicate profile or invalid card number"
// @Router /graduates [post]
func (c *GraduateController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateGraduateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid graduate profile payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	graduate, err := c.graduateService.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("graduateID", graduate.ID).Int64("userID", userID).Msg("Graduate profile created")
	ctx.JSON(http.StatusCreated, graduate)
}

// UpdateProfile updates a graduate profile
// @Summary Update graduate profile
// @Description Merges the sent fields into the profile. Only the owner may update.
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Param request body dto.UpdateGraduateRequest true "Fields to change"
// @Success 200 {object} models.Graduate "Updated profile"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Router /graduates/{id} [put]
func (c *GraduateController) UpdateProfile(ctx *gin.Context) {
	graduateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGraduateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid graduate update payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	graduate, err := c.graduateService.UpdateProfile(ctx.Request.Context(), graduateID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, graduate)
}

// pathID parses a numeric path parameter, writing a 400 response when it
// is not a valid ID.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
