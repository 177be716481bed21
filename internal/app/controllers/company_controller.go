package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/services"
	"github.com/joinwork/joinwork/internal/middleware"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
)

// CompanyController handles company profile endpoints
type CompanyController struct {
	companyService *services.CompanyService
	logger         zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		logger:         logger,
	}
}

// GetCompany returns a company profile
// @Summary Get company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company "Company"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	companyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetCompany(ctx.Request.Context(), companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}

// GetByUser returns the caller's company profile, creating one when none
// exists yet.
// @Summary Get company profile by user
// @Description Returns the caller's company profile, creating a minimal one named after the account when missing.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.Company "Company profile"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Router /companies/user/{userId} [get]
func (c *CompanyController) GetByUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	requestingUserID, _ := middleware.UserID(ctx)
	if userID != requestingUserID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	company, err := c.companyService.GetOrCreateByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}
