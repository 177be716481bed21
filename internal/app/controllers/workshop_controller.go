package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/services"
)

// WorkshopController handles the workshop catalog endpoint
type WorkshopController struct {
	workshopService *services.WorkshopService
	logger          zerolog.Logger
}

// NewWorkshopController creates a new WorkshopController
func NewWorkshopController(workshopService *services.WorkshopService, logger zerolog.Logger) *WorkshopController {
	return &WorkshopController{
		workshopService: workshopService,
		logger:          logger,
	}
}

// ListWorkshops returns the workshop catalog
// @Summary List workshops
// @Tags workshops
// @Produce json
// @Success 200 {object} dto.WorkshopListResponse "Workshop catalog"
// @Router /workshops [get]
func (c *WorkshopController) ListWorkshops(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.workshopService.ListWorkshops(ctx.Request.Context()))
}
