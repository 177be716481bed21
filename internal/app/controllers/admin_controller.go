package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
)

// AdminController exposes the development database dump. It reads the
// repositories directly instead of going through the services.
type AdminController struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(repos *repositories.Repositories, logger zerolog.Logger) *AdminController {
	return &AdminController{
		repos:  repos,
		logger: logger,
	}
}

// Health reports service liveness
// @Summary Health check
// @Tags admin
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is up"
// @Router /health [get]
func (c *AdminController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Message: "JoinWork API is running",
	})
}

// DumpDatabase returns every collection with counts
// @Summary Dump database
// @Description Development endpoint returning the full contents of every collection. Password hashes are never serialized.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DatabaseDumpResponse "Full database contents"
// @Router /admin/database [get]
func (c *AdminController) DumpDatabase(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	dump := dto.DatabaseDump{
		Users:        c.repos.UserRepository.All(rctx),
		Graduates:    c.repos.GraduateRepository.All(rctx),
		Companies:    c.repos.CompanyRepository.All(rctx),
		Jobs:         c.repos.JobRepository.All(rctx),
		Applications: c.repos.ApplicationRepository.All(rctx),
		Workshops:    c.repos.WorkshopRepository.All(rctx),
	}
	dump.Stats = dto.DatabaseStats{
		TotalUsers:        len(dump.Users),
		TotalGraduates:    len(dump.Graduates),
		TotalCompanies:    len(dump.Companies),
		TotalJobs:         len(dump.Jobs),
		TotalApplications: len(dump.Applications),
		TotalWorkshops:    len(dump.Workshops),
	}

	ctx.JSON(http.StatusOK, dto.DatabaseDumpResponse{Error: false, Data: dump})
}
