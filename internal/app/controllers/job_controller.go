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

// JobController handles job posting and application endpoints
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobs returns the public job listing
// @Summary List jobs
// @Description Returns jobs, optionally filtered by company_id and status. Each job carries its company's display name.
// @Tags jobs
// @Produce json
// @Param company_id query int false "Filter by company ID"
// @Param status query string false "Filter by status (active or closed)"
// @Success 200 {object} dto.JobListResponse "Job listing"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var companyID *int64
	if raw := ctx.Query("company_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company_id filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		companyID = &id
	}

	var status *string
	if raw := ctx.Query("status"); raw != "" {
		status = &raw
	}

	ctx.JSON(http.StatusOK, c.jobService.ListJobs(ctx.Request.Context(), companyID, status))
}

// GetJob returns a single job
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobView "Job with company name"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	jobID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	view, err := c.jobService.GetJob(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CreateJob posts a new job
// @Summary Post a job
// @Description Creates an active job under the caller's company, creating the company profile first when missing.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job fields"
// @Success 201 {object} models.Job "Job created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a company"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	job, err := c.jobService.CreateJob(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobID", job.ID).Int64("companyID", job.CompanyID).Msg("Job posted")
	ctx.JSON(http.StatusCreated, job)
}

// UpdateJob updates a job posting
// @Summary Update job
// @Description Merges the sent fields into a job owned by the caller's company
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.Job "Updated job"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 403 {object} dto.ErrorResponse "Job belongs to another company"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	jobID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job update payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), jobID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// DeleteJob removes a job posting
// @Summary Delete job
// @Description Deletes a job owned by the caller's company. Existing applications are kept.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.SuccessResponse "Job deleted"
// @Failure 403 {object} dto.ErrorResponse "Job belongs to another company"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	jobID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(ctx)

	if err := c.jobService.DeleteJob(ctx.Request.Context(), jobID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobID", jobID).Msg("Job deleted")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Job deleted successfully"})
}

// ListApplications returns the applications for a job
// @Summary List job applications
// @Description Returns the applications for a job owned by the caller's company, each with the applying graduate's identity.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.ApplicationListResponse "Applications"
// @Failure 403 {object} dto.ErrorResponse "Job belongs to another company"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (c *JobController) ListApplications(ctx *gin.Context) {
	jobID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(ctx)

	listing, err := c.jobService.ListJobApplications(ctx.Request.Context(), jobID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listing)
}

// Apply submits an application for a job
// @Summary Apply for a job
// @Description Submits a pending application for the caller's graduate profile, creating an empty profile when missing. One application per job.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyRequest true "Cover letter"
// @Success 201 {object} models.Application "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Already applied"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	jobID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		c.logger.Warn().Err(err).Msg("Invalid application payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		detail = detail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	userID, _ := middleware.UserID(ctx)

	application, err := c.jobService.Apply(ctx.Request.Context(), jobID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("applicationID", application.ID).
		Int64("jobID", jobID).
		Int64("graduateID", application.GraduateID).
		Msg("Application submitted")

	ctx.JSON(http.StatusCreated, application)
}
