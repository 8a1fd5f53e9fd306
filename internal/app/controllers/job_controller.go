package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/middleware"
)

// JobController handles job posting endpoints
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

// PostJob handles POST /post_job
func (c *JobController) PostJob(ctx *gin.Context) {
	var req dto.PostJobRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Company name and role are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.PostJob(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Job posted successfully!", job).WithRedirect("/post_job"))
}

// ListJobs handles GET /post_job, the admin listing of all postings
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobService.ListJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.JobListResponse{Jobs: jobs}))
}
