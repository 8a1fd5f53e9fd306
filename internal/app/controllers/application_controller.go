package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/middleware"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// ApplicationController handles application submission and tracking
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

// Apply handles GET /apply_job/:jobId for the authenticated student. A
// duplicate application is a warning, not a failure page.
func (c *ApplicationController) Apply(ctx *gin.Context) {
	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Please log in first")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail).WithRedirect("/login"))
		return
	}

	jobID, err := strconv.ParseInt(ctx.Param("jobId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), accountID, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyApplied) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "You already applied for this job!")).
				WithRedirect("/student_dashboard"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Application submitted successfully!", application).
		WithRedirect("/student_dashboard"))
}

// TrackApplications handles GET /track_applications, the admin listing
func (c *ApplicationController) TrackApplications(ctx *gin.Context) {
	applications, err := c.applicationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{"applications": applications}))
}

// UpdateStatus handles POST /track_applications. The status commit and the
// notification attempt are reported together in one message.
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please provide application ID and status!")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.applicationService.UpdateStatus(ctx.Request.Context(), req.ApplicationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Application status updated to '%s' and email sent to student!", result.Status)
	if !result.EmailSent {
		message = fmt.Sprintf("Status updated to '%s' but email notification failed: %s", result.Status, result.EmailError)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, result).WithRedirect("/track_applications"))
}
