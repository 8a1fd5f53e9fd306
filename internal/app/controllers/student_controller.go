package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/middleware"
	"github.com/campusworks/placementcell/internal/pkg/filestorage"
)

// StudentController serves the dashboards, the admin student listing and
// resume downloads.
type StudentController struct {
	studentService *services.StudentService
	resumeStore    filestorage.ResumeStore
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, resumeStore filestorage.ResumeStore, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		resumeStore:    resumeStore,
		logger:         logger,
	}
}

// Dashboard handles GET /student_dashboard
func (c *StudentController) Dashboard(ctx *gin.Context) {
	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Please log in first")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail).WithRedirect("/login"))
		return
	}

	dashboard, err := c.studentService.Dashboard(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dashboard))
}

// AdminDashboard handles GET /admin_dashboard
func (c *StudentController) AdminDashboard(ctx *gin.Context) {
	dashboard, err := c.studentService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dashboard))
}

// ViewStudents handles GET /view_students
func (c *StudentController) ViewStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.StudentListResponse{Students: students}))
}

// ViewResume handles GET /view_resume/:filename, streaming a stored resume
// by its stored name.
func (c *StudentController) ViewResume(ctx *gin.Context) {
	filename := ctx.Param("filename")

	path, err := c.resumeStore.FullPath(filename)
	if err != nil {
		c.logger.Warn().Err(err).Str("filename", filename).Msg("Resume lookup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.File(path)
}
